package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level 全域共用，可於執行期調整
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var sugar *zap.SugaredLogger

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	logger, err := cfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.DPanicLevel))
	if err != nil {
		panic(err)
	}
	sugar = logger.Sugar()
}

// SetLevel 調整輸出等級
//
// 參數:
//
//	name: "debug", "info", "warn", "error"
//
// 回傳:
//
//	error: 無法辨識的等級，原等級不變
func SetLevel(name string) error {
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.SetLevel(l)
	return nil
}

// Sync 程式結束前刷出緩衝
func Sync() error {
	return sugar.Sync()
}

func Info(args ...any) {
	sugar.Info(args...)
}

func Infow(msg string, keysAndValues ...any) {
	sugar.Infow(msg, keysAndValues...)
}

func Debugw(msg string, keysAndValues ...any) {
	sugar.Debugw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	sugar.Errorw(msg, keysAndValues...)
}
