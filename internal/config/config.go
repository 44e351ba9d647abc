package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-account/internal/app/core/domain"
)

// DefaultPath 預設設定檔路徑
const DefaultPath = "config/config.yaml"

// 帳戶登錄實作
const (
	EngineMutex  = "mutex"
	EngineSerial = "serial"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Engine  string  `yaml:"engine"`
	Account Account `yaml:"account"`
	Log     Log     `yaml:"log"`
}

type Server struct {
	Addr string `yaml:"addr"`
	// serial engine 輸送帶容量
	QueueSize int `yaml:"queue_size"`
}

type Account struct {
	// 新開帳戶的信用額度
	DefaultMaxCredit int64 `yaml:"default_max_credit"`
}

type Log struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// Load 讀取並解析設定檔，補全預設值後驗證
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 內容
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default 全部使用預設值的設定
func Default() Config {
	var cfg Config
	cfg.setDefaults()
	return cfg
}

// setDefaults 補全預設配置 (如果 yaml 沒寫)
func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":50051"
	}
	if c.Engine == "" {
		c.Engine = EngineMutex
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate 檢查設定值
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineMutex, EngineSerial:
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	if c.Server.QueueSize < 0 {
		return fmt.Errorf("queue_size must not be negative: %d", c.Server.QueueSize)
	}
	// 負額度的新帳戶無法解凍，不接受
	if c.Account.DefaultMaxCredit < 0 || !domain.ValidMaxCredit(c.Account.DefaultMaxCredit) {
		return fmt.Errorf("default_max_credit %d out of range [0, %d]",
			c.Account.DefaultMaxCredit, domain.Limit)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
