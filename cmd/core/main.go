package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JoeShih716/go-mem-account/internal/app/core"
	"github.com/JoeShih716/go-mem-account/internal/config"
	"github.com/JoeShih716/go-mem-account/pkg/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "core",
	Short: "In-memory account service",

	// 錯誤統一由 main 記錄
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC account service",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 載入設定
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := log.SetLevel(cfg.Log.Level); err != nil {
			return err
		}
		defer log.Sync()

		// 2. 組裝 App
		app, err := core.New(cfg)
		if err != nil {
			return err
		}

		lis, err := net.Listen("tcp", cfg.Server.Addr)
		if err != nil {
			return err
		}

		// Graceful Shutdown
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return app.Serve(ctx, lis)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&cfgFile, "config", "c", config.DefaultPath, "path of the YAML config file")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorw("core exited", "error", err)
		os.Exit(1)
	}
}
