package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	grpc_adapter "github.com/JoeShih716/go-mem-account/internal/app/core/adapter/in/grpc"
	grpc_pool "github.com/JoeShih716/go-mem-account/pkg/grpc"
)

var (
	addr    string
	timeout time.Duration
	pool    = grpc_pool.NewPool()
)

var rootCmd = &cobra.Command{
	Use:          "accountctl",
	Short:        "Command line client for the account service",
	SilenceUsage: true,
}

// newClient 從連線池取得連線
func newClient() (*grpc_adapter.Client, error) {
	conn, err := pool.GetConnection(addr)
	if err != nil {
		return nil, err
	}
	return grpc_adapter.NewClient(conn), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&addr, "addr", "a", "localhost:50051", "address of the account service")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 5*time.Second, "timeout of a single request")
}

// execute 執行指令，失敗時也會關閉連線池
func execute(ctx context.Context, args []string) error {
	defer func() { _ = pool.Close() }()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := execute(ctx, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
