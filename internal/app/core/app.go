package core

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpc_adapter "github.com/JoeShih716/go-mem-account/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-mem-account/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-account/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-account/internal/config"
	"github.com/JoeShih716/go-mem-account/pkg/log"
)

// App 組裝帳戶登錄、UseCase 與 gRPC Server
type App struct {
	cfg    config.Config
	server *grpc.Server
	health *health.Server
	// serial engine 才有
	serial *memory_adapter.SerialRegistry
}

// New 依設定建立 App
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{cfg: cfg}

	// 1. 帳戶登錄
	var registry usecase.Registry
	switch cfg.Engine {
	case config.EngineMutex:
		registry = memory_adapter.NewMutexRegistry()
	case config.EngineSerial:
		app.serial = memory_adapter.NewSerialRegistry(cfg.Server.QueueSize)
		registry = app.serial
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}

	// 2. UseCase
	core := usecase.NewAccountUseCase(registry,
		usecase.WithDefaultMaxCredit(cfg.Account.DefaultMaxCredit),
	)

	// 3. gRPC Server (Driving Adapter)
	app.server = grpc.NewServer(grpc.UnaryInterceptor(grpc_adapter.LoggingInterceptor))
	grpc_adapter.RegisterAccountServiceServer(app.server, grpc_adapter.NewGrpcServer(core))

	app.health = health.NewServer()
	healthpb.RegisterHealthServer(app.server, app.health)

	return app, nil
}

// Serve 在 lis 上提供服務，直到 ctx 取消後 Graceful Stop
func (a *App) Serve(ctx context.Context, lis net.Listener) error {
	// serial loop 要比 gRPC Server 晚停，in-flight 請求才處理得完
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	if a.serial != nil {
		a.serial.Start(loopCtx)
	}

	a.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	a.health.SetServingStatus(grpc_adapter.ServiceName, healthpb.HealthCheckResponse_SERVING)

	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting gRPC server", "addr", lis.Addr().String(), "engine", a.cfg.Engine)
		errCh <- a.server.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	a.health.Shutdown()
	a.server.GracefulStop()
	// 等 serial loop 處理完輸送帶上的請求
	stopLoop()
	if a.serial != nil {
		<-a.serial.Done()
	}
	log.Info("server exited")
	return <-errCh
}
