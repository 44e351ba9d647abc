package core

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	grpc_adapter "github.com/JoeShih716/go-mem-account/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-mem-account/internal/config"
)

func startApp(t *testing.T, cfg config.Config) (*grpc.ClientConn, context.CancelFunc, <-chan error) {
	t.Helper()

	app, err := New(cfg)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Serve(ctx, lis)
	}()
	t.Cleanup(cancel)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, cancel, errCh
}

func TestAppEngines(t *testing.T) {
	for _, engine := range []string{config.EngineMutex, config.EngineSerial} {
		t.Run(engine, func(t *testing.T) {
			cfg := config.Default()
			cfg.Engine = engine
			cfg.Account.DefaultMaxCredit = 10

			conn, cancel, errCh := startApp(t, cfg)
			ctx := context.Background()

			health, err := healthpb.NewHealthClient(conn).Check(ctx,
				&healthpb.HealthCheckRequest{Service: grpc_adapter.ServiceName})
			require.NoError(t, err)
			assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.Status)

			client := grpc_adapter.NewClient(conn)
			opened, err := client.OpenAccount(ctx)
			require.NoError(t, err)
			require.True(t, opened.Success)
			assert.Equal(t, int64(10), opened.Account.MaxCredit)

			r, err := client.Withdraw(ctx, opened.Account.ID, 10)
			require.NoError(t, err)
			assert.True(t, r.Success)
			assert.Equal(t, int64(-10), r.Account.Balance)

			cancel()
			select {
			case err := <-errCh:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("server did not stop")
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Engine = "lmax"
	_, err := New(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Account.DefaultMaxCredit = 2_000_000
	_, err = New(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Account.DefaultMaxCredit = -5
	_, err = New(cfg)
	assert.Error(t, err)
}
