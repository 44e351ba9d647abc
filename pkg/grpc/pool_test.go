package grpc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

func TestPoolReusesConnection(t *testing.T) {
	p := NewPool()
	defer p.Close()

	c1, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	c2, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	assert.Same(t, c1, c2)

	c3, err := p.GetConnection("localhost:50052")
	require.NoError(t, err)
	assert.NotSame(t, c1, c3)
}

func TestPoolConcurrentGet(t *testing.T) {
	p := NewPool()
	defer p.Close()

	const workers = 20
	conns := make([]*grpc.ClientConn, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			conn, err := p.GetConnection("localhost:50051")
			assert.NoError(t, err)
			conns[i] = conn
		}(i)
	}
	wg.Wait()

	for _, conn := range conns {
		assert.Same(t, conns[0], conn)
	}
}

func TestPoolReplacesClosedConnection(t *testing.T) {
	p := NewPool()
	defer p.Close()

	c1, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	require.NoError(t, c1.Close())
	assert.Equal(t, connectivity.Shutdown, c1.GetState())

	c2, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	assert.NotSame(t, c1, c2)
}

func TestPoolClose(t *testing.T) {
	p := NewPool(
		WithKeepalive(20*time.Second, 2*time.Second),
		WithInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			return invoker(ctx, method, req, reply, cc, opts...)
		}),
	)
	assert.Equal(t, 20*time.Second, p.keepalive.Time)
	assert.Equal(t, 2*time.Second, p.keepalive.Timeout)

	c1, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.Equal(t, connectivity.Shutdown, c1.GetState())

	c2, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	assert.NotSame(t, c1, c2)
	require.NoError(t, p.Close())
}
