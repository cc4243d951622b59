package grpc_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	internalgrpc "github.com/smartgym/backend-go/internal/grpc"
	"github.com/smartgym/backend-go/internal/testutil"
)

func startHealthServer(t *testing.T, ping internalgrpc.PingFunc) (*internalgrpc.HealthServer, *internalgrpc.Client) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := internalgrpc.NewHealthServer(ping, testutil.DiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		served <- server.Serve(ctx, lis)
	}()

	client, err := internalgrpc.NewClient("passthrough:///bufnet", false,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		cancel()
		select {
		case err := <-served:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("health server did not stop")
		}
	})

	return server, client
}

func check(t *testing.T, client *internalgrpc.Client, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealthServer_FollowsProbe(t *testing.T) {
	var pingErr error
	server, client := startHealthServer(t, func(ctx context.Context) error {
		return pingErr
	})

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))

	server.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, internalgrpc.ServiceName))

	pingErr = errors.New("connection refused")
	server.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}
