package grpc

import (
	"crypto/tls"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// Client wraps a connection to a gyms API health endpoint
type Client struct {
	Health healthpb.HealthClient
	conn   *grpc.ClientConn
}

// NewClient creates a health client for addr. Extra dial options are
// appended after the defaults.
func NewClient(addr string, useTLS bool, extra ...grpc.DialOption) (*Client, error) {
	var opts []grpc.DialOption
	if useTLS {
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	opts = append(opts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
		Time:                30 * time.Second,
		Timeout:             10 * time.Second,
		PermitWithoutStream: false,
	}))

	conn, err := grpc.NewClient(addr, append(opts, extra...)...)
	if err != nil {
		return nil, err
	}

	return &Client{
		Health: healthpb.NewHealthClient(conn),
		conn:   conn,
	}, nil
}

// Close closes the gRPC connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
