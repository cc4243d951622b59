package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/smartgym/backend-go/internal/config"
	internalgrpc "github.com/smartgym/backend-go/internal/grpc"
)

// healthcheck probes the gRPC health endpoint of a running API and exits
// non-zero unless it reports SERVING. Intended for container health checks.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr    string
		service string
		timeout time.Duration
		useTLS  bool
	)

	cmd := &cobra.Command{
		Use:          "healthcheck",
		Short:        "Check that the gyms API reports SERVING",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = "localhost:" + config.LoadConfig().ApiGrpcPort
			}

			client, err := internalgrpc.NewClient(addr, useTLS)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := client.Health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
			if err != nil {
				return err
			}
			if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
				return fmt.Errorf("service %q is %s", service, resp.GetStatus())
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.GetStatus())
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "gRPC address (default localhost:$API_GRPC_PORT)")
	cmd.Flags().StringVar(&service, "service", internalgrpc.ServiceName, "service name to check")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "request timeout")
	cmd.Flags().BoolVar(&useTLS, "tls", false, "use TLS")

	return cmd
}
