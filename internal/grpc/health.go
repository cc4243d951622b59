package grpc

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name under which the gyms API reports its own status,
// next to the overall "" entry.
const ServiceName = "smartgym.gyms.v1"

// PingFunc checks a dependency the service cannot work without
type PingFunc func(ctx context.Context) error

// HealthServer exposes grpc.health.v1.Health backed by a dependency probe
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	ping   PingFunc
	logger *slog.Logger
	status healthpb.HealthCheckResponse_ServingStatus
}

// NewHealthServer creates a health server that starts NOT_SERVING until the
// first successful probe.
func NewHealthServer(ping PingFunc, logger *slog.Logger) *HealthServer {
	hs := health.NewServer()
	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, hs)

	s := &HealthServer{
		server: server,
		health: hs,
		ping:   ping,
		logger: logger,
	}
	s.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Probe pings the dependency once and publishes the resulting status
func (s *HealthServer) Probe(ctx context.Context) {
	if err := s.ping(ctx); err != nil {
		if s.status != healthpb.HealthCheckResponse_NOT_SERVING {
			s.logger.Warn("⚠️ [Health] Dependency check failed", "error", err)
		}
		s.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}

	if s.status != healthpb.HealthCheckResponse_SERVING {
		s.logger.Info("✅ [Health] Serving")
	}
	s.set(healthpb.HealthCheckResponse_SERVING)
}

func (s *HealthServer) set(status healthpb.HealthCheckResponse_ServingStatus) {
	s.status = status
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.health.Shutdown()
		s.server.GracefulStop()
	}()

	s.logger.Info("🔌 [Health] gRPC health server running...", "addr", lis.Addr().String())
	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
