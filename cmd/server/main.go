package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartgym/backend-go/internal/api"
	"github.com/smartgym/backend-go/internal/config"
	"github.com/smartgym/backend-go/internal/database"
	"github.com/smartgym/backend-go/internal/database/repository"
	"github.com/smartgym/backend-go/internal/database/service"
	internalgrpc "github.com/smartgym/backend-go/internal/grpc"
	"github.com/smartgym/backend-go/internal/handler"
	"github.com/smartgym/backend-go/internal/logger"
	"github.com/smartgym/backend-go/internal/middleware"
	"github.com/smartgym/backend-go/internal/worker"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting Gyms API...",
		"environment", cfg.AppEnv,
		"auth_enabled", cfg.AuthEnabled,
	)

	// 3. Connect to Database
	db, err := database.ConnectDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}
	ping := func(ctx context.Context) error { return database.Ping(ctx, db) }

	// 4. Initialize Repositories
	gymRepo := repository.NewGymRepository(db)
	userRepo := repository.NewUserRepository(db)

	// 5. Initialize Services
	gymService := service.NewGymService(gymRepo, userRepo, appLogger)
	userService := service.NewUserService(userRepo, appLogger)

	// 6. Initialize Handlers & Middleware
	gymHandler := handler.NewGymHandler(gymService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	healthHandler := api.NewHealthHandler(ping)

	var authMiddleware *middleware.AuthMiddleware
	if cfg.AuthEnabled {
		authMiddleware = middleware.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, appLogger)
	} else {
		appLogger.Warn("⚠️ Authentication is disabled, API routes are public")
	}

	// 7. Initialize Rate Limiter
	var rateLimiter middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		rateLimiter, err = middleware.NewRateLimiter(cfg, appLogger)
		if err != nil {
			appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
			rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
		}
	} else {
		rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
	}
	defer rateLimiter.Close()

	r := api.SetupRouter(healthHandler, gymHandler, userHandler, authMiddleware, rateLimiter)

	// 8. Listeners
	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.ApiGrpcPort))
	if err != nil {
		appLogger.Error("❌ Failed to listen for gRPC", "error", err)
		os.Exit(1)
	}
	httpListener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.ApiServicePort))
	if err != nil {
		appLogger.Error("❌ Failed to listen for HTTP", "error", err)
		os.Exit(1)
	}

	// 9. Start servers and the health probe
	signalCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := worker.NewPool(signalCtx, appLogger)

	healthServer := internalgrpc.NewHealthServer(ping, appLogger)
	pool.Every("health-probe", cfg.HealthCheckPeriod(), healthServer.Probe)
	pool.Submit("grpc-health", func(ctx context.Context) error {
		return healthServer.Serve(ctx, grpcListener)
	})

	httpServer := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	pool.Submit("http", func(ctx context.Context) error {
		return serveHTTP(ctx, httpServer, httpListener, cfg.ShutdownGracePeriod())
	})
	appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", cfg.ApiServicePort)

	<-pool.Done()
	failed := pool.Err()

	pool.Shutdown(cfg.ShutdownGracePeriod())

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	if failed != nil {
		appLogger.Error("❌ Server stopped on error", "error", failed)
		os.Exit(1)
	}
	appLogger.Info("👋 [Go] Gyms API stopped")
}

// serveHTTP serves until ctx is cancelled, then drains in-flight requests
// for at most grace.
func serveHTTP(ctx context.Context, server *http.Server, lis net.Listener, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
