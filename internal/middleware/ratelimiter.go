package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/smartgym/backend-go/internal/config"
)

// RateLimiter caps the number of requests a client may issue per window
type RateLimiter interface {
	// Allow counts one request for key and reports whether it is within the
	// limit, together with the remaining budget of the current window.
	Allow(ctx context.Context, key string) (bool, int64, error)

	// Close closes the Redis connection
	Close() error
}

type redisRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

// NewRateLimiter creates a new Redis-based rate limiter
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) (RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDatabase),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [RateLimiter] Failed to connect to Redis", "error", err)
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [RateLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"limit_per_minute", cfg.RateLimitPerMinute,
	)

	return NewRateLimiterWithClient(client, cfg.RateLimitPerMinute, time.Minute, logger), nil
}

// NewRateLimiterWithClient builds a fixed-window limiter over an existing client
func NewRateLimiterWithClient(client *redis.Client, limit int64, window time.Duration, logger *slog.Logger) RateLimiter {
	return &redisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// windowKey generates the Redis key for the current window
// Format: rate:api:{key}:{window start unix}
func (r *redisRateLimiter) windowKey(key string) string {
	start := time.Now().UTC().Truncate(r.window).Unix()
	return fmt.Sprintf("rate:api:%s:%d", key, start)
}

func (r *redisRateLimiter) Allow(ctx context.Context, key string) (bool, int64, error) {
	windowKey := r.windowKey(key)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to count request", "error", err, "key", key)
		// On error, allow the request but log it
		return true, r.limit, err
	}

	count := incr.Val()
	remaining := r.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= r.limit, remaining, nil
}

func (r *redisRateLimiter) Close() error {
	return r.client.Close()
}

// NoOpRateLimiter is a rate limiter that always allows requests
// Used when Redis is not available or limiting is disabled
type NoOpRateLimiter struct {
	logger *slog.Logger
}

// NewNoOpRateLimiter creates a no-op rate limiter
func NewNoOpRateLimiter(logger *slog.Logger) RateLimiter {
	logger.Warn("⚠️ [RateLimiter] Using no-op rate limiter - rate limiting is disabled")
	return &NoOpRateLimiter{logger: logger}
}

func (r *NoOpRateLimiter) Allow(ctx context.Context, key string) (bool, int64, error) {
	return true, -1, nil
}

func (r *NoOpRateLimiter) Close() error {
	return nil
}

// RateLimit rejects requests over the limiter's budget with 429. Callers are
// keyed by their authenticated identity when present, else by client IP.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if identity := c.GetString(IdentityKey); identity != "" {
			key = identity
		}

		// Allow logs its own failures and fails open.
		allowed, remaining, _ := limiter.Allow(c.Request.Context(), key)
		if remaining >= 0 {
			c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded", "code": "RATE_LIMITED"})
			return
		}

		c.Next()
	}
}
