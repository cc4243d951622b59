package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv              string
	LogLevel            slog.Level
	ApiServicePort      string
	ApiGrpcPort         string
	PostgreSQLHost      string
	PostgreSQLPort      int64
	PostgreSQLUser      string
	PostgreSQLPassword  string
	PostgreSQLDatabase  string
	DBMaxRetries        int64
	AuthEnabled         bool
	JWTSecret           string
	JWTIssuer           string
	RedisHost           string
	RedisPort           int64
	RedisPassword       string
	RedisDatabase       int64
	RateLimitPerMinute  int64 // 0 disables rate limiting
	HealthCheckInterval int64 // Seconds between database health probes
	ShutdownTimeout     int64 // Seconds
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory, when present, is loaded first without overriding
// variables that are already set.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:              getEnv("APP_ENV", "development"),               // Default development
		LogLevel:            getLogLevel(),                                  // Default INFO
		ApiServicePort:      getEnv("API_SERVICE_PORT", "8080"),             // Default 8080
		ApiGrpcPort:         getEnv("API_GRPC_PORT", "50052"),               // Default 50052 (gRPC health)
		PostgreSQLHost:      getEnv("POSTGRESQL_HOST", "db"),                // Default db
		PostgreSQLPort:      getEnvAsInt64("POSTGRESQL_PORT", 5432),         // Default 5432
		PostgreSQLUser:      getEnv("POSTGRESQL_USER", "gyms_user"),         // Default user
		PostgreSQLPassword:  getEnv("POSTGRESQL_PASSWORD", "gyms_password"), // Default password
		PostgreSQLDatabase:  getEnv("POSTGRESQL_DATABASE", "gyms_db"),       // Default database name
		DBMaxRetries:        getEnvAsInt64("DB_MAX_RETRIES", 30),            // Default 30 attempts
		AuthEnabled:         getEnvAsBool("AUTH_ENABLED", true),             // Default enabled
		JWTSecret:           getEnv("JWT_SECRET", "gyms_secret"),            // Default secret key
		JWTIssuer:           getEnv("JWT_ISSUER", ""),                       // Default any issuer
		RedisHost:           getEnv("REDIS_HOST", "redis"),                  // Default redis
		RedisPort:           getEnvAsInt64("REDIS_PORT", 6379),              // Default 6379
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),                   // Default empty
		RedisDatabase:       getEnvAsInt64("REDIS_DATABASE", 0),             // Default 0
		RateLimitPerMinute:  getEnvAsInt64("RATE_LIMIT_PER_MINUTE", 120),    // Default 120 requests
		HealthCheckInterval: getEnvAsInt64("HEALTH_CHECK_INTERVAL", 15),     // Default 15 seconds
		ShutdownTimeout:     getEnvAsInt64("SHUTDOWN_TIMEOUT", 10),          // Default 10 seconds
	}
}

// ShutdownGracePeriod returns ShutdownTimeout as a duration.
func (c *Config) ShutdownGracePeriod() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// HealthCheckPeriod returns HealthCheckInterval as a duration, falling back
// to 15 seconds for non-positive values.
func (c *Config) HealthCheckPeriod() time.Duration {
	if c.HealthCheckInterval <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.HealthCheckInterval) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
