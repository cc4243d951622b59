package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smartgym/backend-go/internal/config"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Goose dialects understood by RunMigrations.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DSN builds the PostgreSQL connection string from the configuration.
func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		cfg.PostgreSQLHost,
		cfg.PostgreSQLUser,
		cfg.PostgreSQLPassword,
		cfg.PostgreSQLDatabase,
		cfg.PostgreSQLPort,
	)
}

// GormConfig is shared by every connection the service opens. TranslateError
// turns driver-specific unique violations into gorm.ErrDuplicatedKey.
func GormConfig(level gormlogger.LogLevel) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	}
}

// ConnectDatabase opens PostgreSQL, retrying until the server accepts
// connections, and applies pending migrations.
func ConnectDatabase(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	logger.Info("🔌 [Database] Connecting to PostgreSQL...",
		"host", cfg.PostgreSQLHost,
		"port", cfg.PostgreSQLPort,
		"database", cfg.PostgreSQLDatabase,
	)

	var db *gorm.DB
	var err error
	maxRetries := int(cfg.DBMaxRetries)
	if maxRetries < 1 {
		maxRetries = 1
	}
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(DSN(cfg)), GormConfig(gormlogger.Warn))
		if err == nil {
			if err = Ping(context.Background(), db); err == nil {
				break
			}
		}

		if i < maxRetries-1 {
			logger.Warn("⏳ [Database] Connection failed, retrying...",
				"attempt", i+1,
				"max_retries", maxRetries,
				"retry_in", retryDelay,
				"error", err,
			)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %w", maxRetries, err)
	}

	logger.Info("✅ [Database] Database connection established")

	logger.Info("🔄 [Database] Running migrations...")
	if err := RunMigrations(db, DialectPostgres); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("✅ [Database] Migrations completed successfully")

	return db, nil
}

// RunMigrations applies the embedded goose migrations using the given dialect.
func RunMigrations(gormDB *gorm.DB, dialect string) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run goose migrations: %w", err)
	}

	return nil
}

// Migrations exposes the embedded migration files for tooling such as cmd/migrate.
func Migrations() embed.FS {
	return embedMigrations
}

// Ping checks that the database answers within ctx.
func Ping(ctx context.Context, gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
