package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/smartgym/backend-go/internal/config"
	"github.com/smartgym/backend-go/internal/database"
	"github.com/smartgym/backend-go/internal/logger"
)

const migrationsDir = "migrations"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the gyms database schema",
		SilenceUsage: true,
	}

	root.AddCommand(
		migrationCmd("up", "Apply all pending migrations", goose.Up),
		migrationCmd("down", "Roll back the most recent migration", goose.Down),
		migrationCmd("status", "Print the state of every migration", goose.Status),
		migrationCmd("version", "Print the current schema version", goose.Version),
	)

	return root
}

func migrationCmd(use, short string, run func(db *sql.DB, dir string, opts ...goose.OptionsFunc) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			appLogger := logger.New(cfg)

			db, err := sql.Open("postgres", database.DSN(cfg))
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if err := db.PingContext(cmd.Context()); err != nil {
				return fmt.Errorf("failed to reach database: %w", err)
			}

			goose.SetBaseFS(database.Migrations())
			if err := goose.SetDialect(database.DialectPostgres); err != nil {
				return err
			}

			appLogger.Info("🔄 [Migrate] Running command", "command", use, "database", cfg.PostgreSQLDatabase)
			if err := run(db, migrationsDir); err != nil {
				appLogger.Error("❌ [Migrate] Command failed", "command", use, "error", err)
				return err
			}
			appLogger.Info("✅ [Migrate] Done", "command", use)
			return nil
		},
	}
}
