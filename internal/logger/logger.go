package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/smartgym/backend-go/internal/config"
)

// New builds the application logger on stdout and installs it as the slog default.
func New(cfg *config.Config) *slog.Logger {
	logger := NewWithWriter(cfg, os.Stdout)

	slog.SetDefault(logger)

	return logger
}

// NewWithWriter builds a logger writing to w. Production uses JSON, every
// other environment the human-readable text format.
func NewWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if strings.ToLower(cfg.AppEnv) == "production" {
		// JSON format
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Human-readable format
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
