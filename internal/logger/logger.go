// Package logger builds the process-wide slog logger from config. The
// managers log and swallow record-store failures, so this log is the
// only persistent trace of what an operation actually did.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/foodstock-inventory/internal/config"
)

// NewLogger returns a JSON logger at the configured level. Unknown or
// empty levels fall back to info. Source locations are attached only at
// debug, where the swallowed-failure diagnostics live.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	logger.Info("logger initialized", "level", level, "app", cfg.Application.Name)

	return logger
}
