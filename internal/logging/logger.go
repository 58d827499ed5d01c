package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adhikav/customerdesk/internal/config"
)

// New builds a slog.Logger configured according to the provided logging
// config. Every record carries the component attribute so log lines from the
// CLI tools and the repository backends stay attributable.
func New(cfg config.LoggingConfig, component string) *slog.Logger {
	return newLogger(cfg, component, os.Stdout)
}

func newLogger(cfg config.LoggingConfig, component string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if component != "" {
		logger = logger.With("component", component)
	}
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
