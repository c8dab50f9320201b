// Package logging provides structured logging configuration using log/slog.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Setup builds a logger writing to w, installs it as the slog default and
// returns it. The CLI passes the command's stderr so JSON output on stdout
// stays clean.
//
// level is one of debug, info, warn or error and defaults to info.
// format is text or json and defaults to text.
func Setup(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a level name to slog.Level, case-insensitively.
// Unknown names fall back to info.
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

// ForRun returns a logger that tags every entry with a fresh run_id, so the
// entries of one command invocation can be correlated.
//
//	log := logging.ForRun(slog.Default(), "input", path)
//	log.Info("conversion started")
func ForRun(base *slog.Logger, args ...any) *slog.Logger {
	return base.With("run_id", uuid.NewString()).With(args...)
}
