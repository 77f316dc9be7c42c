// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// Setup builds a text handler on stderr at the given level, tags every
// record with the module name, and installs it as the slog default.
// Unknown level names fall back to info. Logs go to stderr so that a
// program's own stdout output stays clean.
func Setup(logLevel, module string) *slog.Logger {
	var level slog.Level

	switch logLevel {
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

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler).With("module", module)
	slog.SetDefault(logger)
	return logger
}
