package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds the application logger, installs it as the slog default, and
// returns it. Unrecognized level strings fall back to info.
func Setup(level string) *slog.Logger {
	return SetupWithWriter(os.Stderr, level)
}

// SetupWithWriter is Setup with an explicit destination, used by tests.
func SetupWithWriter(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
