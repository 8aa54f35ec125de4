// Package log sets up structured logging and the colored console messages.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a text slog logger writing to w at the given level.
// An unknown level falls back to INFO and is reported as a warning.
//
// Example:
//
//	logger := log.NewLogger(os.Stderr, "DEBUG")
//	slog.SetDefault(logger)
func NewLogger(w io.Writer, logLevel string) *slog.Logger {
	level, err := ConvertStringToLogLevel(logLevel)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)

	if err != nil {
		logger.Warn(err.Error())
	}
	return logger
}

// ConvertStringToLogLevel maps DEBUG, INFO, WARN and ERROR to slog levels.
func ConvertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q, using INFO", levelStr)
	}
}
