// Package logging builds the log/slog loggers used by the sectorgrid tools.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps debug, info, warn and error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New returns a text logger writing to w at level, with source locations.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
}

// Redirect installs a logger writing to newOut at level as slog.Default.
// The returned function restores the previous default.
func Redirect(newOut io.Writer, level slog.Level) func() {
	old := slog.Default()
	slog.SetDefault(New(newOut, level))
	return func() {
		slog.SetDefault(old)
	}
}
