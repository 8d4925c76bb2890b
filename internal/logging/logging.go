// Package logging builds the structured logger shared by the CLI and the TUI.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DebugLogPath is the log file used when --debug is set without a file.
const DebugLogPath = "weekgrid-debug.log"

type contextKey struct{}

// Options configures New.
type Options struct {
	Level   string // debug, info, warn, error
	File    string // empty means discard: the TUI owns the terminal
	Debug   bool   // forces debug level, and DebugLogPath when File is empty
	Command string
	Version string
}

// New creates a JSON logger writing to the configured file. The returned
// cleanup closes the file.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	path := strings.TrimSpace(opts.File)
	if opts.Debug {
		level = slog.LevelDebug
		if path == "" {
			path = DebugLogPath
		}
	}

	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := openLogFile(path)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(f, level).With(
		slog.String("session.id", uuid.NewString()),
		slog.String("command.path", opts.Command),
		slog.String("app.version", opts.Version),
	)
	return logger, f.Close, nil
}

func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger returns a new context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts the logger from ctx, falling back to slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Clean(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q (allowed: error, warn, info, debug)", level)
	}
}
