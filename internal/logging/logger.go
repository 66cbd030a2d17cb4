package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"sieve/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// File, when set, receives a copy of every record. Parent directories are
	// created on demand.
	File string
	// Writer is the primary destination. Defaults to stderr.
	Writer io.Writer
}

// New constructs a slog logger. Caller locations are included at debug level.
// The returned closer syncs and closes the log file, if one was opened; it is
// safe to call when Options.File is empty.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := parseLevel(opts.Level)
	addSource := level <= slog.LevelDebug

	var handler func(io.Writer, slog.Leveler, bool) slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		handler = newConsoleHandler
	case "json":
		handler = newJSONHandler
	default:
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	w, closer, err := destination(opts.Writer, strings.TrimSpace(opts.File))
	if err != nil {
		return nil, nil, err
	}
	return slog.New(handler(w, level, addSource)), closer, nil
}

// NewFromConfig creates a logger from the [logging] section of cfg, writing
// to w (stderr when nil) and the configured log file.
func NewFromConfig(cfg *config.Config, w io.Writer) (*slog.Logger, io.Closer, error) {
	if cfg == nil {
		return New(Options{Writer: w})
	}
	return New(Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Writer: w,
	})
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

func destination(primary io.Writer, file string) (io.Writer, io.Closer, error) {
	if primary == nil {
		primary = os.Stderr
	}
	if file == "" {
		return primary, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", file, err)
	}
	return io.MultiWriter(primary, f), &logFile{f: f}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// logFile flushes to disk before closing. Close is idempotent.
type logFile struct {
	once sync.Once
	f    *os.File
	err  error
}

func (l *logFile) Close() error {
	l.once.Do(func() {
		l.err = errors.Join(l.f.Sync(), l.f.Close())
	})
	return l.err
}
