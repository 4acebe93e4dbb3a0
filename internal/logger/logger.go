// Package logger provides a file-backed slog logger.
//
// The terminal belongs to the bubbletea program while it runs, so nothing may
// be written to stdout or stderr. Everything goes to a log file instead.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is the log file used when no path is configured
const DefaultLogPath = "/tmp/chatlist-debug.log"

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	logger   *slog.Logger
)

// Init opens (or creates) the log file at path and routes all logging to it.
// Calling Init again replaces the previous file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))

	logger.Info("Logger initialized", "path", path)
	return nil
}

// InitWriter routes logging to w. Used by tests.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Get returns the current logger. Before Init it returns a logger that
// discards everything.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

// WithComponent returns a logger with the component attribute pre-attached.
func WithComponent(component string) *slog.Logger {
	return Get().With(slog.String("component", component))
}

// Close closes the log file. Logging after Close is discarded.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}
