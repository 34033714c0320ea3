// Package logger provides file-backed structured logging for the tool.
//
// Logging is strictly best-effort: a log directory that cannot be
// created or opened must never fail or slow down the user-facing
// workflow, so initialization errors degrade to a discard handler.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

var (
	mu       sync.Mutex
	root     *slog.Logger
	levelVar = new(slog.LevelVar)
	logFile  *os.File
)

// Init opens (or creates) the log file at path and routes all package
// logging to it. Every record carries an invocation id so interleaved
// runs against the same session can be told apart in the shared log.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	root = newRoot(f)
	return nil
}

func newRoot(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar})
	return slog.New(handler).With("invocation", uuid.NewString())
}

// SetDebug enables or disables debug level logging.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	root = nil
}

func get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		root = newRoot(io.Discard)
	}
	return root
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	get().Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	get().Log(context.Background(), slog.LevelInfo, msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	get().Log(context.Background(), slog.LevelWarn, msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	get().Log(context.Background(), slog.LevelError, msg, args...)
}
