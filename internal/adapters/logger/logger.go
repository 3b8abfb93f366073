// Package logger implements ports.Logger on log/slog.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// messager matches zerr errors, which report their own message apart from the cause chain.
type messager interface {
	Message() string
	Metadata() map[string]any
}

// Logger writes pretty or JSON records to stderr, or to the writer set by SetOutput.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	level    *slog.LevelVar
	output   io.Writer
	jsonMode bool
}

// New creates a logger printing info and above in the pretty format.
func New() *Logger {
	l := &Logger{level: &slog.LevelVar{}, output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// rebuild must be called with mu held for writing.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// SetOutput redirects the logger. A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON implements ports.Logger.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose implements ports.Logger.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a message shown only in verbose mode.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. Pretty output lists each link of the chain with its metadata,
// JSON output carries the metadata as fields.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		zerr.Log(context.Background(), l.logger, err)
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

type errorEntry struct {
	message  string
	metadata []string
}

func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}

		meta := m.Metadata()
		entry := errorEntry{message: m.Message()}
		for _, k := range slices.Sorted(maps.Keys(meta)) {
			entry.metadata = append(entry.metadata, fmt.Sprintf("%s=%v", k, meta[k]))
		}
		if entry.message == "" && len(entry.metadata) == 0 {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, e := range entries {
		text := e.message
		if len(e.metadata) > 0 {
			text += " (" + strings.Join(e.metadata, ", ") + ")"
		}
		if i == 0 {
			lines = append(lines, "Error: "+text)
			continue
		}
		if i == 1 {
			lines = append(lines, "  Caused by:")
		}
		lines = append(lines, "    → "+text)
	}
	return strings.Join(lines, "\n")
}
