// Package clilog provides the structured logger the cmd/* front-ends
// use, wrapping log/slog the way the teacher's pkg/log does for its
// server processes — a thin Logger type over a slog.Logger, with
// package-level convenience functions delegating to a process-wide
// default. CLI tools default to a text handler on stderr rather than
// JSON, since their output is read by a human at a terminal, not
// shipped to a log aggregator.
package clilog

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the module attribute every cmd/*
// binary tags its log lines with.
type Logger struct {
	inner *slog.Logger
}

var defaultLogger = New(slog.LevelInfo)

// New creates a Logger that writes text to stderr at the given level.
func New(level slog.Level) *Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger { return defaultLogger }

// Command returns a child logger tagged with the invoking cmd/*
// binary's name.
func (l *Logger) Command(name string) *Logger {
	return &Logger{inner: l.inner.With("cmd", name)}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// Debug logs at LevelDebug using the default logger.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs at LevelInfo using the default logger.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs at LevelWarn using the default logger.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs at LevelError using the default logger.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// Fatal logs at LevelError using the default logger, then exits the
// process with status 1. The cmd/* binaries do not call it: their run
// functions log with Error and return a nonzero exit code instead.
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
