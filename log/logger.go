// Package log provides the logging interface used across veo. It is
// intended to align with the slog package while allowing adapters for other
// logging libraries.
package log

import (
	"log/slog"
	"strings"
)

// Level represents the minimum log level
type Level slog.Level

// Available log levels
const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

var defaultLevel = LevelWarn

// Logger defines the interface for logging within veo.
type Logger interface {
	// Debug logs a message at debug level with optional key-value pairs
	Debug(msg string, args ...any)

	// Info logs a message at info level with optional key-value pairs
	Info(msg string, args ...any)

	// Warn logs a message at warn level with optional key-value pairs
	Warn(msg string, args ...any)

	// Error logs a message at error level with optional key-value pairs
	Error(msg string, args ...any)

	// With returns a Logger that includes the given attributes in each
	// output operation.
	With(args ...any) Logger
}

// LevelFromString converts a string to a Level, falling back to the default
// level for unrecognized values.
func LevelFromString(value string) Level {
	switch strings.ToLower(value) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return defaultLevel
	}
}
