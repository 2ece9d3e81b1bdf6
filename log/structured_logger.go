package log

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// StructuredLogger implements the Logger interface using slog
type StructuredLogger struct {
	logger *slog.Logger
}

// New returns a new StructuredLogger instance writing to stderr, so that
// log output never mixes with generation results on stdout.
func New(level Level) *StructuredLogger {
	tintHandler := tint.NewHandler(os.Stderr, &tint.Options{
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: time.Kitchen,
		Level:      slog.Level(level),
	})
	return &StructuredLogger{
		logger: slog.New(tintHandler),
	}
}

func (l *StructuredLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *StructuredLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *StructuredLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *StructuredLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *StructuredLogger) With(args ...any) Logger {
	return &StructuredLogger{logger: l.logger.With(args...)}
}
