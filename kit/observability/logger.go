package observability

import (
	"log/slog"
	"os"
)

type Logger struct {
	l *slog.Logger
}

func NewLogger() *Logger {
	return &Logger{l: slog.New(slog.NewJSONHandler(os.Stdout, nil))}
}

func NewLoggerWith(l *slog.Logger) *Logger {
	return &Logger{l: l}
}

func (lg *Logger) Info(msg string, kv ...any) {
	if lg == nil {
		return
	}
	lg.l.Info(msg, kv...)
}

func (lg *Logger) Warn(msg string, kv ...any) {
	if lg == nil {
		return
	}
	lg.l.Warn(msg, kv...)
}

func (lg *Logger) Error(msg string, kv ...any) {
	if lg == nil {
		return
	}
	lg.l.Error(msg, kv...)
}
