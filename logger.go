package ntil

import "log/slog"

// Logger receives progress messages from a handler. It is purely
// observational: nothing a logger does can affect retry behavior.
type Logger interface {
	Info(msg string)
	Warn(msg string)
}

// NewSlogLogger adapts a slog.Logger to the Logger capability.
func NewSlogLogger(l *slog.Logger) Logger {
	return slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Info(msg string) { s.l.Info(msg) }
func (s slogLogger) Warn(msg string) { s.l.Warn(msg) }
