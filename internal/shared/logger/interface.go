package logger

import "log/slog"

// Interface is the logging facade injected into use cases and repositories so
// they can be tested without a concrete slog handler. The *w variants take
// alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// NewLogger returns the process-wide logger wrapped in the facade.
func NewLogger() Interface {
	return wrapped{l: Get()}
}

type wrapped struct {
	l *slog.Logger
}

func (w wrapped) Debug(msg string, args ...any) { w.l.Debug(msg, args...) }
func (w wrapped) Info(msg string, args ...any)  { w.l.Info(msg, args...) }
func (w wrapped) Warn(msg string, args ...any)  { w.l.Warn(msg, args...) }
func (w wrapped) Error(msg string, args ...any) { w.l.Error(msg, args...) }

func (w wrapped) With(args ...any) Interface {
	return wrapped{l: w.l.With(args...)}
}

func (w wrapped) Debugw(msg string, keysAndValues ...any) { w.l.Debug(msg, keysAndValues...) }
func (w wrapped) Infow(msg string, keysAndValues ...any)  { w.l.Info(msg, keysAndValues...) }
func (w wrapped) Warnw(msg string, keysAndValues ...any)  { w.l.Warn(msg, keysAndValues...) }
func (w wrapped) Errorw(msg string, keysAndValues ...any) { w.l.Error(msg, keysAndValues...) }
