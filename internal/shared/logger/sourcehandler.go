package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// levelSourceHandler decorates a slog.Handler so that source location is
// attached only to records at the configured levels. The inner handler must
// be built with AddSource disabled, otherwise slog reports this wrapper's
// frame instead of the caller's.
type levelSourceHandler struct {
	inner  slog.Handler
	levels map[slog.Level]struct{}
}

// NewLevelSourceHandler returns a handler that adds the caller's source
// location to records logged at any of the given levels. Keeping source off
// the chatty levels keeps production output compact while warnings and
// errors stay traceable.
func NewLevelSourceHandler(inner slog.Handler, levels ...slog.Level) slog.Handler {
	h := &levelSourceHandler{
		inner:  inner,
		levels: make(map[slog.Level]struct{}, len(levels)),
	}
	for _, l := range levels {
		h.levels[l] = struct{}{}
	}
	return h
}

func (h *levelSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if _, ok := h.levels[r.Level]; ok {
		if src := callerSource(); src != nil {
			r.AddAttrs(slog.Any(slog.SourceKey, src))
		}
	}
	return h.inner.Handle(ctx, r)
}

// callerSource walks past this handler and slog's dispatch frame to find the
// logging call site.
func callerSource() *slog.Source {
	var pcs [1]uintptr
	if runtime.Callers(3, pcs[:]) == 0 {
		return nil
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return &slog.Source{
		Function: frame.Function,
		File:     frame.File,
		Line:     frame.Line,
	}
}

func (h *levelSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelSourceHandler{inner: h.inner.WithAttrs(attrs), levels: h.levels}
}

func (h *levelSourceHandler) WithGroup(name string) slog.Handler {
	return &levelSourceHandler{inner: h.inner.WithGroup(name), levels: h.levels}
}

func (h *levelSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}
