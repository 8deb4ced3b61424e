package logging

import (
	"context"
	"log/slog"
)

// levelFloorHandler drops records below a per-logger floor while delegating
// output to the wrapped handler. The floor can only raise the effective level;
// the wrapped handler's own level still applies.
type levelFloorHandler struct {
	next  slog.Handler
	floor slog.Level
}

func (h *levelFloorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.floor && h.next.Enabled(ctx, level)
}

func (h *levelFloorHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.floor {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *levelFloorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelFloorHandler{next: h.next.WithAttrs(attrs), floor: h.floor}
}

func (h *levelFloorHandler) WithGroup(name string) slog.Handler {
	return &levelFloorHandler{next: h.next.WithGroup(name), floor: h.floor}
}

// WithLevelFloor returns a logger that ignores records below floor while
// preserving existing attributes and handler wiring. Applying a floor to a
// logger that already has one replaces it.
func WithLevelFloor(logger *slog.Logger, floor slog.Level) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	next := logger.Handler()
	if existing, ok := next.(*levelFloorHandler); ok {
		next = existing.next
	}
	return slog.New(&levelFloorHandler{next: next, floor: floor})
}
