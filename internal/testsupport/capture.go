package testsupport

import (
	"context"
	"log/slog"
	"sync"
)

// Record is a flattened slog record kept by CaptureHandler.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Has reports whether the record carries key, regardless of value.
func (r Record) Has(key string) bool {
	_, ok := r.Attrs[key]
	return ok
}

// CaptureHandler is a slog.Handler that keeps every record in memory.
type CaptureHandler struct {
	level slog.Leveler
	attrs []slog.Attr
	sink  *captureSink
}

type captureSink struct {
	mu      sync.Mutex
	records []Record
}

// NewCaptureHandler returns a handler accepting records at or above level.
func NewCaptureHandler(level slog.Leveler) *CaptureHandler {
	return &CaptureHandler{level: level, sink: &captureSink{}}
}

// NewCaptureLogger is a convenience wrapper returning both logger and handler.
func NewCaptureLogger(level slog.Leveler) (*slog.Logger, *CaptureHandler) {
	h := NewCaptureHandler(level)
	return slog.New(h), h
}

func (h *CaptureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CaptureHandler) Handle(_ context.Context, record slog.Record) error {
	rec := Record{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   make(map[string]string, record.NumAttrs()+len(h.attrs)),
	}
	for _, attr := range h.attrs {
		rec.Attrs[attr.Key] = attr.Value.Resolve().String()
	}
	record.Attrs(func(attr slog.Attr) bool {
		rec.Attrs[attr.Key] = attr.Value.Resolve().String()
		return true
	})
	h.sink.mu.Lock()
	h.sink.records = append(h.sink.records, rec)
	h.sink.mu.Unlock()
	return nil
}

func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &CaptureHandler{level: h.level, sink: h.sink}
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return next
}

// WithGroup is a no-op; captured keys stay flat.
func (h *CaptureHandler) WithGroup(string) slog.Handler {
	return h
}

// Records returns a copy of everything captured so far.
func (h *CaptureHandler) Records() []Record {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	return append([]Record(nil), h.sink.records...)
}

// Filter returns captured records whose attribute key equals value.
func (h *CaptureHandler) Filter(key, value string) []Record {
	var out []Record
	for _, rec := range h.Records() {
		if v, ok := rec.Attrs[key]; ok && v == value {
			out = append(out, rec)
		}
	}
	return out
}
