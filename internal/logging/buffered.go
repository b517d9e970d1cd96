package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// BufferedHandler keeps log records in memory so tests can inspect them.
type BufferedHandler struct {
	mu      *sync.Mutex
	records *[]Record
	attrs   []slog.Attr
}

// Record is a captured log line.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// NewBufferedHandler returns a handler that captures every level.
func NewBufferedHandler() *BufferedHandler {
	return &BufferedHandler{mu: &sync.Mutex{}, records: &[]Record{}}
}

// Enabled implements slog.Handler.
func (h *BufferedHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	rec := Record{Level: r.Level, Message: r.Message, Attrs: map[string]string{}}
	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.String()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.records = append(*h.records, rec)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	out.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &out
}

// WithGroup implements slog.Handler. Groups are flattened.
func (h *BufferedHandler) WithGroup(string) slog.Handler {
	return h
}

// Records returns a copy of everything captured so far.
func (h *BufferedHandler) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Record(nil), *h.records...)
}

// Contains reports whether any captured message contains substr.
func (h *BufferedHandler) Contains(substr string) bool {
	for _, r := range h.Records() {
		if strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}
