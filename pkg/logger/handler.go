package logger

import (
	"context"
	"log/slog"
	"strings"
)

// Redacted replaces the value of sensitive attributes.
const Redacted = "[REDACTED]"

// SensitiveKeys are attribute keys whose values are always masked.
var SensitiveKeys = []string{"authorization", "token", "password", "credential", "cookie", "set-cookie"}

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler appends extracted attributes and masks sensitive ones
// before delegating. Masking happens on the record so every downstream
// handler, Sentry included, sees the masked value.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewHandler wraps next with context extraction and redaction.
// Nil extractors are dropped.
func NewHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &contextHandler{next: next, extractors: clean}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(redact(a))
		return true
	})
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			out.AddAttrs(redact(attr))
		}
	}
	return h.next.Handle(ctx, out)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = redact(a)
	}
	return &contextHandler{next: h.next.WithAttrs(masked), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

func redact(a slog.Attr) slog.Attr {
	if isSensitive(a.Key) {
		return slog.String(a.Key, Redacted)
	}
	v := a.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		return slog.Attr{Key: a.Key, Value: v}
	}
	group := v.Group()
	masked := make([]slog.Attr, len(group))
	for i, ga := range group {
		masked[i] = redact(ga)
	}
	return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
}

func isSensitive(key string) bool {
	key = strings.ToLower(key)
	for _, k := range SensitiveKeys {
		if key == k {
			return true
		}
	}
	return false
}
