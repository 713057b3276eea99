package log

import (
	"context"
	"log/slog"
)

// attrHandler decorates every record passing through it with a fixed set
// of attributes, typically the run ID. Unlike Logger.With, the attributes
// survive WithGroup and end up at the record's top level.
type attrHandler struct {
	next  slog.Handler
	attrs []slog.Attr
}

func withAttrs(next slog.Handler, attrs []slog.Attr) *attrHandler {
	if h, ok := next.(*attrHandler); ok {
		next = h.next
	}
	return &attrHandler{next: next, attrs: attrs}
}

func (h *attrHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *attrHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(h.attrs...)
	return h.next.Handle(ctx, r)
}

func (h *attrHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return withAttrs(h.next.WithAttrs(attrs), h.attrs)
}

func (h *attrHandler) WithGroup(name string) slog.Handler {
	return withAttrs(h.next.WithGroup(name), h.attrs)
}
