package output

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"usn_tail/internal/event"
	"usn_tail/internal/eventstream"
)

// TraceHandler decorates another handler with one span per dispatched
// event. Span status reflects the inner handler's result; the error is
// still propagated so tracing never changes dispatch semantics.
type TraceHandler struct {
	tracer trace.Tracer
	next   eventstream.Handler
}

// NewTraceHandler wraps next with per-event tracing.
func NewTraceHandler(tracer trace.Tracer, next eventstream.Handler) *TraceHandler {
	return &TraceHandler{tracer: tracer, next: next}
}

// HandleEvent implements eventstream.Handler.
func (h *TraceHandler) HandleEvent(e *event.Event) error {
	_, span := h.tracer.Start(context.Background(), "usn.event",
		trace.WithAttributes(
			attribute.StringSlice("usn.reasons", e.Reasons),
			attribute.String("usn.path", e.Path()),
			attribute.String("usn.ext", e.Ext()),
			attribute.String("usn.timestamp", e.Timestamp),
			attribute.Bool("usn.is_directory", e.IsDirectory),
		))
	defer span.End()

	err := h.next.HandleEvent(e)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
