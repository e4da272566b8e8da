package output

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"usn_tail/internal/event"
	"usn_tail/internal/eventstream"
)

func newTestTracer() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return recorder, tp
}

func TestTraceHandler_SpanPerEvent(t *testing.T) {
	recorder, tp := newTestTracer()
	inner := eventstream.HandlerFunc(func(*event.Event) error { return nil })
	h := NewTraceHandler(tp.Tracer("test"), inner)

	e := event.Event{Reasons: []string{"CLOSE"}, FullPath: `C:\a.txt`}
	require.NoError(t, h.HandleEvent(&e))
	require.NoError(t, h.HandleEvent(&e))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "usn.event", spans[0].Name())
}

func TestTraceHandler_InnerErrorPropagatesAndMarksSpan(t *testing.T) {
	recorder, tp := newTestTracer()
	inner := eventstream.HandlerFunc(func(*event.Event) error {
		return fmt.Errorf("downstream failure")
	})
	h := NewTraceHandler(tp.Tracer("test"), inner)

	err := h.HandleEvent(&event.Event{})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
