package eventstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"usn_tail/internal/event"
	"usn_tail/internal/framing"
)

// Handler receives each successfully decoded event, exactly once, in
// arrival order. Handler errors are not swallowed; they abort the stream.
type Handler interface {
	HandleEvent(e *event.Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(e *event.Event) error

// HandleEvent calls f(e).
func (f HandlerFunc) HandleEvent(e *event.Event) error {
	return f(e)
}

// Stream drives one transport session from open to end-of-stream.
type Stream struct {
	source  Source
	handler Handler
	frames  *framing.FrameBuffer
}

// Option configures a Stream.
type Option func(*options)

type options struct {
	maxFrame int
}

// WithMaxFrameSize bounds the frame buffer; a single record larger than n
// bytes ends the session with framing.ErrFrameTooLarge. Zero disables the
// bound, which matches the producer's own framing assumptions.
func WithMaxFrameSize(n int) Option {
	return func(o *options) {
		o.maxFrame = n
	}
}

// New creates a Stream over the given source and handler.
func New(source Source, handler Handler, opts ...Option) *Stream {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var frameOpts []framing.Option
	if o.maxFrame > 0 {
		frameOpts = append(frameOpts, framing.WithMaxSize(o.maxFrame))
	}

	return &Stream{
		source:  source,
		handler: handler,
		frames:  framing.NewFrameBuffer(frameOpts...),
	}
}

// Run opens the source and processes records until end-of-stream, a read
// error, context cancellation, or a handler error.
//
// A failed open is the only startup-fatal condition and is returned as an
// error. End-of-stream and read errors are session end, not failures: the
// condition is logged and Run returns nil. No reconnection is attempted;
// resilience belongs to an external supervisor restarting the whole run.
func (s *Stream) Run(ctx context.Context) error {
	if err := s.source.Open(); err != nil {
		return fmt.Errorf("opening %s: %w", s.source.Name(), err)
	}
	defer func() {
		_ = s.source.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		chunk, err := s.source.Read()

		if len(chunk) > 0 {
			if s.source.Framed() {
				if aerr := s.frames.Append(chunk); aerr != nil {
					return fmt.Errorf("framing %s: %w", s.source.Name(), aerr)
				}
				if derr := s.drain(); derr != nil {
					return derr
				}
			} else {
				// Line transports deliver one pre-framed record per
				// read; blank lines are not events.
				if derr := s.dispatch(bytes.TrimSpace(chunk)); derr != nil {
					return derr
				}
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("%s: session ended: %v", s.source.Name(), err)
			}
			return nil
		}
	}
}

// drain dispatches every complete record currently in the frame buffer.
func (s *Stream) drain() error {
	for {
		record, ok := s.frames.Next()
		if !ok {
			return nil
		}
		if err := s.dispatch(record); err != nil {
			return err
		}
	}
}

// dispatch decodes one record and hands it to the handler. A record that
// fails to decode is dropped; one bad message must never halt the stream.
func (s *Stream) dispatch(record []byte) error {
	if len(record) == 0 {
		return nil
	}

	e, err := event.Decode(record)
	if err != nil {
		return nil
	}

	return s.handler.HandleEvent(&e)
}
