package framing

import (
	"bytes"
	"fmt"
)

// ErrFrameTooLarge is returned by Append when a size-limited buffer would
// exceed its limit without containing a single delimiter.
var ErrFrameTooLarge = fmt.Errorf("frame exceeds maximum buffer size")

// FrameBuffer accumulates raw chunks and extracts '\n'-terminated records.
// It is owned by exactly one reading loop and is not safe for concurrent use.
type FrameBuffer struct {
	buf     []byte
	maxSize int // 0 means unlimited
}

// Option configures a FrameBuffer.
type Option func(*FrameBuffer)

// WithMaxSize caps the number of buffered bytes a single record may span.
// Append returns ErrFrameTooLarge when the cap would be exceeded; the zero
// value (unlimited) matches the producer's own framing assumptions.
func WithMaxSize(n int) Option {
	return func(fb *FrameBuffer) {
		fb.maxSize = n
	}
}

// NewFrameBuffer creates an empty frame buffer.
func NewFrameBuffer(opts ...Option) *FrameBuffer {
	fb := &FrameBuffer{}
	for _, opt := range opts {
		opt(fb)
	}
	return fb
}

// Append adds one transport chunk to the buffer.
func (fb *FrameBuffer) Append(chunk []byte) error {
	fb.buf = append(fb.buf, chunk...)
	if fb.maxSize > 0 && len(fb.buf) > fb.maxSize && bytes.IndexByte(fb.buf, '\n') < 0 {
		return ErrFrameTooLarge
	}
	return nil
}

// Next pops the earliest complete record, without its delimiter.
// It returns false when the buffer holds no complete record yet.
func (fb *FrameBuffer) Next() ([]byte, bool) {
	i := bytes.IndexByte(fb.buf, '\n')
	if i < 0 {
		return nil, false
	}

	record := make([]byte, i)
	copy(record, fb.buf[:i])
	fb.buf = fb.buf[i+1:]
	return record, true
}

// Pending returns the bytes of the incomplete trailing record, if any.
func (fb *FrameBuffer) Pending() []byte {
	return fb.buf
}

// Len returns the number of buffered bytes.
func (fb *FrameBuffer) Len() int {
	return len(fb.buf)
}
