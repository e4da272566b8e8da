package output

import (
	"fmt"
	"io"

	"usn_tail/internal/event"
)

// PrintHandler prints file-save events as single lines:
//
//	[00:00:00.123] txt    C:\a.txt
//
// Only CLOSE events on non-directories are printed; everything else is
// silently passed over. The bracketed clock is the hh:mm:ss.mmm slice of
// the producer's timestamp, taken verbatim.
type PrintHandler struct {
	w io.Writer
}

// NewPrintHandler creates a print handler writing to w.
func NewPrintHandler(w io.Writer) *PrintHandler {
	return &PrintHandler{w: w}
}

// HandleEvent implements eventstream.Handler.
func (h *PrintHandler) HandleEvent(e *event.Event) error {
	if !e.HasReason("CLOSE") || e.IsDirectory {
		return nil
	}

	_, err := fmt.Fprintf(h.w, "[%s] %-6s %s\n", clock(e.Timestamp), e.Ext(), e.Path())
	return err
}

// clock extracts the hh:mm:ss.mmm portion of an ISO-8601-like timestamp.
// The timestamp is producer-controlled and unvalidated, so short or odd
// strings are taken as-is rather than rejected.
func clock(timestamp string) string {
	const start, end = 11, 23
	if len(timestamp) < start {
		return timestamp
	}
	if len(timestamp) < end {
		return timestamp[start:]
	}
	return timestamp[start:end]
}
