// Package eventstream reads NDJSON records from a transport and dispatches
// decoded events to a handler.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│   Transport (stdin lines / named pipe)  │
//	└─────────────────┬───────────────────────┘
//	                  │ Source.Read
//	                  ▼
//	┌─────────────────────────────────────────┐
//	│   Stream                                │
//	│   - framed sources: framing.FrameBuffer │
//	│   - line sources: one read = one record │
//	└─────────────────┬───────────────────────┘
//	                  │ event.Decode
//	                  ▼
//	┌─────────────────────────────────────────┐
//	│   Handler.HandleEvent                   │
//	└─────────────────────────────────────────┘
//
// The loop is single-goroutine, blocking, and strictly FIFO: the next chunk
// is requested only after every complete record from the previous one has
// been dispatched. A malformed record is dropped and the loop continues;
// end-of-stream or a read error ends the session normally. Handler errors
// are not caught and terminate the run.
package eventstream
