// Package framing reassembles newline-delimited records from a byte stream
// whose chunk boundaries are arbitrary.
//
// A transport such as a named pipe may split one record across several reads
// or pack many records into one. FrameBuffer accumulates chunks and yields
// complete records in arrival order, retaining any trailing partial record
// until the bytes that complete it arrive.
//
// State machine of one buffer:
//
//	┌──────────┐  Append (no '\n' yet)
//	│ Buffering│ ◄──┐
//	└────┬─────┘    │
//	     │ Next finds '\n'
//	     ▼          │
//	┌──────────┐    │
//	│  Record  │────┘ remainder becomes the new buffer
//	└──────────┘
//
// A buffer with no delimiter is the expected steady state between chunks,
// not an error.
package framing
