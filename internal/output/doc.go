// Package output provides the stock event handlers.
//
// PrintHandler is the reference consumer: it prints one line per file save
// (a CLOSE event on a non-directory). TraceHandler decorates any handler
// with one OpenTelemetry span per dispatched event.
//
// Handlers here do no framing and no decoding; they receive fully decoded
// events through the eventstream.Handler interface.
package output
