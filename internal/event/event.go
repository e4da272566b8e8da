package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Event is one decoded USN change notification.
type Event struct {
	// Reasons lists the change reason tags in producer order (e.g. "CLOSE").
	Reasons []string `json:"reasons"`
	// FullPath is the absolute path of the changed file, when known.
	FullPath string `json:"fullPath"`
	// FileName is the bare file name, used when FullPath is absent.
	FileName string `json:"fileName"`
	// Timestamp is the producer's ISO-8601-like timestamp, passed through
	// verbatim without validation.
	Timestamp string `json:"timestamp"`
	// IsDirectory reports whether the changed object is a directory.
	IsDirectory bool `json:"isDirectory"`
}

// Decode parses one NDJSON record into an Event.
// The record must be valid UTF-8 and a syntactically valid JSON object;
// anything else is a decode error and the caller drops the record.
// Unknown fields are ignored.
func Decode(record []byte) (Event, error) {
	if !utf8.Valid(record) {
		return Event{}, fmt.Errorf("record is not valid UTF-8")
	}

	// An event is a JSON object. A top-level null unmarshals into a
	// zero struct without error, which would dispatch a phantom event;
	// reject any non-object value up front.
	trimmed := bytes.TrimLeft(record, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Event{}, fmt.Errorf("record is not a JSON object")
	}

	var e Event
	if err := json.Unmarshal(record, &e); err != nil {
		return Event{}, fmt.Errorf("decoding record: %w", err)
	}

	// Handlers see an empty slice, never nil, for an absent reasons field.
	if e.Reasons == nil {
		e.Reasons = []string{}
	}

	return e, nil
}

// Path returns FullPath when set, otherwise FileName.
func (e *Event) Path() string {
	if e.FullPath != "" {
		return e.FullPath
	}
	return e.FileName
}

// Ext returns the extension after the last dot of Path, without the dot.
// It returns "" when the path has no dot.
func (e *Event) Ext() string {
	p := e.Path()
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		return p[i+1:]
	}
	return ""
}

// HasReason reports whether the event carries the given reason tag.
func (e *Event) HasReason(reason string) bool {
	for _, r := range e.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}
