// Package event defines the decoded change-notification event and its
// NDJSON decoder.
//
// One record on the wire is one UTF-8 JSON object per line. All fields are
// optional; absent fields take zero values so handlers never see nil maps or
// missing keys. Unknown fields are ignored. The decoder is purely syntactic:
// a timestamp that is not a valid date still decodes, and downstream
// consumers must be defensive about field contents.
package event
