// Package filter evaluates user-supplied match expressions against decoded
// events.
//
// Expressions use the expr language and see the event's fields directly:
//
//	"CLOSE" in reasons && !isDirectory
//	ext == "txt" || fullPath startsWith "C:\\Work"
//
// Expressions are compiled once, type-checked to yield a bool, and run per
// event. An expression that fails at runtime drops that event, never the
// stream.
package filter
