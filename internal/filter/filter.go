package filter

import (
	"fmt"
	"log"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"usn_tail/internal/event"
	"usn_tail/internal/eventstream"
)

// exprEnv is the typed environment filter expressions are compiled against.
func exprEnv(e *event.Event) map[string]interface{} {
	if e == nil {
		e = &event.Event{Reasons: []string{}}
	}
	return map[string]interface{}{
		"reasons":     e.Reasons,
		"fullPath":    e.FullPath,
		"fileName":    e.FileName,
		"timestamp":   e.Timestamp,
		"isDirectory": e.IsDirectory,
		"path":        e.Path(),
		"ext":         e.Ext(),
	}
}

// Filter is a compiled event-match expression.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile compiles a filter expression. The expression must evaluate to a
// boolean; compilation errors are reported to the caller before any stream
// is opened.
func Compile(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.Env(exprEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expression, err)
	}

	return &Filter{source: expression, program: program}, nil
}

// Match reports whether the event satisfies the expression. A runtime
// evaluation failure counts as no match.
func (f *Filter) Match(e *event.Event) bool {
	out, err := expr.Run(f.program, exprEnv(e))
	if err != nil {
		log.Printf("filter %q: %v", f.source, err)
		return false
	}

	matched, ok := out.(bool)
	return ok && matched
}

// Wrap returns a handler that forwards only matching events to next.
func (f *Filter) Wrap(next eventstream.Handler) eventstream.Handler {
	return eventstream.HandlerFunc(func(e *event.Event) error {
		if !f.Match(e) {
			return nil
		}
		return next.HandleEvent(e)
	})
}
