/*
File    : lang/eval/diagnostics.go

Runtime-error formatting per spec.md §6: unlike the parser's byte-accurate
`>>...<<` excerpts, evaluator diagnostics show the original statement's
trimmed text (the opcode's Origin()) and, when the error surfaces from
inside a condition or loop body, the innermost head line ("if X:" /
"for i, N:"). Grounded on original_source's CodeRunner error plumbing,
which attaches the statement under evaluation to every raised error.
*/
package eval

import "fmt"

// scriptError is a runtime error still open to being wrapped by an
// enclosing Condition or ForLoop as it propagates up execBlock.
type scriptError struct {
	msg      string
	origin   string
	wrapped  bool
	label    string // "Condition" or "For Loop"
	headLine string
}

func (e *scriptError) Error() string {
	if !e.wrapped {
		return fmt.Sprintf("Runtime Error.\n\n- Error -\n  %s\n\n- Code -\n  %s\n", e.msg, e.origin)
	}
	return fmt.Sprintf("Runtime Error in %s.\n\n- Error -\n  %s\n\n- %s -\n  %s\n\n- Code -\n  %s\n",
		e.label, e.msg, e.label, e.headLine, e.origin)
}

func runtimeError(msg, origin string) error {
	return &scriptError{msg: msg, origin: origin}
}

// wrapOnce attaches the innermost Condition/ForLoop context to err, if it
// is a *scriptError that hasn't already been wrapped by a closer
// enclosing body.
func wrapOnce(err error, label, headLine string) error {
	if err == nil {
		return nil
	}
	se, ok := err.(*scriptError)
	if !ok || se.wrapped {
		return err
	}
	se.wrapped = true
	se.label = label
	se.headLine = headLine
	return se
}
