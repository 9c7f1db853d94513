/*
File    : lang/diag/diag.go

Package diag holds the single exported error type every package boundary
(lexer.Tokenize, parser.Parse, eval.Runner.Run) wraps its failures in, so a caller
can type-assert with errors.As to tell lex/syntax/runtime diagnostics
apart without parsing message text. The formatted multi-line text itself
(the `- Error -` / `- Code -` shape from spec.md §6) is built by each
owning package, which knows about source byte offsets or opcode origin
lines that diag itself has no business holding.
*/
package diag

// Kind classifies which stage produced a diagnostic.
type Kind int

const (
	Lex Kind = iota
	Syntax
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "Lex"
	case Syntax:
		return "Syntax"
	case Runtime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// Error wraps an already-formatted diagnostic string (produced by the
// owning package's own excerpt/origin-line renderer) with its Kind.
type Error struct {
	Kind    Kind
	Message string
}

func New(kind Kind, formatted string) *Error {
	return &Error{Kind: kind, Message: formatted}
}

func (e *Error) Error() string { return e.Message }
