/*
File    : lang/tokstream/tokstream.go

Package tokstream provides a bounded, rewindable cursor over a token
sequence. The expression builder and statement parser share one of these so
that a failed speculative parse can rewind the cursor and try an
alternative grammar rule.
*/
package tokstream

import (
	"fmt"

	"github.com/formscript/lang/lexer"
)

// Reader is a bounded cursor over a fixed token slice.
type Reader struct {
	tokens []lexer.Token
	pos    int
}

// New wraps tokens in a Reader starting at position 0.
func New(tokens []lexer.Token) *Reader {
	return &Reader{tokens: tokens}
}

// Tokens returns the underlying token slice (read-only use expected).
func (r *Reader) Tokens() []lexer.Token {
	return r.tokens
}

// Pointer returns the current cursor position.
func (r *Reader) Pointer() int {
	return r.pos
}

// SetPointer moves the cursor to ptr, clamped to [0, len(tokens)].
func (r *Reader) SetPointer(ptr int) {
	if ptr < 0 {
		ptr = 0
	}
	if ptr > len(r.tokens) {
		ptr = len(r.tokens)
	}
	r.pos = ptr
}

// Read returns the token at the cursor and advances past it, or false if
// the stream is exhausted.
func (r *Reader) Read() (lexer.Token, bool) {
	if r.pos >= len(r.tokens) {
		return lexer.Token{}, false
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, true
}

// Unread rewinds the cursor by one token. It is a no-op at position 0,
// matching the teacher's clamped-pointer style rather than the original's
// panic-on-underflow, since callers here never intentionally unread past 0.
func (r *Reader) Unread() *Reader {
	if r.pos > 0 {
		r.pos--
	}
	return r
}

// MustRead reads the next token or returns an error on EOF.
func (r *Reader) MustRead() (lexer.Token, error) {
	tok, ok := r.Read()
	if !ok {
		return lexer.Token{}, fmt.Errorf("must_read: unexpected end of token stream")
	}
	return tok, nil
}
