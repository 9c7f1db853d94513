/*
File    : lang/lexer/lexer.go
*/
package lexer

import (
	"fmt"

	"github.com/formscript/lang/diag"
	"github.com/formscript/lang/reader"
)

// Lexer performs a single pass over form-script source text, producing one
// Token at a time via Next. It owns a reader.CharReader for whitespace
// skipping and quoted-string scanning.
type Lexer struct {
	r *reader.CharReader
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{r: reader.New(src)}
}

// isSpaceOrTab reports whether b is an indentation character that
// JumpSpace already eats; used to detect word terminators.
func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

func isWordTerminator(b byte) bool {
	if isSpaceOrTab(b) || b == '\n' {
		return true
	}
	_, isPunct := charTokens[b]
	return isPunct
}

// Next scans and returns the next token, or an EOF_TYPE token once the
// source is exhausted. The only errors this returns come from scanning a
// string literal: an unterminated string or a malformed \x/\u escape.
func (l *Lexer) Next() (Token, error) {
	l.r.JumpSpace()
	start := l.r.Pos

	word := l.r.Read(1)
	if word == "" {
		return Token{Type: EOF_TYPE, Start: start, End: start}, nil
	}

	if word == "'" {
		payload, err := l.r.ParseString()
		if err != nil {
			return Token{}, err
		}
		return Token{Type: STRING_TYPE, Payload: payload, Start: start, End: l.r.Pos}, nil
	}

	if tt, ok := charTokens[word[0]]; ok {
		return Token{Type: tt, Start: start, End: l.r.Pos}, nil
	}

	for {
		c := l.r.Read(1)
		if c == "" {
			break
		}
		if isWordTerminator(c[0]) {
			_ = l.r.Unread(1)
			break
		}
		word += c
	}

	return Token{Type: lookupWord(word), Payload: word, Start: start, End: l.r.Pos}, nil
}

// Tokenize scans the entire source and returns every non-EOF token, or the
// first lex error encountered (from string-literal scanning), along with the byte
// offsets the error occurred within.
func Tokenize(src string) ([]Token, error) {
	l := New(src)
	tokens := make([]Token, 0, len(src)/4)
	for {
		startPtr := l.r.Pos
		tok, err := l.Next()
		if err != nil {
			msg := fmt.Sprintf("Lex Error.\n\n- Error -\n  %s\n\n- Code -\n%s", err, formatExcerpt(src, startPtr, l.r.Pos))
			return nil, diag.New(diag.Lex, msg)
		}
		if tok.Type == EOF_TYPE {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// formatExcerpt renders the >>...<< marked source excerpt spec.md §4.5
// mandates, with up to 30 characters of context on each side and "..."
// truncation indicators.
func formatExcerpt(src string, start, end int) string {
	if start > end {
		start, end = end, start
	}
	if start > len(src) {
		start = len(src)
	}
	if end > len(src) {
		end = len(src)
	}

	var out string
	if start-30 > 0 {
		out += "..."
		out += src[start-30 : start]
	} else {
		out += src[:start]
	}
	out += ">>"
	out += src[start:end]
	out += "<<"
	if end+30 < len(src) {
		out += src[end : end+30]
		out += "..."
	} else {
		out += src[end:]
	}
	return out
}

// FormatExcerpt is the exported form, used by the parser package so both
// lex-time and parse-time diagnostics share one rendering implementation.
func FormatExcerpt(src string, start, end int) string {
	return formatExcerpt(src, start, end)
}
