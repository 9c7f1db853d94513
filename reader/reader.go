/*
File    : lang/reader/reader.go

Package reader implements a bounded cursor over a source string, shared by
the lexer for whitespace skipping and quoted-string scanning. It mirrors the
teacher's Lexer cursor (Position/Current/Advance) but is factored out as its
own reusable type because the expression grammar's string-literal scanning
(backslash escapes) needs the same primitive the lexer's whitespace skipper
does.
*/
package reader

import (
	"fmt"
	"strconv"
	"strings"
)

// CharReader is a bounded cursor over a source string. It never panics on
// out-of-range access: Read returns a shorter prefix at EOF and Unread
// clamps at position 0.
type CharReader struct {
	Src string // entire source text
	Pos int    // current byte offset, always in [0, len(Src)]
}

// New creates a CharReader positioned at the start of src.
func New(src string) *CharReader {
	return &CharReader{Src: src, Pos: 0}
}

// Len returns the length of the underlying source in bytes.
func (r *CharReader) Len() int {
	return len(r.Src)
}

// SetPointer moves the cursor to ptr, clamped to [0, len(Src)].
func (r *CharReader) SetPointer(ptr int) {
	if ptr < 0 {
		ptr = 0
	}
	if ptr > len(r.Src) {
		ptr = len(r.Src)
	}
	r.Pos = ptr
}

// Read returns up to n bytes starting at the cursor, advancing past them. At
// EOF it returns whatever remains, which may be shorter than n (including
// the empty string).
func (r *CharReader) Read(n int) string {
	end := r.Pos + n
	if end > len(r.Src) {
		end = len(r.Src)
	}
	result := r.Src[r.Pos:end]
	r.Pos = end
	return result
}

// Unread rewinds the cursor by n bytes. It returns an error if that would
// move the cursor before position 0.
func (r *CharReader) Unread(n int) error {
	r.Pos -= n
	if r.Pos < 0 {
		r.Pos = 0
		return fmt.Errorf("unread: tried to unread past the beginning of source")
	}
	return nil
}

// JumpSpace consumes spaces and tabs but deliberately not newlines, since
// newline is a significant SEPARATE token in this grammar.
func (r *CharReader) JumpSpace() {
	for {
		c := r.Read(1)
		if c == " " || c == "\t" {
			continue
		}
		if c != "" {
			_ = r.Unread(1)
		}
		break
	}
}

// ParseString consumes characters after a leading "'" until the matching
// closing quote, decoding backslash escapes along the way. It fails on EOF
// before the closing quote is found.
func (r *CharReader) ParseString() (string, error) {
	var out strings.Builder
	for {
		c := r.Read(1)
		if c == "" {
			return "", fmt.Errorf("parse_string: unexpected end of input inside string literal")
		}
		if c == "\\" {
			decoded, err := r.decodeEscape()
			if err != nil {
				return "", err
			}
			out.WriteString(decoded)
			continue
		}
		if c == "'" {
			break
		}
		out.WriteString(c)
	}
	return out.String(), nil
}

// decodeEscape decodes one backslash escape sequence, having already
// consumed the leading backslash. It supports the standard escapes plus
// \xNN and \uNNNN, matching the "unicode_escape" codec the original
// implementation applies to each \-prefixed pair.
func (r *CharReader) decodeEscape() (string, error) {
	c := r.Read(1)
	if c == "" {
		return "", fmt.Errorf("parse_string: unexpected end of input after escape character")
	}
	switch c {
	case "n":
		return "\n", nil
	case "t":
		return "\t", nil
	case "r":
		return "\r", nil
	case "\\":
		return "\\", nil
	case "'":
		return "'", nil
	case "\"":
		return "\"", nil
	case "x":
		hex := r.Read(2)
		if len(hex) != 2 {
			return "", fmt.Errorf("parse_string: truncated \\x escape")
		}
		v, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return "", fmt.Errorf("parse_string: invalid \\x escape %q", hex)
		}
		return string(rune(v)), nil
	case "u":
		hex := r.Read(4)
		if len(hex) != 4 {
			return "", fmt.Errorf("parse_string: truncated \\u escape")
		}
		v, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return "", fmt.Errorf("parse_string: invalid \\u escape %q", hex)
		}
		return string(rune(v)), nil
	default:
		return c, nil
	}
}
