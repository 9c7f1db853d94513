/*
File    : lang/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestTokenize(t *testing.T) {
	cases := []tokenCase{
		{
			Input: `x = 1 + 2 * 3`,
			Expected: []Token{
				NewToken(WORD_TYPE, "x"),
				NewToken(ASSIGN, ""),
				NewToken(WORD_TYPE, "1"),
				NewToken(PLUS, ""),
				NewToken(WORD_TYPE, "2"),
				NewToken(ASTERISK, ""),
				NewToken(WORD_TYPE, "3"),
			},
		},
		{
			Input: `if y > 5:` + "\n" + `  y = y - 1` + "\n" + `fi`,
			Expected: []Token{
				NewToken(KEY_IF, ""),
				NewToken(WORD_TYPE, "y"),
				NewToken(GT, ""),
				NewToken(WORD_TYPE, "5"),
				NewToken(COLON, ""),
				NewToken(SEPARATE, ""),
				NewToken(WORD_TYPE, "y"),
				NewToken(ASSIGN, ""),
				NewToken(WORD_TYPE, "y"),
				NewToken(MINUS, ""),
				NewToken(WORD_TYPE, "1"),
				NewToken(SEPARATE, ""),
				NewToken(KEY_FI, ""),
			},
		},
		{
			Input: `{ref, bool, 0}`,
			Expected: []Token{
				NewToken(LEFT_BRACE, ""),
				NewToken(KEY_REF, ""),
				NewToken(COMMA, ""),
				NewToken(KEY_BOOL, ""),
				NewToken(COMMA, ""),
				NewToken(WORD_TYPE, "0"),
				NewToken(RIGHT_BRACE, ""),
			},
		},
		{
			Input: `a = 'foo' + 'bar'`,
			Expected: []Token{
				NewToken(WORD_TYPE, "a"),
				NewToken(ASSIGN, ""),
				NewToken(STRING_TYPE, "foo"),
				NewToken(PLUS, ""),
				NewToken(STRING_TYPE, "bar"),
			},
		},
		{
			Input: `a | b`,
			Expected: []Token{
				NewToken(WORD_TYPE, "a"),
				NewToken(SEPARATE, ""),
				NewToken(WORD_TYPE, "b"),
			},
		},
	}

	for _, c := range cases {
		tokens, err := Tokenize(c.Input)
		assert.NoError(t, err)
		assert.Equal(t, len(c.Expected), len(tokens), "input=%q", c.Input)
		for i := range c.Expected {
			if i >= len(tokens) {
				break
			}
			assert.Equal(t, c.Expected[i].Type, tokens[i].Type, "input=%q index=%d", c.Input, i)
			assert.Equal(t, c.Expected[i].Payload, tokens[i].Payload, "input=%q index=%d", c.Input, i)
		}
	}
}

func TestTokenSpans(t *testing.T) {
	src := "foo + 12"
	tokens, err := Tokenize(src)
	assert.NoError(t, err)
	for _, tok := range tokens {
		switch tok.Type {
		case WORD_TYPE:
			assert.Equal(t, tok.Payload, src[tok.Start:tok.End])
		default:
			// punctuation lexemes are fixed; spot-check '+'
			if tok.Type == PLUS {
				assert.Equal(t, "+", src[tok.Start:tok.End])
			}
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize(`x = 'unterminated`)
	assert.Error(t, err)
}

func TestEscapeSequences(t *testing.T) {
	tokens, err := Tokenize(`'a\nb'`)
	assert.NoError(t, err)
	assert.Len(t, tokens, 1)
	assert.Equal(t, "a\nb", tokens[0].Payload)
}

func TestCommaAndSeparateFold(t *testing.T) {
	tokens, err := Tokenize("a,b\nc")
	assert.NoError(t, err)
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokenType{WORD_TYPE, COMMA, WORD_TYPE, SEPARATE, WORD_TYPE}, types)
}
