/*
File    : lang/tokstream/tokstream_test.go
*/
package tokstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formscript/lang/lexer"
)

func sample() []lexer.Token {
	return []lexer.Token{
		lexer.NewToken(lexer.WORD_TYPE, "a"),
		lexer.NewToken(lexer.WORD_TYPE, "b"),
		lexer.NewToken(lexer.WORD_TYPE, "c"),
	}
}

func TestReadAdvancesThroughStream(t *testing.T) {
	r := New(sample())
	tok, ok := r.Read()
	require.True(t, ok)
	assert.Equal(t, "a", tok.Payload)
	tok, ok = r.Read()
	require.True(t, ok)
	assert.Equal(t, "b", tok.Payload)
}

func TestReadReturnsFalseAtEOF(t *testing.T) {
	r := New(sample())
	r.SetPointer(3)
	_, ok := r.Read()
	assert.False(t, ok)
}

func TestUnreadIsNoOpAtZero(t *testing.T) {
	r := New(sample())
	r.Unread()
	assert.Equal(t, 0, r.Pointer())
}

func TestSetPointerRoundTrip(t *testing.T) {
	r := New(sample())
	r.Read()
	r.Read()
	ptr := r.Pointer()
	r.Read()
	r.SetPointer(ptr)
	tok, ok := r.Read()
	require.True(t, ok)
	assert.Equal(t, "c", tok.Payload)
}

func TestMustReadErrorsOnEOF(t *testing.T) {
	r := New(nil)
	_, err := r.MustRead()
	assert.Error(t, err)
}
