/*
File    : lang/reader/reader_test.go
*/
package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAdvancesAndEOFShortens(t *testing.T) {
	r := New("ab")
	assert.Equal(t, "a", r.Read(1))
	assert.Equal(t, "b", r.Read(1))
	assert.Equal(t, "", r.Read(1))
}

func TestSetPointerRoundTrip(t *testing.T) {
	r := New("hello")
	r.Read(3)
	pos := r.Pos
	r.Read(2)
	r.SetPointer(pos)
	assert.Equal(t, "lo", r.Read(2))
}

func TestUnreadClampsAtZero(t *testing.T) {
	r := New("abc")
	err := r.Unread(5)
	assert.Error(t, err)
	assert.Equal(t, 0, r.Pos)
}

func TestJumpSpaceSkipsSpacesAndTabsNotNewline(t *testing.T) {
	r := New("  \t x\ny")
	r.JumpSpace()
	assert.Equal(t, "x", r.Read(1))
	r.Read(1) // consume newline
	r.JumpSpace()
	assert.Equal(t, "y", r.Read(1))
}

func TestParseStringDecodesEscapes(t *testing.T) {
	r := New(`hi\n\t'rest`)
	s, err := r.ParseString()
	require.NoError(t, err)
	assert.Equal(t, "hi\n\t", s)
	assert.Equal(t, "rest", r.Read(4))
}

func TestParseStringUnterminatedErrors(t *testing.T) {
	r := New("no closing quote")
	_, err := r.ParseString()
	assert.Error(t, err)
}
