/*
File    : lang/stdfuncs/stdfuncs_test.go
*/
package stdfuncs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formscript/lang/host"
)

func TestUpperLowerTrim(t *testing.T) {
	reg := NewRegistry()

	upper, err := reg.Lookup("upper")
	require.NoError(t, err)
	v, err := upper([]host.Scalar{host.Str("hi")})
	require.NoError(t, err)
	assert.Equal(t, host.Str("HI"), v)

	trim, err := reg.Lookup("trim")
	require.NoError(t, err)
	v, err = trim([]host.Scalar{host.Str("  hi  ")})
	require.NoError(t, err)
	assert.Equal(t, host.Str("hi"), v)
}

func TestContains(t *testing.T) {
	reg := NewRegistry()
	contains, err := reg.Lookup("contains")
	require.NoError(t, err)
	v, err := contains([]host.Scalar{host.Str("a2b"), host.Str("2")})
	require.NoError(t, err)
	assert.Equal(t, host.Bool(true), v)
}

func TestUUIDReturnsDistinctStrings(t *testing.T) {
	reg := NewRegistry()
	fn, err := reg.Lookup("uuid")
	require.NoError(t, err)

	a, err := fn(nil)
	require.NoError(t, err)
	b, err := fn(nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.Str, b.Str)
	assert.Len(t, a.Str, 36)
}

func TestMathHelpers(t *testing.T) {
	reg := NewRegistry()

	sqrt, err := reg.Lookup("sqrt")
	require.NoError(t, err)
	v, err := sqrt([]host.Scalar{host.Int(9)})
	require.NoError(t, err)
	assert.Equal(t, host.Float(3), v)

	maxFn, err := reg.Lookup("max")
	require.NoError(t, err)
	v, err = maxFn([]host.Scalar{host.Int(3), host.Float(7.5)})
	require.NoError(t, err)
	assert.Equal(t, host.Float(7.5), v)

	pow, err := reg.Lookup("pow")
	require.NoError(t, err)
	v, err = pow([]host.Scalar{host.Int(2), host.Int(10)})
	require.NoError(t, err)
	assert.Equal(t, host.Float(1024), v)
}

func TestCastStillReachableThroughRegistry(t *testing.T) {
	reg := NewRegistry()
	castInt, err := reg.Lookup("int")
	require.NoError(t, err)
	v, err := castInt([]host.Scalar{host.Str("42")})
	require.NoError(t, err)
	assert.Equal(t, host.Int(42), v)
}
