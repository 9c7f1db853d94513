/*
File    : lang/host/host_test.go
*/
package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formscript/lang/expr"
)

func TestGameInteractStubs(t *testing.T) {
	var g *GameInteract
	s, err := g.Selector("@a")
	require.NoError(t, err)
	assert.Equal(t, "", s)

	sc, err := g.Score("@a", "money")
	require.NoError(t, err)
	assert.Equal(t, int64(0), sc)

	v, err := g.Ref(0)
	require.NoError(t, err)
	assert.Equal(t, Int(0), v)
}

func TestLongFormRef(t *testing.T) {
	g := &GameInteract{RefFunc: LongFormRef(3)}
	i, err := g.Ref(-1)
	require.NoError(t, err)
	assert.Equal(t, Int(3), i)

	b, err := g.Ref(3)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), b)

	b2, err := g.Ref(1)
	require.NoError(t, err)
	assert.Equal(t, Bool(false), b2)
}

func TestShortFormRef(t *testing.T) {
	g := &GameInteract{RefFunc: ShortFormRef(true)}
	b, err := g.Ref(-1)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), b)

	match, err := g.Ref(1)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), match)
}

func TestCoerceAndAssert(t *testing.T) {
	v, err := Coerce(Str("42"), expr.TypeInt)
	require.NoError(t, err)
	assert.Equal(t, Int(42), v)

	_, err = Coerce(Str("nope"), expr.TypeInt)
	assert.Error(t, err)

	_, err = AssertType(Int(1), expr.TypeBool)
	assert.Error(t, err)

	ok, err := AssertType(Bool(true), expr.TypeBool)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), ok)
}

func TestRegistryLookupOrder(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterStatic("double", func(args []Scalar) (Scalar, error) {
		return Int(args[0].Int * 2), nil
	})

	castFn, err := reg.Lookup("int")
	require.NoError(t, err)
	v, err := castFn([]Scalar{Str("7")})
	require.NoError(t, err)
	assert.Equal(t, Int(7), v)

	staticFn, err := reg.Lookup("double")
	require.NoError(t, err)
	v2, err := staticFn([]Scalar{Int(5)})
	require.NoError(t, err)
	assert.Equal(t, Int(10), v2)

	_, err = reg.Lookup("missing")
	assert.Error(t, err)
}
