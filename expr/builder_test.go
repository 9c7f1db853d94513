/*
File    : lang/expr/builder_test.go
*/
package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formscript/lang/lexer"
	"github.com/formscript/lang/tokstream"
)

func build(t *testing.T, src string, ctx Context) *Expression {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	tr := tokstream.New(tokens)
	expr, err := Build(tr, ctx)
	require.NoError(t, err)
	return expr
}

func TestPrecedenceArithmetic(t *testing.T) {
	// 1 + 2 * 3 must bind '*' tighter, yielding Add(1, Times(2,3)).
	e := build(t, "1 + 2 * 3", ContextAssign)
	add, ok := e.Root.(*NaryOp)
	require.True(t, ok)
	assert.Equal(t, KindAdd, add.Op)
	require.Len(t, add.Operands, 2)
	assert.Equal(t, IntLit{Value: 1}, add.Operands[0])
	times, ok := add.Operands[1].(*NaryOp)
	require.True(t, ok)
	assert.Equal(t, KindTimes, times.Op)
	assert.Equal(t, []Element{IntLit{Value: 2}, IntLit{Value: 3}}, times.Operands)
}

func TestUnaryMinusInjection(t *testing.T) {
	// "-3 + 5" must become Add(Remove(0,3), 5).
	e := build(t, "-3 + 5", ContextAssign)
	add, ok := e.Root.(*NaryOp)
	require.True(t, ok)
	assert.Equal(t, KindAdd, add.Op)
	require.Len(t, add.Operands, 2)
	remove, ok := add.Operands[0].(*NaryOp)
	require.True(t, ok)
	assert.Equal(t, KindRemove, remove.Op)
	assert.Equal(t, []Element{IntLit{Value: 0}, IntLit{Value: 3}}, remove.Operands)
	assert.Equal(t, IntLit{Value: 5}, add.Operands[1])
}

func TestChainedAdditionIsOneNode(t *testing.T) {
	e := build(t, "1 + 2 + 3 + 4", ContextAssign)
	add, ok := e.Root.(*NaryOp)
	require.True(t, ok)
	assert.Equal(t, KindAdd, add.Op)
	assert.Len(t, add.Operands, 4)
}

func TestComparisonAndInverse(t *testing.T) {
	e := build(t, "not (3 < 2) and (2 in 'a2b')", ContextAssign)
	and, ok := e.Root.(*NaryOp)
	require.True(t, ok)
	assert.Equal(t, KindAnd, and.Op)
	require.Len(t, and.Operands, 2)

	inv, ok := and.Operands[0].(Inverse)
	require.True(t, ok)
	sub, ok := inv.Operand.(SubExpr)
	require.True(t, ok)
	lt, ok := sub.Expr.Root.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, KindLt, lt.Op)

	sub2, ok := and.Operands[1].(SubExpr)
	require.True(t, ok)
	in, ok := sub2.Expr.Root.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, KindIn, in.Op)
}

func TestMultiCharComparisonOperators(t *testing.T) {
	cases := map[string]Kind{
		"a == b": KindEq,
		"a != b": KindNeq,
		"a <= b": KindLe,
		"a >= b": KindGe,
		"a < b":  KindLt,
		"a > b":  KindGt,
	}
	for src, wantOp := range cases {
		e := build(t, src, ContextAssign)
		bin, ok := e.Root.(*BinaryOp)
		require.True(t, ok, "src=%q", src)
		assert.Equal(t, wantOp, bin.Op, "src=%q", src)
	}
}

func TestBarrierFormRef(t *testing.T) {
	e := build(t, "{ref, bool, 0}", ContextAssign)
	ref, ok := e.Root.(RefForm)
	require.True(t, ok)
	assert.Equal(t, TypeBool, ref.AssertedType)
	assert.Equal(t, IntLit{Value: 0}, ref.Index)
}

func TestBarrierFormScoreAndFunc(t *testing.T) {
	e := build(t, "{score, '@p', 'money'}", ContextAssign)
	score, ok := e.Root.(ScoreForm)
	require.True(t, ok)
	assert.Equal(t, StrLit{Value: "@p"}, score.Target)
	assert.Equal(t, StrLit{Value: "money"}, score.Scoreboard)

	e2 := build(t, "{func, uuid, ()}", ContextAssign)
	fn, ok := e2.Root.(FuncCall)
	require.True(t, ok)
	assert.Equal(t, "uuid", fn.Name)
	assert.Empty(t, fn.Args)

	e3 := build(t, "{func, max, (1, 2)}", ContextAssign)
	fn3, ok := e3.Root.(FuncCall)
	require.True(t, ok)
	assert.Equal(t, "max", fn3.Name)
	assert.Len(t, fn3.Args, 2)
}

func TestCastSyntax(t *testing.T) {
	e := build(t, "int('42')", ContextAssign)
	cast, ok := e.Root.(Cast)
	require.True(t, ok)
	assert.Equal(t, TypeInt, cast.Type)
	assert.Equal(t, StrLit{Value: "42"}, cast.Operand)
}

func TestFloatLiteral(t *testing.T) {
	e := build(t, "3.14", ContextAssign)
	assert.Equal(t, FloatLit{Value: 3.14}, e.Root)
}

func TestStringConcatenation(t *testing.T) {
	e := build(t, "'foo' + 'bar'", ContextAssign)
	add, ok := e.Root.(*NaryOp)
	require.True(t, ok)
	assert.Equal(t, KindAdd, add.Op)
	assert.Equal(t, []Element{StrLit{Value: "foo"}, StrLit{Value: "bar"}}, add.Operands)
}

func TestMustCompactToSingleElement(t *testing.T) {
	tokens, err := lexer.Tokenize("1 2")
	require.NoError(t, err)
	tr := tokstream.New(tokens)
	_, err = Build(tr, ContextAssign)
	assert.Error(t, err)
}

func TestInvalidIdentifier(t *testing.T) {
	tokens, err := lexer.Tokenize("1abc + 1")
	require.NoError(t, err)
	tr := tokstream.New(tokens)
	_, err = Build(tr, ContextAssign)
	assert.Error(t, err)
}
