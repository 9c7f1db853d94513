/*
File    : lang/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formscript/lang/expr"
)

func TestParseAssignAndReturn(t *testing.T) {
	ops, err := Parse("x = 1 + 2 * 3\nreturn x")
	require.NoError(t, err)
	require.Len(t, ops, 2)

	assign, ok := ops[0].(Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)

	ret, ok := ops[1].(Return)
	require.True(t, ok)
	assert.Equal(t, expr.KindVar, ret.Expr.Root.Kind())
}

func TestParseIfElifElse(t *testing.T) {
	src := "y = 10\n" +
		"if y > 5:\n" +
		"  y = y - 1\n" +
		"elif y == 5:\n" +
		"  y = 0\n" +
		"else:\n" +
		"  y = -1\n" +
		"fi\n" +
		"return y"
	ops, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	cond, ok := ops[1].(Condition)
	require.True(t, ok)
	require.Len(t, cond.Branches, 3)
	assert.NotNil(t, cond.Branches[0].Cond)
	assert.NotNil(t, cond.Branches[1].Cond)
	assert.Nil(t, cond.Branches[2].Cond)
	assert.Equal(t, "if y > 5:", cond.Branches[0].StateLine)
}

func TestParseForLoopWithContinue(t *testing.T) {
	src := "s = 0\n" +
		"for i, 5:\n" +
		"  if i == 2:\n" +
		"    continue\n" +
		"  fi\n" +
		"  s = s + i\n" +
		"rof\n" +
		"return s"
	ops, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	loop, ok := ops[1].(ForLoop)
	require.True(t, ok)
	assert.Equal(t, "i", loop.Var)
	assert.Equal(t, "for i, 5:", loop.StateLine)
	require.Len(t, loop.Body, 2)

	innerCond, ok := loop.Body[0].(Condition)
	require.True(t, ok)
	require.Len(t, innerCond.Branches, 1)
	_, ok = innerCond.Branches[0].Body[0].(Continue)
	assert.True(t, ok)
}

func TestUnbalancedIfReportsSyntaxError(t *testing.T) {
	_, err := Parse("if 1 > 0:\n  x = 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `If statement not closed with "fi"`)
	assert.Contains(t, err.Error(), ">>")
}

func TestUnbalancedForReportsSyntaxError(t *testing.T) {
	_, err := Parse("for i, 3:\n  x = i")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `For loop not closed with "rof"`)
}

func TestBareExpressionStatementRecordsValue(t *testing.T) {
	ops, err := Parse("1 + 1")
	require.NoError(t, err)
	require.Len(t, ops, 1)
	_, ok := ops[0].(ExpressionStmt)
	assert.True(t, ok)
}

func TestInvalidAssignmentTargetIsSyntaxError(t *testing.T) {
	_, err := Parse("1abc = 5")
	assert.Error(t, err)
}
