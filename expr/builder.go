/*
File    : lang/expr/builder.go

Phase A (linearisation) and phase B (precedence compaction) of the
expression builder, grounded on original_source/package/expression's
define/basic/combine/compute/compare modules for precedence order and
arity invariants, and on the teacher's parser/node.go for the general
shape of a recursive-descent Go builder (tag dispatch used here instead
of the teacher's visitor interface, per the element-kind design note).
*/
package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/formscript/lang/lexer"
	"github.com/formscript/lang/tokstream"
)

// Context is a bitmask naming where a token run is being linearised from;
// it determines which token(s) terminate the run.
type Context int

const (
	ContextAssign Context = 1 << iota
	ContextIf
	ContextFor
	ContextArgument
	ContextSubExpr
	ContextBarrier
)

// isTerminator reports whether tt ends a token run opened in ctx.
//
// The for-loop count expression is written "for i, N:" — a trailing colon
// precedes the loop body exactly like an if-condition — so ContextFor
// shares COLON-termination with ContextIf rather than the SEPARATE rule a
// literal reading of the loop-count context description would suggest;
// the worked example in the test scenarios is the more authoritative
// source here.
func isTerminator(tt lexer.TokenType, ctx Context) bool {
	switch {
	case ctx&ContextAssign != 0 && tt == lexer.SEPARATE:
		return true
	case ctx&(ContextIf|ContextFor) != 0 && tt == lexer.COLON:
		return true
	case ctx&ContextArgument != 0 && (tt == lexer.COMMA || tt == lexer.RIGHT_PAREN):
		return true
	case ctx&ContextSubExpr != 0 && tt == lexer.RIGHT_PAREN:
		return true
	case ctx&ContextBarrier != 0 && (tt == lexer.COMMA || tt == lexer.RIGHT_BRACE):
		return true
	}
	return false
}

// eofAllowed reports whether running out of tokens may stand in for an
// explicit terminator — true only at the outermost ASSIGN level, where the
// final statement of a script need not end with a newline.
func eofAllowed(ctx Context) bool {
	return ctx&ContextAssign != 0
}

// Build runs phase A then phase B over the token reader starting at its
// current position, returning the single resulting Expression or a syntax
// error. On any error the cursor position is left where the failure
// occurred; callers doing speculative parsing must save/restore the
// position themselves around Build.
func Build(tr *tokstream.Reader, ctx Context) (*Expression, error) {
	flat, err := linearise(tr, ctx)
	if err != nil {
		return nil, err
	}
	root, err := compact(flat)
	if err != nil {
		return nil, err
	}
	return &Expression{Root: root}, nil
}

// linearise implements phase A: token run -> flat []Element (including
// un-compacted opToken placeholders).
func linearise(tr *tokstream.Reader, ctx Context) ([]Element, error) {
	var out []Element

	for {
		tok, ok := tr.Read()
		if !ok {
			if eofAllowed(ctx) {
				return out, nil
			}
			return nil, fmt.Errorf("unexpected end of input while parsing expression")
		}

		if isTerminator(tok.Type, ctx) {
			tr.Unread()
			return out, nil
		}

		switch tok.Type {
		case lexer.WORD_TYPE:
			elem, err := classifyWord(tok.Payload)
			if err != nil {
				return nil, err
			}
			out = append(out, elem)

		case lexer.STRING_TYPE:
			out = append(out, StrLit{Value: tok.Payload})

		case lexer.KEY_TRUE:
			out = append(out, BoolLit{Value: true})
		case lexer.KEY_FALSE:
			out = append(out, BoolLit{Value: false})

		case lexer.PLUS:
			out = append(out, opToken{op: KindAdd})
		case lexer.MINUS:
			out = append(out, opToken{op: KindRemove})
		case lexer.ASTERISK:
			out = append(out, opToken{op: KindTimes})
		case lexer.SLASH:
			out = append(out, opToken{op: KindDivide})

		case lexer.LT:
			out = append(out, opToken{op: followedByEq(tr, KindLe, KindLt)})
		case lexer.GT:
			out = append(out, opToken{op: followedByEq(tr, KindGe, KindGt)})
		case lexer.ASSIGN:
			if !consumeIf(tr, lexer.ASSIGN) {
				return nil, fmt.Errorf("unexpected '=' in expression (did you mean '=='?)")
			}
			out = append(out, opToken{op: KindEq})
		case lexer.BANG:
			if !consumeIf(tr, lexer.ASSIGN) {
				return nil, fmt.Errorf("unexpected '!' in expression (did you mean '!='?)")
			}
			out = append(out, opToken{op: KindNeq})

		case lexer.KEY_AND:
			out = append(out, opToken{op: KindAnd})
		case lexer.KEY_OR:
			out = append(out, opToken{op: KindOr})
		case lexer.KEY_NOT:
			out = append(out, opToken{op: KindInverse})
		case lexer.KEY_IN:
			out = append(out, opToken{op: KindIn})

		case lexer.LEFT_PAREN:
			sub, err := Build(tr, ContextSubExpr)
			if err != nil {
				return nil, err
			}
			if _, ok := tr.Read(); !ok {
				return nil, fmt.Errorf("unclosed '(' in expression")
			}
			out = append(out, SubExpr{Expr: sub})

		case lexer.LEFT_BRACE:
			elem, err := parseBarrier(tr)
			if err != nil {
				return nil, err
			}
			out = append(out, elem)

		case lexer.KEY_INT, lexer.KEY_BOOL, lexer.KEY_STR, lexer.KEY_FLOAT:
			elem, err := parseCast(tr, castType(tok.Type))
			if err != nil {
				return nil, err
			}
			out = append(out, elem)

		case lexer.KEY_REF, lexer.KEY_SELECTOR, lexer.KEY_SCORE, lexer.KEY_COMMAND, lexer.KEY_FUNC:
			return nil, fmt.Errorf("%q is only valid inside a barrier form '{...}'", tok.Type)

		case lexer.RIGHT_PAREN, lexer.RIGHT_BRACE, lexer.COMMA, lexer.COLON, lexer.SEPARATE:
			return nil, fmt.Errorf("unexpected %q not permitted in this expression context", tok.Type)

		case lexer.KEY_RETURN, lexer.KEY_IF, lexer.KEY_ELSE, lexer.KEY_ELIF, lexer.KEY_FI,
			lexer.KEY_FOR, lexer.KEY_CONTINUE, lexer.KEY_BREAK, lexer.KEY_ROF:
			return nil, fmt.Errorf("keyword %q is not valid inside an expression", tok.Type)

		default:
			return nil, fmt.Errorf("unexpected token %q in expression", tok.Type)
		}
	}
}

func castType(tt lexer.TokenType) ScalarType {
	switch tt {
	case lexer.KEY_INT:
		return TypeInt
	case lexer.KEY_BOOL:
		return TypeBool
	case lexer.KEY_FLOAT:
		return TypeFloat
	default:
		return TypeStr
	}
}

// followedByEq peeks one token ahead: if it is '=', consumes it and
// returns withEq; otherwise leaves the cursor untouched and returns plain.
func followedByEq(tr *tokstream.Reader, withEq, plain Kind) Kind {
	if consumeIf(tr, lexer.ASSIGN) {
		return withEq
	}
	return plain
}

// consumeIf reads one token; if it matches tt, it is consumed (returns
// true); otherwise the cursor is restored.
func consumeIf(tr *tokstream.Reader, tt lexer.TokenType) bool {
	tok, ok := tr.Read()
	if ok && tok.Type == tt {
		return true
	}
	if ok {
		tr.Unread()
	}
	return false
}

func classifyWord(word string) (Element, error) {
	if strings.Contains(word, ".") {
		if f, err := strconv.ParseFloat(word, 64); err == nil {
			return FloatLit{Value: f}, nil
		}
	}
	if i, err := strconv.ParseInt(word, 10, 64); err == nil {
		return IntLit{Value: i}, nil
	}
	if err := validateIdentifier(word); err != nil {
		return nil, err
	}
	return VarRef{Name: word}, nil
}

// ValidateIdentifier re-exports the identifier check for the statement
// parser, which must re-validate assignment and loop-variable names at
// sites the expression builder never visits directly.
func ValidateIdentifier(name string) error {
	return validateIdentifier(name)
}

func validateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("empty identifier")
	}
	if name[0] >= '0' && name[0] <= '9' {
		return fmt.Errorf("identifier %q must not start with a digit", name)
	}
	if strings.ContainsAny(name, ".'\"") {
		return fmt.Errorf("identifier %q must not contain '.', '\\'' or '\"'", name)
	}
	return nil
}

// parseCast parses "( EXPR )" following a type keyword and wraps it as a
// Cast element.
func parseCast(tr *tokstream.Reader, t ScalarType) (Element, error) {
	tok, ok := tr.Read()
	if !ok || tok.Type != lexer.LEFT_PAREN {
		return nil, fmt.Errorf("expected '(' after cast keyword")
	}
	sub, err := Build(tr, ContextSubExpr)
	if err != nil {
		return nil, err
	}
	if _, ok := tr.Read(); !ok {
		return nil, fmt.Errorf("unclosed '(' in cast expression")
	}
	return Cast{Type: t, Operand: sub.Root}, nil
}

// parseBarrier parses the body of a "{...}" form after the opening brace
// has already been consumed, dispatching on the keyword that follows.
func parseBarrier(tr *tokstream.Reader) (Element, error) {
	kw, ok := tr.Read()
	if !ok {
		return nil, fmt.Errorf("unclosed '{' barrier form")
	}

	switch kw.Type {
	case lexer.KEY_REF:
		if err := expect(tr, lexer.COMMA); err != nil {
			return nil, err
		}
		typeTok, ok := tr.Read()
		if !ok {
			return nil, fmt.Errorf("expected a type keyword in {ref, TYPE, EXPR}")
		}
		assertedType, err := scalarTypeFromToken(typeTok.Type)
		if err != nil {
			return nil, err
		}
		if err := expect(tr, lexer.COMMA); err != nil {
			return nil, err
		}
		idx, err := Build(tr, ContextBarrier)
		if err != nil {
			return nil, err
		}
		if err := expect(tr, lexer.RIGHT_BRACE); err != nil {
			return nil, err
		}
		return RefForm{AssertedType: assertedType, Index: idx.Root}, nil

	case lexer.KEY_SELECTOR:
		if err := expect(tr, lexer.COMMA); err != nil {
			return nil, err
		}
		arg, err := Build(tr, ContextBarrier)
		if err != nil {
			return nil, err
		}
		if err := expect(tr, lexer.RIGHT_BRACE); err != nil {
			return nil, err
		}
		return SelectorForm{Arg: arg.Root}, nil

	case lexer.KEY_SCORE:
		if err := expect(tr, lexer.COMMA); err != nil {
			return nil, err
		}
		target, err := Build(tr, ContextBarrier)
		if err != nil {
			return nil, err
		}
		if err := expect(tr, lexer.COMMA); err != nil {
			return nil, err
		}
		board, err := Build(tr, ContextBarrier)
		if err != nil {
			return nil, err
		}
		if err := expect(tr, lexer.RIGHT_BRACE); err != nil {
			return nil, err
		}
		return ScoreForm{Target: target.Root, Scoreboard: board.Root}, nil

	case lexer.KEY_COMMAND:
		if err := expect(tr, lexer.COMMA); err != nil {
			return nil, err
		}
		arg, err := Build(tr, ContextBarrier)
		if err != nil {
			return nil, err
		}
		if err := expect(tr, lexer.RIGHT_BRACE); err != nil {
			return nil, err
		}
		return CommandForm{Arg: arg.Root}, nil

	case lexer.KEY_FUNC:
		if err := expect(tr, lexer.COMMA); err != nil {
			return nil, err
		}
		nameTok, ok := tr.Read()
		if !ok {
			return nil, fmt.Errorf("expected a name in {func, NAME, (...)}")
		}
		name := nameTok.Payload
		if name == "" {
			name = string(nameTok.Type)
		}
		if err := expect(tr, lexer.COMMA); err != nil {
			return nil, err
		}
		if err := expect(tr, lexer.LEFT_PAREN); err != nil {
			return nil, err
		}
		var args []Element
		for {
			tok, ok := tr.Read()
			if !ok {
				return nil, fmt.Errorf("unclosed '(' in function call arguments")
			}
			if tok.Type == lexer.RIGHT_PAREN {
				break
			}
			tr.Unread()
			arg, err := Build(tr, ContextArgument)
			if err != nil {
				return nil, err
			}
			args = append(args, arg.Root)
			sep, ok := tr.Read()
			if !ok {
				return nil, fmt.Errorf("unclosed '(' in function call arguments")
			}
			if sep.Type == lexer.RIGHT_PAREN {
				break
			}
			if sep.Type != lexer.COMMA {
				return nil, fmt.Errorf("expected ',' or ')' in function call arguments")
			}
		}
		if err := expect(tr, lexer.RIGHT_BRACE); err != nil {
			return nil, err
		}
		return FuncCall{Name: name, Args: args}, nil

	default:
		return nil, fmt.Errorf("unknown barrier keyword %q", kw.Type)
	}
}

func scalarTypeFromToken(tt lexer.TokenType) (ScalarType, error) {
	switch tt {
	case lexer.KEY_INT:
		return TypeInt, nil
	case lexer.KEY_BOOL:
		return TypeBool, nil
	case lexer.KEY_FLOAT:
		return TypeFloat, nil
	case lexer.KEY_STR:
		return TypeStr, nil
	default:
		return 0, fmt.Errorf("expected one of int/bool/float/str, got %q", tt)
	}
}

func expect(tr *tokstream.Reader, tt lexer.TokenType) error {
	tok, ok := tr.Read()
	if !ok || tok.Type != tt {
		return fmt.Errorf("expected %q", tt)
	}
	return nil
}

// compact runs phase B: the fixed precedence sequence of folds, returning
// the single surviving root element.
func compact(flat []Element) (Element, error) {
	levels := []struct {
		op     Kind
		unary  bool
		binary bool // exactly-2-operand comparison shape instead of n-ary fold
	}{
		{op: KindDivide, unary: false},
		{op: KindTimes, unary: false},
		{op: KindRemove, unary: true},
		{op: KindAdd, unary: true},
		{op: KindGt, binary: true},
		{op: KindLt, binary: true},
		{op: KindGe, binary: true},
		{op: KindLe, binary: true},
		{op: KindEq, binary: true},
		{op: KindNeq, binary: true},
		{op: KindIn, binary: true},
	}

	var err error
	for _, lvl := range levels {
		if lvl.binary {
			flat, err = foldBinary(flat, lvl.op)
		} else {
			flat, err = foldNary(flat, lvl.op, lvl.unary)
		}
		if err != nil {
			return nil, err
		}
	}

	flat, err = foldInverse(flat)
	if err != nil {
		return nil, err
	}

	flat, err = foldNary(flat, KindAnd, false)
	if err != nil {
		return nil, err
	}
	flat, err = foldNary(flat, KindOr, false)
	if err != nil {
		return nil, err
	}

	if len(flat) != 1 {
		return nil, fmt.Errorf("expression failed to compact to a single value (got %d residual elements)", len(flat))
	}
	if isOpMarker(flat[0]) {
		return nil, fmt.Errorf("expression ends with a dangling operator")
	}
	return flat[0], nil
}

// foldNary folds every maximal run of operator `op` into one NaryOp node,
// left to right. When unaryInject is true (Add/Remove only), a missing
// left operand synthesizes an Int(0) so "-x" becomes "0 - x".
func foldNary(in []Element, op Kind, unaryInject bool) ([]Element, error) {
	out := make([]Element, 0, len(in))
	i := 0
	for i < len(in) {
		e := in[i]
		if !isOp(e, op) {
			out = append(out, e)
			i++
			continue
		}

		var left Element
		if len(out) > 0 && IsOperandKind(out[len(out)-1]) {
			left = out[len(out)-1]
			out = out[:len(out)-1]
		} else if unaryInject {
			left = IntLit{Value: 0}
		} else {
			return nil, fmt.Errorf("%s has no left operand", op)
		}

		operands := []Element{left}
		for i < len(in) && isOp(in[i], op) {
			i++
			if i >= len(in) || !IsOperandKind(in[i]) {
				return nil, fmt.Errorf("%s has no right operand", op)
			}
			operands = append(operands, in[i])
			i++
		}

		node, err := NewNaryOp(op, operands)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

// foldBinary folds each occurrence of an exactly-2-operand comparison
// operator with the operand on either side, left to right across the
// element list.
func foldBinary(in []Element, op Kind) ([]Element, error) {
	out := make([]Element, 0, len(in))
	i := 0
	for i < len(in) {
		e := in[i]
		if !isOp(e, op) {
			out = append(out, e)
			i++
			continue
		}
		if len(out) == 0 || !IsOperandKind(out[len(out)-1]) {
			return nil, fmt.Errorf("%s has no left operand", op)
		}
		left := out[len(out)-1]
		out = out[:len(out)-1]
		i++
		if i >= len(in) || !IsOperandKind(in[i]) {
			return nil, fmt.Errorf("%s has no right operand", op)
		}
		right := in[i]
		i++
		out = append(out, NewBinaryOp(op, left, right))
	}
	return out, nil
}

// foldInverse folds every "not" prefix marker together with the single
// operand immediately to its right. Scanned right to left so that chained
// "not not x" resolves innermost-first.
func foldInverse(in []Element) ([]Element, error) {
	out := make([]Element, len(in))
	copy(out, in)
	for i := len(out) - 1; i >= 0; i-- {
		if !isOp(out[i], KindInverse) {
			continue
		}
		if i+1 >= len(out) || !IsOperandKind(out[i+1]) {
			return nil, fmt.Errorf("not has no operand")
		}
		operand := out[i+1]
		node := Inverse{Operand: operand}
		out = append(out[:i], append([]Element{node}, out[i+2:]...)...)
	}
	return out, nil
}
