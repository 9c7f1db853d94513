/*
File    : lang/eval/arith.go

Arithmetic, comparison and logical folds over host.Scalar values.
Grounded on original_source/package/opcode/runner.py's binary-operator
handling (Python's own +, -, *, / and comparison semantics over
int/bool/float/str), adapted since Go has no automatic numeric-tower
promotion across these four kinds.
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/formscript/lang/expr"
	"github.com/formscript/lang/host"
)

func (r *Runner) evalNary(n expr.NaryOp) (host.Scalar, error) {
	acc, err := r.evalElement(n.Operands[0])
	if err != nil {
		return host.Scalar{}, err
	}
	switch n.Op {
	case expr.KindAnd:
		if !acc.Truthy() {
			return acc, nil
		}
		for _, operand := range n.Operands[1:] {
			v, err := r.evalElement(operand)
			if err != nil {
				return host.Scalar{}, err
			}
			acc = v
			if !acc.Truthy() {
				return acc, nil
			}
		}
		return acc, nil

	case expr.KindOr:
		if acc.Truthy() {
			return acc, nil
		}
		for _, operand := range n.Operands[1:] {
			v, err := r.evalElement(operand)
			if err != nil {
				return host.Scalar{}, err
			}
			acc = v
			if acc.Truthy() {
				return acc, nil
			}
		}
		return acc, nil
	}

	for _, operand := range n.Operands[1:] {
		v, err := r.evalElement(operand)
		if err != nil {
			return host.Scalar{}, err
		}
		acc, err = applyArith(n.Op, acc, v)
		if err != nil {
			return host.Scalar{}, err
		}
	}
	return acc, nil
}

// applyArith folds one pair of operands for Add/Remove/Times/Divide.
func applyArith(op expr.Kind, a, b host.Scalar) (host.Scalar, error) {
	switch op {
	case expr.KindAdd:
		if a.Type == expr.TypeStr && b.Type == expr.TypeStr {
			return host.Str(a.Str + b.Str), nil
		}
		if a.Type == expr.TypeStr || b.Type == expr.TypeStr {
			return host.Scalar{}, fmt.Errorf("cannot add %s and %s", a.Type, b.Type)
		}
		return numericArith(a, b, func(x, y float64) float64 { return x + y }, func(x, y int64) int64 { return x + y })

	case expr.KindRemove:
		if a.Type == expr.TypeStr || b.Type == expr.TypeStr {
			return host.Scalar{}, fmt.Errorf("cannot subtract %s and %s", a.Type, b.Type)
		}
		return numericArith(a, b, func(x, y float64) float64 { return x - y }, func(x, y int64) int64 { return x - y })

	case expr.KindTimes:
		if rep, str, ok := stringRepetitionOperands(a, b); ok {
			if rep < 0 {
				rep = 0
			}
			return host.Str(strings.Repeat(str, int(rep))), nil
		}
		if a.Type == expr.TypeStr || b.Type == expr.TypeStr {
			return host.Scalar{}, fmt.Errorf("cannot multiply %s and %s", a.Type, b.Type)
		}
		return numericArith(a, b, func(x, y float64) float64 { return x * y }, func(x, y int64) int64 { return x * y })

	case expr.KindDivide:
		if a.Type == expr.TypeStr || b.Type == expr.TypeStr {
			return host.Scalar{}, fmt.Errorf("cannot divide %s and %s", a.Type, b.Type)
		}
		divisor := toFloat(b)
		if divisor == 0 {
			return host.Scalar{}, fmt.Errorf("division by zero")
		}
		return host.Float(toFloat(a) / divisor), nil

	default:
		return host.Scalar{}, fmt.Errorf("unsupported arithmetic operator %s", op)
	}
}

// stringRepetitionOperands recognizes Times's int-by-string-repetition
// case in either operand order.
func stringRepetitionOperands(a, b host.Scalar) (count int64, str string, ok bool) {
	if a.Type == expr.TypeInt && b.Type == expr.TypeStr {
		return a.Int, b.Str, true
	}
	if a.Type == expr.TypeStr && b.Type == expr.TypeInt {
		return b.Int, a.Str, true
	}
	return 0, "", false
}

// numericArith applies floatOp when either operand is a float, otherwise
// intOp over int/bool (bool coerces to 0/1, matching Python's bool-is-int
// subtyping).
func numericArith(a, b host.Scalar, floatOp func(x, y float64) float64, intOp func(x, y int64) int64) (host.Scalar, error) {
	if a.Type == expr.TypeFloat || b.Type == expr.TypeFloat {
		return host.Float(floatOp(toFloat(a), toFloat(b))), nil
	}
	ai, aok := toInt(a)
	bi, bok := toInt(b)
	if !aok || !bok {
		return host.Scalar{}, fmt.Errorf("cannot apply arithmetic to %s and %s", a.Type, b.Type)
	}
	return host.Int(intOp(ai, bi)), nil
}

func toFloat(s host.Scalar) float64 {
	switch s.Type {
	case expr.TypeFloat:
		return s.Float
	case expr.TypeInt:
		return float64(s.Int)
	case expr.TypeBool:
		if s.Bool {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func toInt(s host.Scalar) (int64, bool) {
	switch s.Type {
	case expr.TypeInt:
		return s.Int, true
	case expr.TypeBool:
		if s.Bool {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func (r *Runner) evalBinary(b expr.BinaryOp) (host.Scalar, error) {
	left, err := r.evalElement(b.Left)
	if err != nil {
		return host.Scalar{}, err
	}
	right, err := r.evalElement(b.Right)
	if err != nil {
		return host.Scalar{}, err
	}

	if b.Op == expr.KindIn {
		if right.Type != expr.TypeStr {
			return host.Scalar{}, fmt.Errorf("in: right operand must be a str")
		}
		return host.Bool(strings.Contains(right.Str, left.String())), nil
	}

	switch b.Op {
	case expr.KindEq:
		return host.Bool(scalarsEqual(left, right)), nil
	case expr.KindNeq:
		return host.Bool(!scalarsEqual(left, right)), nil
	}

	cmp, err := compareScalars(left, right)
	if err != nil {
		return host.Scalar{}, err
	}
	switch b.Op {
	case expr.KindLt:
		return host.Bool(cmp < 0), nil
	case expr.KindGt:
		return host.Bool(cmp > 0), nil
	case expr.KindLe:
		return host.Bool(cmp <= 0), nil
	case expr.KindGe:
		return host.Bool(cmp >= 0), nil
	default:
		return host.Scalar{}, fmt.Errorf("unsupported comparison operator %s", b.Op)
	}
}

// scalarsEqual is lenient across categories: str compares only equal to
// str, numeric (int/bool/float) compares only equal to numeric; comparing
// across those two categories is simply unequal rather than an error,
// matching Python's `==` never raising on mismatched types.
func scalarsEqual(a, b host.Scalar) bool {
	if a.Type == expr.TypeStr || b.Type == expr.TypeStr {
		return a.Type == expr.TypeStr && b.Type == expr.TypeStr && a.Str == b.Str
	}
	return toFloat(a) == toFloat(b)
}

// compareScalars implements ordering (</>/<=/>=): str-vs-str by byte
// ordering, numeric-vs-numeric by value; ordering across the str/numeric
// categories is a genuine type error, matching Python's TypeError for
// e.g. `"a" < 1`.
func compareScalars(a, b host.Scalar) (int, error) {
	if a.Type == expr.TypeStr && b.Type == expr.TypeStr {
		return strings.Compare(a.Str, b.Str), nil
	}
	if a.Type == expr.TypeStr || b.Type == expr.TypeStr {
		return 0, fmt.Errorf("cannot order %s and %s", a.Type, b.Type)
	}
	af, bf := toFloat(a), toFloat(b)
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}
