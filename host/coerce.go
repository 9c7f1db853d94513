/*
File    : lang/host/coerce.go

Coerce implements the language's cast-as-function-call conversions
(int(e), bool(e), float(e), str(e)); AssertType, next to it, is the
strict no-conversion check {ref, TYPE, EXPR} performs against a
host-returned value. Grounded on
original_source/package/opcode/runner.py's cast handling, which defers to
Python's own int()/bool()/float()/str() builtins; Go has no equivalent
free conversion across these four kinds, so the rules below are spelled
out explicitly.
*/
package host

import (
	"fmt"
	"strconv"

	"github.com/formscript/lang/expr"
)

// Coerce converts v to target, the same rule set both Cast evaluation and
// the registry's built-in cast functions use.
func Coerce(v Scalar, target expr.ScalarType) (Scalar, error) {
	if v.Type == target {
		return v, nil
	}
	switch target {
	case expr.TypeInt:
		switch v.Type {
		case expr.TypeBool:
			if v.Bool {
				return Int(1), nil
			}
			return Int(0), nil
		case expr.TypeFloat:
			return Int(int64(v.Float)), nil
		case expr.TypeStr:
			i, err := strconv.ParseInt(v.Str, 10, 64)
			if err != nil {
				return Scalar{}, fmt.Errorf("cannot convert %q to int", v.Str)
			}
			return Int(i), nil
		}
	case expr.TypeBool:
		return Bool(v.Truthy()), nil
	case expr.TypeFloat:
		switch v.Type {
		case expr.TypeInt:
			return Float(float64(v.Int)), nil
		case expr.TypeBool:
			if v.Bool {
				return Float(1), nil
			}
			return Float(0), nil
		case expr.TypeStr:
			f, err := strconv.ParseFloat(v.Str, 64)
			if err != nil {
				return Scalar{}, fmt.Errorf("cannot convert %q to float", v.Str)
			}
			return Float(f), nil
		}
	case expr.TypeStr:
		return Str(v.String()), nil
	}
	return Scalar{}, fmt.Errorf("cannot convert %s to %s", v.Type, target)
}

// AssertType implements {ref, TYPE, EXPR}'s strict assertion: bool is
// asserted strictly (no coercion from int/float/str), int rejects bool,
// float rejects int, and str rejects everything non-str.
func AssertType(v Scalar, want expr.ScalarType) (Scalar, error) {
	if v.Type == want {
		return v, nil
	}
	return Scalar{}, fmt.Errorf("ref assertion failed: expected %s, got %s", want, v.Type)
}
