/*
File    : lang/host/scalar.go

Scalar is the only value class visible to scripts (spec.md §3): int,
bool, float, or string. It lives in package host, not eval, because both
the evaluator and the host-callable/registry signatures need it and host
has no dependency on eval — putting it here avoids an import cycle.
Grounded on original_source/package/opcode/runner.py's value handling,
which likewise treats Python's native int/bool/float/str as the sole
script-visible value class.
*/
package host

import (
	"strconv"

	"github.com/formscript/lang/expr"
)

// Scalar is a tagged union over the four value kinds. Only the field
// matching Type is meaningful.
type Scalar struct {
	Type  expr.ScalarType
	Int   int64
	Bool  bool
	Float float64
	Str   string
}

func Int(v int64) Scalar     { return Scalar{Type: expr.TypeInt, Int: v} }
func Bool(v bool) Scalar     { return Scalar{Type: expr.TypeBool, Bool: v} }
func Float(v float64) Scalar { return Scalar{Type: expr.TypeFloat, Float: v} }
func Str(v string) Scalar    { return Scalar{Type: expr.TypeStr, Str: v} }

// Truthy implements the language's standard truthiness: zero/empty values
// are falsy, everything else is truthy.
func (s Scalar) Truthy() bool {
	switch s.Type {
	case expr.TypeInt:
		return s.Int != 0
	case expr.TypeBool:
		return s.Bool
	case expr.TypeFloat:
		return s.Float != 0
	case expr.TypeStr:
		return s.Str != ""
	default:
		return false
	}
}

// String renders a Scalar for diagnostics, for str() casts, and for the
// left operand of `in`.
func (s Scalar) String() string {
	switch s.Type {
	case expr.TypeInt:
		return strconv.FormatInt(s.Int, 10)
	case expr.TypeBool:
		return strconv.FormatBool(s.Bool)
	case expr.TypeFloat:
		return strconv.FormatFloat(s.Float, 'g', -1, 64)
	case expr.TypeStr:
		return s.Str
	default:
		return ""
	}
}
