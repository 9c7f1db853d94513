/*
File    : lang/stdfuncs/math.go

Math registry entries, grounded on the teacher's objects/math.go
(argument-count/type checks, one function per builtin) re-expressed over
host.Scalar instead of GoMixObject, with int operands promoted to float
before the stdlib math call the way the teacher's own per-function
int-to-float promotion does it.
*/
package stdfuncs

import (
	"fmt"
	"math"

	"github.com/formscript/lang/expr"
	"github.com/formscript/lang/host"
)

func registerMath(reg *host.Registry) {
	reg.RegisterStatic("abs", oneNumeric("abs", func(v float64) float64 { return math.Abs(v) }))
	reg.RegisterStatic("floor", oneNumeric("floor", math.Floor))
	reg.RegisterStatic("ceil", oneNumeric("ceil", math.Ceil))
	reg.RegisterStatic("sqrt", oneNumeric("sqrt", math.Sqrt))
	reg.RegisterStatic("sin", oneNumeric("sin", math.Sin))
	reg.RegisterStatic("cos", oneNumeric("cos", math.Cos))
	reg.RegisterStatic("tan", oneNumeric("tan", math.Tan))
	reg.RegisterStatic("log", oneNumeric("log", math.Log))
	reg.RegisterStatic("log10", oneNumeric("log10", math.Log10))
	reg.RegisterStatic("exp", oneNumeric("exp", math.Exp))

	reg.RegisterStatic("round", func(args []host.Scalar) (host.Scalar, error) {
		if len(args) == 0 || len(args) > 2 {
			return host.Scalar{}, fmt.Errorf("round() takes 1 or 2 arguments, got %d", len(args))
		}
		v, err := asFloat("round", args[0])
		if err != nil {
			return host.Scalar{}, err
		}
		precision := 0
		if len(args) == 2 {
			if args[1].Type != expr.TypeInt {
				return host.Scalar{}, fmt.Errorf("round()'s second argument must be an int")
			}
			precision = int(args[1].Int)
		}
		factor := math.Pow(10, float64(precision))
		return host.Float(math.Round(v*factor) / factor), nil
	})

	reg.RegisterStatic("min", func(args []host.Scalar) (host.Scalar, error) {
		return minMax("min", args, func(a, b float64) bool { return a < b })
	})
	reg.RegisterStatic("max", func(args []host.Scalar) (host.Scalar, error) {
		return minMax("max", args, func(a, b float64) bool { return a > b })
	})
	reg.RegisterStatic("pow", func(args []host.Scalar) (host.Scalar, error) {
		if len(args) != 2 {
			return host.Scalar{}, fmt.Errorf("pow() takes exactly 2 arguments, got %d", len(args))
		}
		base, err := asFloat("pow", args[0])
		if err != nil {
			return host.Scalar{}, err
		}
		exponent, err := asFloat("pow", args[1])
		if err != nil {
			return host.Scalar{}, err
		}
		return host.Float(math.Pow(base, exponent)), nil
	})
}

func oneNumeric(name string, fn func(float64) float64) host.Callable {
	return func(args []host.Scalar) (host.Scalar, error) {
		if len(args) != 1 {
			return host.Scalar{}, fmt.Errorf("%s() takes exactly 1 argument, got %d", name, len(args))
		}
		v, err := asFloat(name, args[0])
		if err != nil {
			return host.Scalar{}, err
		}
		return host.Float(fn(v)), nil
	}
}

func minMax(name string, args []host.Scalar, less func(a, b float64) bool) (host.Scalar, error) {
	if len(args) != 2 {
		return host.Scalar{}, fmt.Errorf("%s() takes exactly 2 arguments, got %d", name, len(args))
	}
	a, errA := asFloat(name, args[0])
	b, errB := asFloat(name, args[1])
	if errA != nil || errB != nil {
		return host.Scalar{}, fmt.Errorf("%s() expects numeric arguments", name)
	}
	if less(a, b) {
		return args[0], nil
	}
	return args[1], nil
}

func asFloat(name string, v host.Scalar) (float64, error) {
	switch v.Type {
	case expr.TypeFloat:
		return v.Float, nil
	case expr.TypeInt:
		return float64(v.Int), nil
	default:
		return 0, fmt.Errorf("%s() expects a numeric argument, got %s", name, v.Type)
	}
}
