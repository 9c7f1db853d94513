/*
File    : lang/eval/expr_eval.go

evalExpr/evalElement walk an expr.Expression tree to a host.Scalar with a
type switch over the concrete element types. Grounded on original_source/package/opcode/runner.py's
expression evaluation, which recurses the same parsed shape.
*/
package eval

import (
	"fmt"

	"github.com/formscript/lang/expr"
	"github.com/formscript/lang/host"
)

func (r *Runner) evalExpr(e *expr.Expression) (host.Scalar, error) {
	if e == nil {
		return host.Scalar{}, fmt.Errorf("missing expression")
	}
	return r.evalElement(e.Root)
}

func (r *Runner) evalElement(el expr.Element) (host.Scalar, error) {
	switch e := el.(type) {
	case expr.IntLit:
		return host.Int(e.Value), nil
	case expr.BoolLit:
		return host.Bool(e.Value), nil
	case expr.FloatLit:
		return host.Float(e.Value), nil
	case expr.StrLit:
		return host.Str(e.Value), nil

	case expr.VarRef:
		v, ok := r.variables[e.Name]
		if !ok {
			return host.Scalar{}, fmt.Errorf("variable %q used before assignment", e.Name)
		}
		return v, nil

	case expr.Cast:
		v, err := r.evalElement(e.Operand)
		if err != nil {
			return host.Scalar{}, err
		}
		return host.Coerce(v, e.Type)

	case expr.SubExpr:
		return r.evalExpr(e.Expr)

	case *expr.NaryOp:
		return r.evalNary(*e)
	case expr.NaryOp:
		return r.evalNary(e)

	case *expr.BinaryOp:
		return r.evalBinary(*e)
	case expr.BinaryOp:
		return r.evalBinary(e)

	case expr.Inverse:
		v, err := r.evalElement(e.Operand)
		if err != nil {
			return host.Scalar{}, err
		}
		return host.Bool(!v.Truthy()), nil

	case expr.RefForm:
		return r.evalRef(e)
	case expr.SelectorForm:
		return r.evalSelector(e)
	case expr.ScoreForm:
		return r.evalScore(e)
	case expr.CommandForm:
		return r.evalCommand(e)
	case expr.FuncCall:
		return r.evalFunc(e)

	default:
		return host.Scalar{}, fmt.Errorf("cannot evaluate %s", el.Kind())
	}
}

func (r *Runner) evalRef(e expr.RefForm) (host.Scalar, error) {
	idx, err := r.evalElement(e.Index)
	if err != nil {
		return host.Scalar{}, err
	}
	if idx.Type != expr.TypeInt {
		return host.Scalar{}, fmt.Errorf("{ref, ...} index must be an int")
	}
	v, err := r.interact.Ref(idx.Int)
	if err != nil {
		return host.Scalar{}, err
	}
	return host.AssertType(v, e.AssertedType)
}

func (r *Runner) evalSelector(e expr.SelectorForm) (host.Scalar, error) {
	arg, err := r.evalElement(e.Arg)
	if err != nil {
		return host.Scalar{}, err
	}
	if arg.Type != expr.TypeStr {
		return host.Scalar{}, fmt.Errorf("{selector, ...} argument must be a str")
	}
	s, err := r.interact.Selector(arg.Str)
	if err != nil {
		return host.Scalar{}, err
	}
	return host.Str(s), nil
}

func (r *Runner) evalScore(e expr.ScoreForm) (host.Scalar, error) {
	target, err := r.evalElement(e.Target)
	if err != nil {
		return host.Scalar{}, err
	}
	board, err := r.evalElement(e.Scoreboard)
	if err != nil {
		return host.Scalar{}, err
	}
	if target.Type != expr.TypeStr || board.Type != expr.TypeStr {
		return host.Scalar{}, fmt.Errorf("{score, ...} arguments must be str")
	}
	v, err := r.interact.Score(target.Str, board.Str)
	if err != nil {
		return host.Scalar{}, err
	}
	return host.Int(v), nil
}

func (r *Runner) evalCommand(e expr.CommandForm) (host.Scalar, error) {
	arg, err := r.evalElement(e.Arg)
	if err != nil {
		return host.Scalar{}, err
	}
	if arg.Type != expr.TypeStr {
		return host.Scalar{}, fmt.Errorf("{command, ...} argument must be a str")
	}
	v, err := r.interact.Command(arg.Str)
	if err != nil {
		return host.Scalar{}, err
	}
	return host.Int(v), nil
}

func (r *Runner) evalFunc(e expr.FuncCall) (host.Scalar, error) {
	fn, err := r.registry.Lookup(e.Name)
	if err != nil {
		return host.Scalar{}, err
	}
	args := make([]host.Scalar, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := r.evalElement(a)
		if err != nil {
			return host.Scalar{}, err
		}
		args = append(args, v)
	}
	return fn(args)
}
