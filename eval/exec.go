/*
File    : lang/eval/exec.go

Statement dispatch: execBlock walks a list of parser.Opcode in order,
propagating the four-state control signal (spec.md §4.6). Grounded on
original_source/package/opcode/runner.py's CodeRunner.run_block, which
walks the same shape of opcode list and threads continue/break/return the
same way.
*/
package eval

import (
	"github.com/formscript/lang/expr"
	"github.com/formscript/lang/host"
	"github.com/formscript/lang/parser"
)

// execBlock runs ops in order, stopping early the moment a non-keepRunning
// state is produced (Return/Continue/Break all halt the rest of the
// block).
func (r *Runner) execBlock(ops []parser.Opcode) (controlState, error) {
	for _, op := range ops {
		state, err := r.execOne(op)
		if err != nil {
			return keepRunning, err
		}
		if state != keepRunning {
			return state, nil
		}
	}
	return keepRunning, nil
}

func (r *Runner) execOne(op parser.Opcode) (controlState, error) {
	switch o := op.(type) {
	case parser.Assign:
		v, err := r.evalExpr(o.Expr)
		if err != nil {
			return keepRunning, runtimeError(err.Error(), o.Origin())
		}
		r.variables[o.Name] = v
		return keepRunning, nil

	case parser.ExpressionStmt:
		v, err := r.evalExpr(o.Expr)
		if err != nil {
			return keepRunning, runtimeError(err.Error(), o.Origin())
		}
		r.lastValue = &v
		return keepRunning, nil

	case parser.Return:
		v, err := r.evalExpr(o.Expr)
		if err != nil {
			return keepRunning, runtimeError(err.Error(), o.Origin())
		}
		r.lastValue = &v
		return codeReturn, nil

	case parser.Continue:
		return loopContinue, nil

	case parser.Break:
		return loopBreak, nil

	case parser.Condition:
		return r.execCondition(o)

	case parser.ForLoop:
		return r.execForLoop(o)

	default:
		return keepRunning, runtimeError("unknown opcode", op.Origin())
	}
}

// execCondition evaluates each branch's condition in order (the trailing
// else arm, if present, has a nil Cond and always matches) and executes
// the first matching arm's body. Errors raised inside the body are
// wrapped with the "in Condition" context naming that arm's head line.
func (r *Runner) execCondition(c parser.Condition) (controlState, error) {
	for _, branch := range c.Branches {
		matched := branch.Cond == nil
		if !matched {
			cond, err := r.evalExpr(branch.Cond)
			if err != nil {
				return keepRunning, wrapOnce(runtimeError(err.Error(), c.Origin()), "Condition", branch.StateLine)
			}
			matched = cond.Truthy()
		}
		if !matched {
			continue
		}
		state, err := r.execBlock(branch.Body)
		if err != nil {
			return keepRunning, wrapOnce(err, "Condition", branch.StateLine)
		}
		return state, nil
	}
	return keepRunning, nil
}

// execForLoop evaluates Count to a non-bool integer, then runs Body once
// per iteration with Var bound to 0..Count-1. LoopContinue advances to the
// next iteration; LoopBreak ends the loop as KeepRunning; CodeReturn halts
// the loop and propagates immediately.
func (r *Runner) execForLoop(f parser.ForLoop) (controlState, error) {
	count, err := r.evalExpr(f.Count)
	if err != nil {
		return keepRunning, wrapOnce(runtimeError(err.Error(), f.Origin()), "For Loop", f.StateLine)
	}
	if count.Type != expr.TypeInt {
		return keepRunning, wrapOnce(runtimeError("for-loop count must be an int", f.Origin()), "For Loop", f.StateLine)
	}

	for i := int64(0); i < count.Int; i++ {
		r.variables[f.Var] = host.Int(i)
		state, err := r.execBlock(f.Body)
		if err != nil {
			return keepRunning, wrapOnce(err, "For Loop", f.StateLine)
		}
		switch state {
		case loopContinue:
			continue
		case loopBreak:
			return keepRunning, nil
		case codeReturn:
			return codeReturn, nil
		}
	}
	return keepRunning, nil
}
