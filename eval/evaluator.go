/*
File    : lang/eval/evaluator.go

Package eval is the tree-walking evaluator: it walks an opcode list
produced by package parser, holds a flat variable environment, and
returns the script's final value. Grounded on
original_source/package/opcode/runner.py (CodeRunner) for the run
lifecycle and control-state propagation, and on the teacher's
eval/evaluator.go for the Go constructor/reset idiom.
*/
package eval

import (
	"fmt"

	"github.com/formscript/lang/diag"
	"github.com/formscript/lang/host"
	"github.com/formscript/lang/parser"
)

// Runner walks an immutable opcode list any number of times. It holds no
// state between calls to Run: variables, control state and the recorded
// last value are all reset before each run and torn down after, per
// spec.md §9's "no global mutable state" design note.
type Runner struct {
	variables map[string]host.Scalar
	lastValue *host.Scalar
	interact  *host.GameInteract
	registry  *host.Registry
}

// NewRunner returns a Runner ready for repeated Run calls.
func NewRunner() *Runner {
	return &Runner{}
}

// controlState is the evaluator's four-state propagation signal (spec.md
// §4.6): KeepRunning, LoopContinue, LoopBreak, CodeReturn.
type controlState int

const (
	keepRunning controlState = iota
	loopContinue
	loopBreak
	codeReturn
)

// reset (re)initializes per-run state. Called both before and after Run,
// mirroring original_source's `_interact`/`_builtins`/`_variables`/
// `_return` being cleared in the original's `finally` block.
func (r *Runner) reset() {
	r.variables = make(map[string]host.Scalar)
	r.lastValue = nil
	r.interact = nil
	r.registry = nil
}

// Run executes opcodes against interact and registry, constructing a
// fresh variable environment and tearing it down on every exit path
// (normal return, error, or panic-turned-error). If requireReturn is set
// and neither a Return opcode executed nor any ExpressionStmt recorded a
// value, it is an error.
func (r *Runner) Run(opcodes []parser.Opcode, interact *host.GameInteract, registry *host.Registry, requireReturn bool) (result host.Scalar, err error) {
	r.reset()
	defer r.reset()

	r.interact = interact
	r.registry = registry
	if r.registry == nil {
		r.registry = host.NewRegistry()
	}

	defer func() {
		if err != nil {
			if _, ok := err.(*diag.Error); !ok {
				err = diag.New(diag.Runtime, err.Error())
			}
		}
	}()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("internal evaluator error: %v", p)
		}
	}()

	state, rerr := r.execBlock(opcodes)
	if rerr != nil {
		return host.Scalar{}, rerr
	}
	switch state {
	case loopContinue:
		return host.Scalar{}, fmt.Errorf("Runtime Error.\n\n- Error -\n  \"continue\" used outside of a loop\n")
	case loopBreak:
		return host.Scalar{}, fmt.Errorf("Runtime Error.\n\n- Error -\n  \"break\" used outside of a loop\n")
	}

	if r.lastValue == nil {
		if requireReturn {
			return host.Scalar{}, fmt.Errorf("Runtime Error.\n\n- Error -\n  No return value after running the code\n")
		}
		return host.Scalar{}, nil
	}
	return *r.lastValue, nil
}
