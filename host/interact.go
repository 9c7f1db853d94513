/*
File    : lang/host/interact.go

GameInteract is the four-callable host-interface contract (spec.md §4.7):
selector resolution, scoreboard lookup, command execution, and
form-reference read. Grounded on original_source/package/opcode/external.py
(GameInteract), extended with Command per spec.md's explicit fourth
callable — the original snapshot available here only wired selector/score/
ref, but runner.py's imports imply a fuller version existed, and spec.md
names command as a first-class barrier form.
*/
package host

import "fmt"

// GameInteract holds four optional callables. A nil field is replaced by
// a pure-zero stub at call time: empty string for Selector, 0 for Score/
// Command/Ref.
type GameInteract struct {
	SelectorFunc func(s string) (string, error)
	ScoreFunc    func(target, scoreboard string) (int64, error)
	CommandFunc  func(cmd string) (int64, error)
	RefFunc      func(index int64) (Scalar, error)
}

// Selector resolves a target selector string to its host-defined string
// result.
func (g *GameInteract) Selector(s string) (string, error) {
	if g == nil || g.SelectorFunc == nil {
		return "", nil
	}
	return g.SelectorFunc(s)
}

// Score reads a scoreboard value for target.
func (g *GameInteract) Score(target, scoreboard string) (int64, error) {
	if g == nil || g.ScoreFunc == nil {
		return 0, nil
	}
	return g.ScoreFunc(target, scoreboard)
}

// Command executes cmd and returns its success count (0 or 1 typical).
func (g *GameInteract) Command(cmd string) (int64, error) {
	if g == nil || g.CommandFunc == nil {
		return 0, nil
	}
	return g.CommandFunc(cmd)
}

// Ref reads the form-response value at index. Its shape depends on the
// host's form type:
//   - Modal form: response is an ordered list L; Ref(i) returns L[i].
//   - Long form: response is a single int I; Ref(-1) returns I,
//     Ref(i != -1) returns the bool (i == I).
//   - Short (yes/no) form: response is a bool B; Ref(-1) returns B,
//     Ref(i != -1) returns the bool (i == int(B)).
func (g *GameInteract) Ref(index int64) (Scalar, error) {
	if g == nil || g.RefFunc == nil {
		return Int(0), nil
	}
	return g.RefFunc(index)
}

// LongFormRef is a convenience constructor for the "long form" Ref rule:
// host holds a single int I, and scripts either read it directly
// (index == -1) or ask whether it equals a candidate index.
func LongFormRef(i int64) func(index int64) (Scalar, error) {
	return func(index int64) (Scalar, error) {
		if index == -1 {
			return Int(i), nil
		}
		return Bool(index == i), nil
	}
}

// ShortFormRef is the "yes/no form" equivalent: host holds a single bool B.
func ShortFormRef(b bool) func(index int64) (Scalar, error) {
	return func(index int64) (Scalar, error) {
		if index == -1 {
			return Bool(b), nil
		}
		wantInt := int64(0)
		if b {
			wantInt = 1
		}
		return Bool(index == wantInt), nil
	}
}

// ModalFormRef is the "modal form" equivalent: host holds an ordered list
// of scalars, indexed directly.
func ModalFormRef(values []Scalar) func(index int64) (Scalar, error) {
	return func(index int64) (Scalar, error) {
		if index < 0 || int(index) >= len(values) {
			return Scalar{}, fmt.Errorf("ref index %d out of range (0..%d)", index, len(values)-1)
		}
		return values[index], nil
	}
}
