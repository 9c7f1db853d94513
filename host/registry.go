/*
File    : lang/host/registry.go

BuiltInFunction's two-map registry (spec.md §4.7): a static map registered
once at boot and a dynamic one that may be hot-swapped. Lookup order is
casts, then static, then dynamic. Grounded on
original_source/package/opcode/external.py's BuiltInFunction and the
teacher's function/function.go for the Go name->callable map idiom.
*/
package host

import (
	"fmt"

	"github.com/formscript/lang/expr"
)

// Callable is a registered built-in function: it receives the evaluated
// argument scalars and returns one scalar.
type Callable func(args []Scalar) (Scalar, error)

// Registry is the name-indexed built-in function table.
type Registry struct {
	static  map[string]Callable
	dynamic map[string]Callable
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{static: make(map[string]Callable), dynamic: make(map[string]Callable)}
}

// RegisterStatic adds a name to the static map, meant to be populated once
// at boot.
func (r *Registry) RegisterStatic(name string, fn Callable) {
	r.static[name] = fn
}

// RegisterDynamic adds or replaces a name in the hot-swappable dynamic map.
func (r *Registry) RegisterDynamic(name string, fn Callable) {
	r.dynamic[name] = fn
}

// Lookup resolves name to a callable: hard-coded casts first, then
// static, then dynamic, erroring if none match.
func (r *Registry) Lookup(name string) (Callable, error) {
	if cast, ok := castCallable(name); ok {
		return cast, nil
	}
	if fn, ok := r.static[name]; ok {
		return fn, nil
	}
	if fn, ok := r.dynamic[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("unknown function %q", name)
}

func castCallable(name string) (Callable, bool) {
	var target expr.ScalarType
	switch name {
	case "int":
		target = expr.TypeInt
	case "bool":
		target = expr.TypeBool
	case "float":
		target = expr.TypeFloat
	case "str":
		target = expr.TypeStr
	default:
		return nil, false
	}
	return func(args []Scalar) (Scalar, error) {
		if len(args) != 1 {
			return Scalar{}, fmt.Errorf("%s() takes exactly 1 argument, got %d", name, len(args))
		}
		return Coerce(args[0], target)
	}, true
}
