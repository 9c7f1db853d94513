/*
File    : lang/stdfuncs/register.go

Package stdfuncs populates a fresh host.Registry with the standard
library of builtins the language's {func, name, (...)} syntax can reach.
Grounded on the teacher's std package init()-registers-into-a-global-slice
pattern, adapted to an explicit constructor since host.Registry has no
package-level mutable state (spec.md §9's "no global mutable state").
*/
package stdfuncs

import "github.com/formscript/lang/host"

// NewRegistry returns a host.Registry with the full standard builtin set
// already installed in its static map.
func NewRegistry() *host.Registry {
	reg := host.NewRegistry()
	registerStrings(reg)
	registerMath(reg)
	registerUUID(reg)
	return reg
}
