/*
File    : lang/stdfuncs/uuid.go

uuid() returns a fresh random UUID's string form, using
github.com/gofrs/uuid as seen in the corpus's vippsas-sqlcode go.mod.
Grounds the "uuid" stdlib-shim collaborator spec.md §1 names as
out-of-scope, now exposed as one registry entry.
*/
package stdfuncs

import (
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/formscript/lang/host"
)

func registerUUID(reg *host.Registry) {
	reg.RegisterStatic("uuid", func(args []host.Scalar) (host.Scalar, error) {
		if len(args) != 0 {
			return host.Scalar{}, fmt.Errorf("uuid() takes no arguments, got %d", len(args))
		}
		id, err := uuid.NewV4()
		if err != nil {
			return host.Scalar{}, fmt.Errorf("uuid generation failed: %w", err)
		}
		return host.Str(id.String()), nil
	})
}
