/*
File    : lang/stdfuncs/strings.go

String-handling registry entries for host.Registry's static map. Grounded
on the teacher's std/strings.go for naming/signature conventions (one
callable per builtin, argument-count checked up front); re-expressed over
host.Scalar args/return instead of the teacher's GoMixObject, since
form-script has no array type to split/join over. strconv/strings is the
standard library; no corpus third-party string-manipulation library
exists for this concern (see DESIGN.md).
*/
package stdfuncs

import (
	"fmt"
	"strings"

	"github.com/formscript/lang/expr"
	"github.com/formscript/lang/host"
)

func registerStrings(reg *host.Registry) {
	reg.RegisterStatic("upper", func(args []host.Scalar) (host.Scalar, error) {
		s, err := oneStrArg("upper", args)
		if err != nil {
			return host.Scalar{}, err
		}
		return host.Str(strings.ToUpper(s)), nil
	})

	reg.RegisterStatic("lower", func(args []host.Scalar) (host.Scalar, error) {
		s, err := oneStrArg("lower", args)
		if err != nil {
			return host.Scalar{}, err
		}
		return host.Str(strings.ToLower(s)), nil
	})

	reg.RegisterStatic("trim", func(args []host.Scalar) (host.Scalar, error) {
		s, err := oneStrArg("trim", args)
		if err != nil {
			return host.Scalar{}, err
		}
		return host.Str(strings.TrimSpace(s)), nil
	})

	reg.RegisterStatic("contains", func(args []host.Scalar) (host.Scalar, error) {
		if len(args) != 2 {
			return host.Scalar{}, fmt.Errorf("contains() takes exactly 2 arguments, got %d", len(args))
		}
		haystack, ok1 := asStr(args[0])
		needle, ok2 := asStr(args[1])
		if !ok1 || !ok2 {
			return host.Scalar{}, fmt.Errorf("contains() expects (str, str)")
		}
		return host.Bool(strings.Contains(haystack, needle)), nil
	})

	reg.RegisterStatic("split_len", func(args []host.Scalar) (host.Scalar, error) {
		if len(args) != 1 {
			return host.Scalar{}, fmt.Errorf("split_len() takes exactly 1 argument, got %d", len(args))
		}
		s, ok := asStr(args[0])
		if !ok {
			return host.Scalar{}, fmt.Errorf("split_len() expects a str argument")
		}
		return host.Int(int64(len([]rune(s)))), nil
	})
}

func oneStrArg(name string, args []host.Scalar) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s() takes exactly 1 argument, got %d", name, len(args))
	}
	s, ok := asStr(args[0])
	if !ok {
		return "", fmt.Errorf("%s() expects a str argument", name)
	}
	return s, nil
}

func asStr(v host.Scalar) (string, bool) {
	if v.Type != expr.TypeStr {
		return "", false
	}
	return v.Str, true
}
