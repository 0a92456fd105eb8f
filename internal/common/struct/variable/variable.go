// Released under an MIT license. See LICENSE.

// Package variable provides abc's validated variable names.
package variable

import (
	"strings"
	"unicode"

	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/common/struct/combinator"
)

// T (variable) is a name that may be bound to a term.
type T struct {
	name string
}

// Read validates name and wraps it as a variable.
func Read(name string) (T, error) {
	if name == "" {
		return T{}, errs.Syntax{What: "empty variable name"}
	}

	if _, ok := combinator.Read(name); ok {
		return T{}, errs.Syntax{What: "variable name " + name + " is a primitive word"}
	}

	if strings.ContainsAny(name, "[]()") {
		return T{}, errs.Syntax{What: "variable name " + name + " contains a delimiter"}
	}

	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return T{}, errs.Syntax{What: "variable name " + name + " contains whitespace"}
		}
	}

	return T{name: name}, nil
}

// Name returns the text of the variable v.
func (v T) Name() string {
	return v.name
}
