// Released under an MIT license. See LICENSE.

package term

import (
	"github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/common/struct/variable"
)

// varnode is a placeholder resolved through the environment. It has no
// rewrite rule of its own; an occurrence in redex position leaves the
// term stuck.
type varnode struct {
	base

	v variable.T
}

// Equal returns true if c is a variable with the same name.
func (n *varnode) Equal(c term.I) bool {
	o, ok := c.(*varnode)

	return ok && o.v.Name() == n.v.Name()
}

// Name returns the type name for a variable term.
func (n *varnode) Name() string {
	return "variable"
}

func (n *varnode) children() []term.I {
	return nil
}
