// Released under an MIT license. See LICENSE.

package term

import (
	"github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/common/struct/combinator"
)

// constant is one of the nine primitive combinators. Each store
// interns one node per combinator.
type constant struct {
	base

	tag combinator.T
}

// Equal returns true if c is the same combinator.
func (n *constant) Equal(c term.I) bool {
	o, ok := c.(*constant)

	return ok && o.tag == n.tag
}

// Name returns the type name for a constant term.
func (n *constant) Name() string {
	return "constant"
}

func (n *constant) children() []term.I {
	return nil
}
