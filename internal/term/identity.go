// Released under an MIT license. See LICENSE.

package term

import (
	"github.com/xkapastel/abc/internal/common/interface/term"
)

// identity is the empty program, the neutral element of sequencing.
// Each store interns a single identity node.
type identity struct {
	base
}

// Equal returns true if c is an identity term.
func (n *identity) Equal(c term.I) bool {
	_, ok := c.(*identity)

	return ok
}

// Name returns the type name for an identity term.
func (n *identity) Name() string {
	return "identity"
}

func (n *identity) children() []term.I {
	return nil
}
