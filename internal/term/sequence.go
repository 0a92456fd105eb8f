// Released under an MIT license. See LICENSE.

package term

import (
	"github.com/xkapastel/abc/internal/common/interface/term"
)

// sequence runs fst and then snd. Both children are shared references
// into the same store.
type sequence struct {
	base

	fst term.I
	snd term.I
}

// Equal returns true if c is a sequence with equal elements.
func (n *sequence) Equal(c term.I) bool {
	o, ok := c.(*sequence)

	return ok && n.fst.Equal(o.fst) && n.snd.Equal(o.snd)
}

// Name returns the type name for a sequence term.
func (n *sequence) Name() string {
	return "sequence"
}

func (n *sequence) children() []term.I {
	return []term.I{n.fst, n.snd}
}
