// Released under an MIT license. See LICENSE.

package term

import (
	"github.com/xkapastel/abc/internal/common/interface/term"
)

// comment carries an opaque body. Rewriting never matches a comment
// and never discards one.
type comment struct {
	base

	body string
}

// Equal returns true if c is a comment with the same body.
func (n *comment) Equal(c term.I) bool {
	o, ok := c.(*comment)

	return ok && o.body == n.body
}

// Name returns the type name for a comment term.
func (n *comment) Name() string {
	return "comment"
}

func (n *comment) children() []term.I {
	return nil
}
