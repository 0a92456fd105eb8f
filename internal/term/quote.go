// Released under an MIT license. See LICENSE.

package term

import (
	"github.com/xkapastel/abc/internal/common/interface/term"
)

// quote wraps a program so it is treated as data. The body is shared,
// never copied.
type quote struct {
	base

	body term.I
}

// Equal returns true if c is a quote whose body is equal to n's.
func (n *quote) Equal(c term.I) bool {
	o, ok := c.(*quote)

	return ok && n.body.Equal(o.body)
}

// Name returns the type name for a quote term.
func (n *quote) Name() string {
	return "quote"
}

func (n *quote) children() []term.I {
	return []term.I{n.body}
}
