// Released under an MIT license. See LICENSE.

package term

import (
	"github.com/xkapastel/abc/internal/common/interface/term"
)

// node is what every variant provides to the store.
type node interface {
	term.I

	alive() bool
	children() []term.I
	kill()
}

// base carries the liveness flag shared by all variants. A node is
// killed when the collector sweeps it; any later use through the store
// is reported as a Bug.
type base struct {
	dead bool
}

func (b *base) alive() bool {
	return !b.dead
}

func (b *base) kill() {
	b.dead = true
}
