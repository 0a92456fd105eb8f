// Released under an MIT license. See LICENSE.

// Package combinator enumerates abc's nine primitive combinators.
package combinator

// T (combinator) identifies one of the nine primitives.
type T int

// The nine primitive combinators.
const (
	Apply T = iota
	Quote
	Compose
	Copy
	Drop
	Swap
	Shift
	Reset
	Bang
)

// Count is the number of primitive combinators.
const Count = 9

//nolint:gochecknoglobals
var words = [Count]string{
	Apply:   "app",
	Quote:   "box",
	Compose: "cat",
	Copy:    "copy",
	Drop:    "drop",
	Swap:    "swap",
	Shift:   "shift",
	Reset:   "reset",
	Bang:    "!",
}

// Prompt returns true if the combinator c is shift or reset.
func (c T) Prompt() bool {
	return c == Shift || c == Reset
}

// String returns the concrete word for the combinator c.
func (c T) String() string {
	if c < Apply || c > Bang {
		return "combinator(" + string(rune('0'+c)) + ")"
	}

	return words[c]
}

// Read maps a word to its combinator, if it names one.
func Read(word string) (T, bool) {
	for i, w := range &words {
		if w == word {
			return T(i), true
		}
	}

	return 0, false
}
