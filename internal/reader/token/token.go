// Released under an MIT license. See LICENSE.

// Package token defines the tokens produced by the abc lexer.
package token

// Kind classifies a token.
type Kind int

// The token kinds.
const (
	Word    Kind = iota // A primitive or variable name.
	Open                // [
	Close               // ]
	Comment             // ( ... ), text unescaped.
)

// T (token) pairs a kind with its text.
type T struct {
	Kind Kind
	Text string
}
