// Released under an MIT license. See LICENSE.

// Package reader turns abc source text into terms.
package reader

import (
	"github.com/xkapastel/abc/internal/common/interface/container"
	"github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/reader/lexer"
	"github.com/xkapastel/abc/internal/reader/parser"
)

// Read parses src and builds the resulting term in ct. Malformed
// input is a Syntax error.
func Read(ct container.I, src string) (term.I, error) {
	l := lexer.New(src)

	return parser.New(ct, l.Token).Parse()
}
