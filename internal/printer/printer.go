// Released under an MIT license. See LICENSE.

// Package printer renders abc terms as text the reader can parse back.
package printer

import (
	"strings"
	"unicode"

	"github.com/michaelmacinnis/adapted"
	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/common/interface/container"
	"github.com/xkapastel/abc/internal/common/interface/term"
)

// Show renders the term t. The identity is the empty string.
func Show(ct container.I, t term.I) (string, error) {
	switch {
	case ct.IsIdentity(t):
		return "", nil

	case ct.IsConstant(t):
		c, err := ct.ConstantName(t)
		if err != nil {
			return "", err
		}

		return c.String(), nil

	case ct.IsVariable(t):
		v, err := ct.VariableName(t)
		if err != nil {
			return "", err
		}

		return v.Name(), nil

	case ct.IsComment(t):
		body, err := ct.CommentBody(t)
		if err != nil {
			return "", err
		}

		return "(" + escaped(body) + ")", nil

	case ct.IsQuote(t):
		body, err := ct.QuoteBody(t)
		if err != nil {
			return "", err
		}

		s, err := Show(ct, body)
		if err != nil {
			return "", err
		}

		return "[" + s + "]", nil

	case ct.IsSequence(t):
		fst, err := ct.SequenceFst(t)
		if err != nil {
			return "", err
		}

		snd, err := ct.SequenceSnd(t)
		if err != nil {
			return "", err
		}

		a, err := Show(ct, fst)
		if err != nil {
			return "", err
		}

		b, err := Show(ct, snd)
		if err != nil {
			return "", err
		}

		if a == "" {
			return b, nil
		}

		if b == "" {
			return a, nil
		}

		return a + " " + b, nil
	}

	return "", errs.Bug{What: "cannot print a " + t.Name() + " term"}
}

// escaped puts a comment body that could confuse the lexer into
// dollar single-quoted format.
func escaped(body string) string {
	if body != strings.TrimSpace(body) || strings.HasPrefix(body, "$'") {
		return adapted.CanonicalString(body)
	}

	depth := 0

	for _, r := range body {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return adapted.CanonicalString(body)
			}
		case r == '\'', unicode.IsControl(r):
			return adapted.CanonicalString(body)
		}
	}

	if depth != 0 {
		return adapted.CanonicalString(body)
	}

	return body
}
