// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for abc programs.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/reader/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	index int    // Index of the current byte.
}

type lexer = T

// New creates a lexer for the text.
func New(text string) *T {
	return &lexer{bytes: text}
}

// Token returns the next token, or nil at the end of the text.
func (l *lexer) Token() (*token.T, error) {
	l.skipSpace()

	if l.index >= len(l.bytes) {
		return nil, nil
	}

	switch l.bytes[l.index] {
	case '[':
		l.index++

		return &token.T{Kind: token.Open, Text: "["}, nil

	case ']':
		l.index++

		return &token.T{Kind: token.Close, Text: "]"}, nil

	case '(':
		return l.comment()
	}

	return l.word()
}

func (l *lexer) skipSpace() {
	for l.index < len(l.bytes) {
		r, w := utf8.DecodeRuneInString(l.bytes[l.index:])
		if !unicode.IsSpace(r) {
			return
		}

		l.index += w
	}
}

// comment scans a parenthesized comment. Parens nest; a dollar
// single-quoted region hides its contents from the balance count so
// that escaped bodies round trip.
func (l *lexer) comment() (*token.T, error) {
	first := l.index
	l.index++

	depth := 1

	for l.index < len(l.bytes) {
		switch l.bytes[l.index] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				body := l.bytes[first+1 : l.index]
				l.index++

				return unquoted(body)
			}
		case '$':
			// Only a $' region is opaque. A bare apostrophe is an
			// ordinary comment character.
			if l.index+1 < len(l.bytes) && l.bytes[l.index+1] == '\'' {
				l.index++

				if err := l.skipString(); err != nil {
					return nil, err
				}

				continue
			}
		}

		l.index++
	}

	return nil, errs.Syntax{What: "missing ) in comment"}
}

// skipString advances past a single-quoted region, honoring backslash
// escapes. l.index is on the opening quote.
func (l *lexer) skipString() error {
	l.index++

	for l.index < len(l.bytes) {
		switch l.bytes[l.index] {
		case '\\':
			l.index++
		case '\'':
			l.index++

			return nil
		}

		l.index++
	}

	return errs.Syntax{What: "missing ' in comment"}
}

func (l *lexer) word() (*token.T, error) {
	first := l.index

	for l.index < len(l.bytes) {
		r, w := utf8.DecodeRuneInString(l.bytes[l.index:])
		if unicode.IsSpace(r) || strings.ContainsRune("[]()", r) {
			break
		}

		l.index += w
	}

	return &token.T{Kind: token.Word, Text: l.bytes[first:l.index]}, nil
}

// unquoted recovers the actual body of a comment. A body the printer
// escaped is in dollar single-quoted format.
func unquoted(body string) (*token.T, error) {
	trimmed := strings.TrimSpace(body)

	if len(trimmed) >= 3 && strings.HasPrefix(trimmed, "$'") && trimmed[len(trimmed)-1] == '\'' {
		actual, err := adapted.ActualBytes(trimmed[2 : len(trimmed)-1])
		if err != nil {
			return nil, errs.Syntax{What: "bad escape in comment: " + err.Error()}
		}

		return &token.T{Kind: token.Comment, Text: actual}, nil
	}

	return &token.T{Kind: token.Comment, Text: body}, nil
}
