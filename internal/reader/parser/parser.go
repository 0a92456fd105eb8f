// Released under an MIT license. See LICENSE.

// Package parser assembles tokens into abc terms.
package parser

import (
	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/common/interface/container"
	"github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/common/struct/combinator"
	"github.com/xkapastel/abc/internal/common/struct/variable"
	"github.com/xkapastel/abc/internal/reader/token"
)

// T (parser) builds terms in a container from a stream of tokens.
type T struct {
	ct   container.I
	next func() (*token.T, error)
}

type parser = T

// New creates a parser that builds terms in ct from the tokens
// produced by next.
func New(ct container.I, next func() (*token.T, error)) *T {
	return &parser{ct: ct, next: next}
}

// Parse consumes every token and returns the resulting term. An empty
// stream is the identity.
func (p *parser) Parse() (term.I, error) {
	return p.parse(false)
}

// parse assembles elements into a left-associated sequence until the
// stream ends or, inside a quotation, until the closing bracket.
func (p *parser) parse(quoted bool) (term.I, error) {
	acc := p.ct.Identity()

	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		if tok == nil {
			if quoted {
				return nil, errs.Syntax{What: "missing ]"}
			}

			return acc, nil
		}

		var elem term.I

		switch tok.Kind {
		case token.Close:
			if !quoted {
				return nil, errs.Syntax{What: "unexpected ]"}
			}

			return acc, nil

		case token.Open:
			body, err := p.parse(true)
			if err != nil {
				return nil, err
			}

			elem, err = p.ct.NewQuote(body)
			if err != nil {
				return nil, err
			}

		case token.Comment:
			elem, err = p.ct.NewComment(tok.Text)
			if err != nil {
				return nil, err
			}

		case token.Word:
			elem, err = p.word(tok.Text)
			if err != nil {
				return nil, err
			}
		}

		if p.ct.IsIdentity(acc) {
			acc = elem

			continue
		}

		acc, err = p.ct.NewSequence(acc, elem)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) word(text string) (term.I, error) {
	if c, ok := combinator.Read(text); ok {
		return p.ct.NewConstant(c)
	}

	v, err := variable.Read(text)
	if err != nil {
		return nil, err
	}

	return p.ct.NewVariable(v)
}
