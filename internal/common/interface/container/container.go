// Released under an MIT license. See LICENSE.

// Package container defines the capability set a place where abc
// computations occur must provide. The rewriter, reader, and printer
// are all generic over this interface rather than over any one term
// representation.
package container

import (
	"github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/common/struct/combinator"
	"github.com/xkapastel/abc/internal/common/struct/variable"
)

// I (container) owns terms and the environment that binds them.
//
// Construction can fail with a Space error when the store's size bound
// would be exceeded. Accessors fail with a Type error on the wrong
// variant and with a Bug error on a term the container does not own.
type I interface {
	// Construction.
	Identity() term.I
	NewConstant(c combinator.T) (term.I, error)
	NewVariable(v variable.T) (term.I, error)
	NewComment(body string) (term.I, error)
	NewQuote(body term.I) (term.I, error)
	NewSequence(fst, snd term.I) (term.I, error)

	// Shallow shape queries.
	IsIdentity(t term.I) bool
	IsConstant(t term.I) bool
	IsVariable(t term.I) bool
	IsComment(t term.I) bool
	IsQuote(t term.I) bool
	IsSequence(t term.I) bool
	IsPrompt(t term.I) bool
	IsBang(t term.I) bool

	// Deep shape queries. Each is true if the corresponding shallow
	// query is true for the term or any of its descendants.
	HasConstant(t term.I) bool
	HasVariable(t term.I) bool
	HasComment(t term.I) bool
	HasQuote(t term.I) bool
	HasPrompt(t term.I) bool
	HasBang(t term.I) bool

	// Accessors.
	ConstantName(t term.I) (combinator.T, error)
	VariableName(t term.I) (variable.T, error)
	CommentBody(t term.I) (string, error)
	QuoteBody(t term.I) (term.I, error)
	SequenceFst(t term.I) (term.I, error)
	SequenceSnd(t term.I) (term.I, error)

	// Environment. Put binds k to v and returns the evicted term, if
	// any. Delete fails if the name is unbound.
	Get(k variable.T) (term.I, bool)
	Put(k variable.T, v term.I) (term.I, error)
	Delete(k variable.T) (term.I, error)
	Names() []string

	// Collect reclaims every term not reachable from roots, from the
	// environment, or from the interned singletons.
	Collect(roots ...term.I) error
}
