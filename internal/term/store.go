// Released under an MIT license. See LICENSE.

// Package term provides abc's term variants and the store that owns
// them. Terms are immutable nodes in a shared, acyclic graph; the
// store allocates them, answers shape queries, binds variables, and
// collects garbage.
package term

import (
	"sort"

	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/common/interface/container"
	"github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/common/struct/combinator"
	"github.com/xkapastel/abc/internal/common/struct/variable"
)

// DefaultLimit is the default bound on the number of live terms.
const DefaultLimit = 1 << 20

// T (store) is a place where an abc computation occurs. A store is
// used by one logical thread of control at a time; none of its
// operations are synchronized.
type T struct {
	registry map[node]struct{}
	limit    int

	identity  *identity
	constants [combinator.Count]*constant

	env map[string]term.I
}

type store = T

// New creates a store bounded to limit terms. A limit of zero or less
// selects DefaultLimit.
func New(limit int) *T {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s := &store{
		registry: map[node]struct{}{},
		limit:    limit,
		env:      map[string]term.I{},
	}

	s.identity = &identity{}
	s.registry[s.identity] = struct{}{}

	for c := combinator.Apply; c <= combinator.Bang; c++ {
		n := &constant{tag: c}
		s.constants[c] = n
		s.registry[n] = struct{}{}
	}

	return s
}

// Size returns the number of live terms in the store s.
func (s *store) Size() int {
	return len(s.registry)
}

// Construction.

// Identity returns the store's interned identity term.
func (s *store) Identity() term.I {
	return s.identity
}

// NewConstant returns the store's interned term for the combinator c.
func (s *store) NewConstant(c combinator.T) (term.I, error) {
	if c < combinator.Apply || c > combinator.Bang {
		return nil, errs.Bug{What: "no such combinator"}
	}

	return s.constants[c], nil
}

// NewVariable creates a term for the variable v.
func (s *store) NewVariable(v variable.T) (term.I, error) {
	if v.Name() == "" {
		return nil, errs.Syntax{What: "empty variable name"}
	}

	return s.intern(&varnode{v: v})
}

// NewComment creates a comment term with the given body.
func (s *store) NewComment(body string) (term.I, error) {
	return s.intern(&comment{body: body})
}

// NewQuote creates a quotation with body as its body.
func (s *store) NewQuote(body term.I) (term.I, error) {
	if _, err := s.owned(body); err != nil {
		return nil, err
	}

	return s.intern(&quote{body: body})
}

// NewSequence creates the sequential composition of fst and snd.
func (s *store) NewSequence(fst, snd term.I) (term.I, error) {
	if _, err := s.owned(fst); err != nil {
		return nil, err
	}

	if _, err := s.owned(snd); err != nil {
		return nil, err
	}

	return s.intern(&sequence{fst: fst, snd: snd})
}

// Shallow shape queries.

// IsIdentity returns true if t is an identity term.
func (s *store) IsIdentity(t term.I) bool {
	_, ok := t.(*identity)

	return ok
}

// IsConstant returns true if t is a combinator.
func (s *store) IsConstant(t term.I) bool {
	_, ok := t.(*constant)

	return ok
}

// IsVariable returns true if t is a variable.
func (s *store) IsVariable(t term.I) bool {
	_, ok := t.(*varnode)

	return ok
}

// IsComment returns true if t is a comment.
func (s *store) IsComment(t term.I) bool {
	_, ok := t.(*comment)

	return ok
}

// IsQuote returns true if t is a quotation.
func (s *store) IsQuote(t term.I) bool {
	_, ok := t.(*quote)

	return ok
}

// IsSequence returns true if t is a sequence.
func (s *store) IsSequence(t term.I) bool {
	_, ok := t.(*sequence)

	return ok
}

// IsPrompt returns true if t is either shift or reset.
func (s *store) IsPrompt(t term.I) bool {
	n, ok := t.(*constant)

	return ok && n.tag.Prompt()
}

// IsBang returns true if t is a bang.
func (s *store) IsBang(t term.I) bool {
	n, ok := t.(*constant)

	return ok && n.tag == combinator.Bang
}

// Deep shape queries.

// HasConstant returns true if t or any descendant is a combinator.
func (s *store) HasConstant(t term.I) bool {
	return s.has(t, s.IsConstant)
}

// HasVariable returns true if t or any descendant is a variable.
// A term for which this is false is closed.
func (s *store) HasVariable(t term.I) bool {
	return s.has(t, s.IsVariable)
}

// HasComment returns true if t or any descendant is a comment.
func (s *store) HasComment(t term.I) bool {
	return s.has(t, s.IsComment)
}

// HasQuote returns true if t or any descendant is a quotation.
func (s *store) HasQuote(t term.I) bool {
	return s.has(t, s.IsQuote)
}

// HasPrompt returns true if t or any descendant is shift or reset.
func (s *store) HasPrompt(t term.I) bool {
	return s.has(t, s.IsPrompt)
}

// HasBang returns true if t or any descendant is a bang.
func (s *store) HasBang(t term.I) bool {
	return s.has(t, s.IsBang)
}

// Accessors.

// ConstantName returns the combinator of the constant term t.
func (s *store) ConstantName(t term.I) (combinator.T, error) {
	n, err := s.owned(t)
	if err != nil {
		return 0, err
	}

	c, ok := n.(*constant)
	if !ok {
		return 0, errs.Type{What: "constant name", Want: "a constant", Got: t.Name()}
	}

	return c.tag, nil
}

// VariableName returns the variable of the variable term t.
func (s *store) VariableName(t term.I) (variable.T, error) {
	n, err := s.owned(t)
	if err != nil {
		return variable.T{}, err
	}

	v, ok := n.(*varnode)
	if !ok {
		return variable.T{}, errs.Type{What: "variable name", Want: "a variable", Got: t.Name()}
	}

	return v.v, nil
}

// CommentBody returns the body of the comment term t.
func (s *store) CommentBody(t term.I) (string, error) {
	n, err := s.owned(t)
	if err != nil {
		return "", err
	}

	c, ok := n.(*comment)
	if !ok {
		return "", errs.Type{What: "comment body", Want: "a comment", Got: t.Name()}
	}

	return c.body, nil
}

// QuoteBody returns the body of the quotation t.
func (s *store) QuoteBody(t term.I) (term.I, error) {
	n, err := s.owned(t)
	if err != nil {
		return nil, err
	}

	q, ok := n.(*quote)
	if !ok {
		return nil, errs.Type{What: "quote body", Want: "a quotation", Got: t.Name()}
	}

	return q.body, nil
}

// SequenceFst returns the first element of the sequence t.
func (s *store) SequenceFst(t term.I) (term.I, error) {
	n, err := s.owned(t)
	if err != nil {
		return nil, err
	}

	q, ok := n.(*sequence)
	if !ok {
		return nil, errs.Type{What: "sequence fst", Want: "a sequence", Got: t.Name()}
	}

	return q.fst, nil
}

// SequenceSnd returns the second element of the sequence t.
func (s *store) SequenceSnd(t term.I) (term.I, error) {
	n, err := s.owned(t)
	if err != nil {
		return nil, err
	}

	q, ok := n.(*sequence)
	if !ok {
		return nil, errs.Type{What: "sequence snd", Want: "a sequence", Got: t.Name()}
	}

	return q.snd, nil
}

// Environment.

// Get returns the term bound to k, if any.
func (s *store) Get(k variable.T) (term.I, bool) {
	t, ok := s.env[k.Name()]

	return t, ok
}

// Put binds k to v, returning the term it evicts, if any. The evicted
// term becomes eligible for collection once no longer rooted elsewhere.
func (s *store) Put(k variable.T, v term.I) (term.I, error) {
	if _, err := s.owned(v); err != nil {
		return nil, err
	}

	prev := s.env[k.Name()]
	s.env[k.Name()] = v

	return prev, nil
}

// Delete removes the binding for k, returning the removed term. It
// fails if k is unbound. Deleting a binding is the only way to make an
// environment-rooted term collectable.
func (s *store) Delete(k variable.T) (term.I, error) {
	t, ok := s.env[k.Name()]
	if !ok {
		return nil, errs.Type{What: "delete " + k.Name(), Want: "a bound variable", Got: "an unbound one"}
	}

	delete(s.env, k.Name())

	return t, nil
}

// Names returns the bound variable names in sorted order.
func (s *store) Names() []string {
	names := make([]string, 0, len(s.env))
	for k := range s.env {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Collect performs a mark and sweep over the store s. Terms reachable
// from roots, from the environment, or interned by the store survive;
// every other term is reclaimed and any stale handle to it will be
// reported as a Bug.
func (s *store) Collect(roots ...term.I) error {
	live := map[node]struct{}{}

	for _, t := range roots {
		n, err := s.owned(t)
		if err != nil {
			return err
		}

		s.mark(n, live)
	}

	for _, t := range s.env {
		if n, ok := t.(node); ok {
			s.mark(n, live)
		}
	}

	live[s.identity] = struct{}{}
	for _, c := range s.constants {
		live[c] = struct{}{}
	}

	for n := range s.registry {
		if _, ok := live[n]; !ok {
			n.kill()
			delete(s.registry, n)
		}
	}

	return nil
}

// Internal.

func (s *store) intern(n node) (term.I, error) {
	if len(s.registry) >= s.limit {
		return nil, errs.Space{What: "new " + n.Name() + " term", Limit: s.limit}
	}

	s.registry[n] = struct{}{}

	return n, nil
}

func (s *store) owned(t term.I) (node, error) {
	n, ok := t.(node)
	if !ok {
		if t == nil {
			return nil, errs.Bug{What: "nil term"}
		}

		return nil, errs.Bug{What: "foreign term of type " + t.Name()}
	}

	if !n.alive() {
		return nil, errs.Bug{What: "use of a collected " + t.Name() + " term"}
	}

	if _, ok := s.registry[n]; !ok {
		return nil, errs.Bug{What: t.Name() + " term is not owned by this store"}
	}

	return n, nil
}

func (s *store) has(t term.I, pred func(term.I) bool) bool {
	seen := map[term.I]struct{}{}
	todo := []term.I{t}

	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		if pred(c) {
			return true
		}

		if n, ok := c.(node); ok {
			todo = append(todo, n.children()...)
		}
	}

	return false
}

func (s *store) mark(n node, live map[node]struct{}) {
	todo := []node{n}

	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		if _, ok := live[c]; ok {
			continue
		}

		live[c] = struct{}{}

		for _, child := range c.children() {
			if cn, ok := child.(node); ok {
				todo = append(todo, cn)
			}
		}
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t store

	// The store type is a container.
	_ = container.I(&t)
}
