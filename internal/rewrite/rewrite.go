// Released under an MIT license. See LICENSE.

// Package rewrite provides abc's term rewriting machine.
//
// The machine keeps two pieces of state: a stack holding the
// normalized prefix of the program, and a queue holding the rest.
// Consuming the front of the queue and firing combinators against the
// stack yields leftmost-outermost reduction. Quotation bodies are
// inert; the machine never reduces under a quote, which is what makes
// copy safe to implement by sharing.
package rewrite

import (
	"strconv"

	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/common/interface/container"
	"github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/common/struct/combinator"
)

// DefaultQuota is the default bound on rewrite steps per call.
const DefaultQuota = 10000

// Handler provides an effectful interpretation of bangs on behalf of
// the rewriter. It receives the terms in scope at the bang, leftmost
// first, and exclusive use of the container for the duration of the
// call. The terms it returns are spliced in where its arguments were.
type Handler interface {
	Execute(args []term.I, ct container.I) ([]term.I, error)
}

// T (rewrite) drives terms toward normal form within a container.
type T struct {
	ct    container.I
	quota int
}

type rewrite = T

// New creates a rewriter for the container ct.
func New(ct container.I) *T {
	return &rewrite{ct: ct, quota: DefaultQuota}
}

// Quota returns the current effort quota.
func (r *rewrite) Quota() int {
	return r.quota
}

// SetQuota bounds the number of rewrite steps per call. A quota of
// zero or less selects DefaultQuota.
func (r *rewrite) SetQuota(n int) {
	if n <= 0 {
		n = DefaultQuota
	}

	r.quota = n
}

// Normalize rewrites t until it reaches normal form or the effort
// quota is exhausted. Bangs are left in place: pure callers never
// trigger side effects.
func (r *rewrite) Normalize(t term.I) (term.I, error) {
	return r.run(t, nil)
}

// Execute is Normalize with an effectful interpretation of bangs:
// when a bang becomes the leftmost redex the handler h is invoked and
// its results replace the terms that were in scope.
func (r *rewrite) Execute(t term.I, h Handler) (term.I, error) {
	if h == nil {
		return nil, errs.Bug{What: "execute without a handler"}
	}

	return r.run(t, h)
}

// Complete substitutes a binding for every free variable of t that
// has one. Unbound variables are left in place so that partial
// programs can be completed incrementally. Complete never rewrites.
func (r *rewrite) Complete(t term.I) (term.I, error) {
	return r.complete(t, map[term.I]term.I{})
}

func (r *rewrite) complete(t term.I, done map[term.I]term.I) (term.I, error) {
	if got, ok := done[t]; ok {
		return got, nil
	}

	ct := r.ct
	out := t

	switch {
	case ct.IsVariable(t):
		k, err := ct.VariableName(t)
		if err != nil {
			return nil, err
		}

		// The binding is substituted as is. Resolving names inside
		// it would loop on self-referential bindings.
		if b, ok := ct.Get(k); ok {
			out = b
		}

	case ct.IsQuote(t):
		body, err := ct.QuoteBody(t)
		if err != nil {
			return nil, err
		}

		nb, err := r.complete(body, done)
		if err != nil {
			return nil, err
		}

		if nb != body {
			out, err = ct.NewQuote(nb)
			if err != nil {
				return nil, err
			}
		}

	case ct.IsSequence(t):
		fst, err := ct.SequenceFst(t)
		if err != nil {
			return nil, err
		}

		snd, err := ct.SequenceSnd(t)
		if err != nil {
			return nil, err
		}

		nf, err := r.complete(fst, done)
		if err != nil {
			return nil, err
		}

		ns, err := r.complete(snd, done)
		if err != nil {
			return nil, err
		}

		if nf != fst || ns != snd {
			out, err = ct.NewSequence(nf, ns)
			if err != nil {
				return nil, err
			}
		}
	}

	done[t] = out

	return out, nil
}

func (r *rewrite) run(t term.I, h Handler) (term.I, error) {
	m := &machine{
		ct:     r.ct,
		effort: r.quota,
		quota:  r.quota,
		queue:  []term.I{t},
	}

	ct := r.ct

	for len(m.queue) > 0 {
		cur := m.next()

		switch {
		case ct.IsSequence(cur):
			fst, err := ct.SequenceFst(cur)
			if err != nil {
				return nil, err
			}

			snd, err := ct.SequenceSnd(cur)
			if err != nil {
				return nil, err
			}

			m.queue = append(m.queue, snd, fst)

		case ct.IsIdentity(cur):
			// Identity ; X -> X and X ; Identity -> X.

		case ct.IsQuote(cur), ct.IsComment(cur), ct.IsVariable(cur):
			m.stack = append(m.stack, cur)

		case ct.IsConstant(cur):
			stuck, err := m.fire(cur, h)
			if err != nil {
				return nil, err
			}

			if stuck {
				return m.reassemble(cur)
			}

		default:
			return nil, errs.Bug{What: "no rewrite rule for a " + cur.Name() + " term"}
		}
	}

	return m.sequence(m.stack)
}

// machine is the state of one Normalize or Execute call. The queue is
// kept reversed: the next term to run is at the end of the slice.
type machine struct {
	ct     container.I
	stack  []term.I
	queue  []term.I
	effort int
	quota  int
}

func (m *machine) next() term.I {
	t := m.queue[len(m.queue)-1]
	m.queue = m.queue[:len(m.queue)-1]

	return t
}

// fire applies the rule for the combinator cur. It reports stuck when
// the rule cannot act here but might once more context is known: the
// operand is an unresolved variable, or the combinator is a bang under
// Normalize.
func (m *machine) fire(cur term.I, h Handler) (bool, error) {
	tag, err := m.ct.ConstantName(cur)
	if err != nil {
		return false, err
	}

	if m.effort <= 0 {
		return false, errs.Time{Quota: m.quota}
	}

	m.effort--

	ct := m.ct

	switch tag {
	case combinator.Apply:
		vals, base, err := m.scan("app", 1)
		if err != nil {
			return false, err
		}

		if !ct.IsQuote(vals[0]) {
			if ct.IsVariable(vals[0]) {
				return true, nil
			}

			return false, errs.Type{What: "app", Want: "a quotation", Got: vals[0].Name()}
		}

		body, err := ct.QuoteBody(vals[0])
		if err != nil {
			return false, err
		}

		m.commit(base)
		m.queue = append(m.queue, body)

	case combinator.Quote:
		vals, base, err := m.scan("box", 1)
		if err != nil {
			return false, err
		}

		q, err := ct.NewQuote(vals[0])
		if err != nil {
			return false, err
		}

		m.commit(base)
		m.stack = append(m.stack, q)

	case combinator.Compose:
		vals, base, err := m.scan("cat", 2)
		if err != nil {
			return false, err
		}

		for _, q := range vals {
			if !ct.IsQuote(q) {
				if ct.IsVariable(q) {
					return true, nil
				}

				return false, errs.Type{What: "cat", Want: "a quotation", Got: q.Name()}
			}
		}

		p, err := ct.QuoteBody(vals[0])
		if err != nil {
			return false, err
		}

		q, err := ct.QuoteBody(vals[1])
		if err != nil {
			return false, err
		}

		seq, err := ct.NewSequence(p, q)
		if err != nil {
			return false, err
		}

		merged, err := ct.NewQuote(seq)
		if err != nil {
			return false, err
		}

		m.commit(base)
		m.stack = append(m.stack, merged)

	case combinator.Copy:
		vals, base, err := m.scan("copy", 1)
		if err != nil {
			return false, err
		}

		m.commit(base)

		// The same handle twice; never a structural copy.
		m.stack = append(m.stack, vals[0], vals[0])

	case combinator.Drop:
		_, base, err := m.scan("drop", 1)
		if err != nil {
			return false, err
		}

		m.commit(base)

	case combinator.Swap:
		vals, base, err := m.scan("swap", 2)
		if err != nil {
			return false, err
		}

		m.commit(base)
		m.stack = append(m.stack, vals[1], vals[0])

	case combinator.Shift:
		vals, base, err := m.scan("shift", 1)
		if err != nil {
			return false, err
		}

		if !ct.IsQuote(vals[0]) {
			if ct.IsVariable(vals[0]) {
				return true, nil
			}

			return false, errs.Type{What: "shift", Want: "a quotation", Got: vals[0].Name()}
		}

		captured, err := m.capture()
		if err != nil {
			return false, err
		}

		k, err := m.sequence(captured)
		if err != nil {
			return false, err
		}

		kq, err := ct.NewQuote(k)
		if err != nil {
			return false, err
		}

		body, err := ct.QuoteBody(vals[0])
		if err != nil {
			return false, err
		}

		reset, err := ct.NewConstant(combinator.Reset)
		if err != nil {
			return false, err
		}

		m.commit(base)
		m.stack = append(m.stack, kq)

		// The body runs against the captured continuation; the reset
		// behind it re-establishes the boundary.
		m.queue = append(m.queue, reset, body)

	case combinator.Reset:
		// The delimited region ended normally.

	case combinator.Bang:
		if h == nil {
			return true, nil
		}

		args := append([]term.I{}, m.stack...)

		repl, err := h.Execute(args, ct)
		if err != nil {
			return false, err
		}

		m.stack = append([]term.I{}, repl...)

	default:
		return false, errs.Bug{What: "no rule for combinator " + tag.String()}
	}

	return false, nil
}

// scan locates the top n terms on the stack without disturbing it, so
// a rule that turns out to be stuck leaves no trace. It returns the
// operands deepest first and the index where their region begins.
func (m *machine) scan(what string, n int) ([]term.I, int, error) {
	if len(m.stack) < n {
		want := strconv.Itoa(n) + " preceding term"
		if n > 1 {
			want += "s"
		}

		return nil, 0, errs.Type{
			What: what,
			Want: want,
			Got:  strconv.Itoa(len(m.stack)),
		}
	}

	base := len(m.stack) - n
	vals := append([]term.I{}, m.stack[base:]...)

	return vals, base, nil
}

// commit removes the scanned region from the stack.
func (m *machine) commit(base int) {
	m.stack = m.stack[:base]
}

// capture consumes the queue up to the nearest reset, flattening
// sequences, and returns the skipped terms. No reset is a type error.
func (m *machine) capture() ([]term.I, error) {
	ct := m.ct
	captured := []term.I{}

	for len(m.queue) > 0 {
		t := m.next()

		switch {
		case ct.IsSequence(t):
			fst, err := ct.SequenceFst(t)
			if err != nil {
				return nil, err
			}

			snd, err := ct.SequenceSnd(t)
			if err != nil {
				return nil, err
			}

			m.queue = append(m.queue, snd, fst)

		case ct.IsIdentity(t):

		case ct.IsConstant(t):
			tag, err := ct.ConstantName(t)
			if err != nil {
				return nil, err
			}

			if tag == combinator.Reset {
				return captured, nil
			}

			captured = append(captured, t)

		default:
			captured = append(captured, t)
		}
	}

	return nil, errs.Type{What: "shift", Want: "an enclosing reset", Got: "none"}
}

// reassemble rebuilds the whole term around the stuck position cur.
func (m *machine) reassemble(cur term.I) (term.I, error) {
	elems := append([]term.I{}, m.stack...)
	elems = append(elems, cur)

	for i := len(m.queue) - 1; i >= 0; i-- {
		elems = append(elems, m.queue[i])
	}

	return m.sequence(elems)
}

// sequence folds elems into a right-nested sequence, dropping
// identities. An empty fold is the identity.
func (m *machine) sequence(elems []term.I) (term.I, error) {
	out := m.ct.Identity()

	for i := len(elems) - 1; i >= 0; i-- {
		if m.ct.IsIdentity(elems[i]) {
			continue
		}

		if m.ct.IsIdentity(out) {
			out = elems[i]

			continue
		}

		next, err := m.ct.NewSequence(elems[i], out)
		if err != nil {
			return nil, err
		}

		out = next
	}

	return out, nil
}
