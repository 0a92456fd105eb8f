package rewrite_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/common/interface/container"
	termi "github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/common/struct/variable"
	"github.com/xkapastel/abc/internal/printer"
	"github.com/xkapastel/abc/internal/reader"
	"github.com/xkapastel/abc/internal/rewrite"
	"github.com/xkapastel/abc/internal/term"
)

type h struct {
	t  *testing.T
	ct *term.T
	rw *rewrite.T
}

func setup(t *testing.T) *h {
	t.Helper()

	ct := term.New(0)

	return &h{t: t, ct: ct, rw: rewrite.New(ct)}
}

func (x *h) read(src string) termi.I {
	x.t.Helper()

	v, err := reader.Read(x.ct, src)
	if err != nil {
		x.t.Fatalf("read %q: %v", src, err)
	}

	return v
}

func (x *h) show(v termi.I) string {
	x.t.Helper()

	s, err := printer.Show(x.ct, v)
	if err != nil {
		x.t.Fatalf("show: %v", err)
	}

	return s
}

func (x *h) norm(src string) string {
	x.t.Helper()

	v, err := x.rw.Normalize(x.read(src))
	if err != nil {
		x.t.Fatalf("normalize %q: %v", src, err)
	}

	return x.show(v)
}

func (x *h) check(src, want string) {
	x.t.Helper()

	if got := x.norm(src); got != want {
		x.t.Errorf("normalize %q:\n%s", src, cmp.Diff(want, got))
	}
}

func (x *h) fail(src string, pred func(error) bool) {
	x.t.Helper()

	_, err := x.rw.Normalize(x.read(src))
	if err == nil || !pred(err) {
		x.t.Errorf("normalize %q: %v, want a different kind", src, err)
	}
}

func (x *h) bind(name, src string) {
	x.t.Helper()

	k, err := variable.Read(name)
	if err != nil {
		x.t.Fatalf("variable %q: %v", name, err)
	}

	if _, err := x.ct.Put(k, x.read(src)); err != nil {
		x.t.Fatalf("put %q: %v", name, err)
	}
}

func TestIdentityLaws(t *testing.T) {
	x := setup(t)

	id := x.ct.Identity()
	p := x.read("[a] [b] swap")

	left, err := x.ct.NewSequence(id, p)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}

	right, err := x.ct.NewSequence(p, id)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}

	want, err := x.rw.Normalize(p)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	for _, v := range []termi.I{left, right} {
		got, err := x.rw.Normalize(v)
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}

		if !got.Equal(want) {
			t.Errorf("identity law broken: %s != %s", x.show(got), x.show(want))
		}
	}
}

func TestApplyQuoteInverse(t *testing.T) {
	x := setup(t)

	// box then app is the identity on values.
	x.check("[a] box app", "[a]")

	// app inlines a quoted program.
	x.check("[[a]] app", "[a]")
	x.check("[[a] [b] swap] app", "[b] [a]")
}

func TestQuote(t *testing.T) {
	x := setup(t)

	x.check("[a] box", "[[a]]")
	x.check("x box", "[x]")
	x.check("(note) box", "[(note)]")

	// Nothing to wrap.
	x.fail("box", errs.IsType)
}

func TestCompose(t *testing.T) {
	x := setup(t)

	x.check("[a] [b] cat", "[a b]")
	x.check("[a] [b] cat [c] cat", "[a b c]")

	// Association does not change the composed program.
	x.check("[a] [b] [c] cat cat", "[a b c]")

	x.fail("[a] cat", errs.IsType)
	x.fail("(note) [a] cat", errs.IsType)
}

func TestCopyAndDrop(t *testing.T) {
	x := setup(t)

	x.check("[a] copy", "[a] [a]")
	x.check("[a] copy drop", "[a]")
	x.check("[a] drop", "")
	x.check("x copy", "x x")
	x.check("(note) copy", "(note) (note)")

	x.fail("copy", errs.IsType)
	x.fail("drop", errs.IsType)
}

func TestSwap(t *testing.T) {
	x := setup(t)

	x.check("[a] [b] swap", "[b] [a]")
	x.check("[a] [b] swap swap", "[a] [b]")

	x.fail("[a] swap", errs.IsType)
}

func TestStuckVariables(t *testing.T) {
	x := setup(t)

	// A variable has no rewrite rule.
	x.check("x", "x")

	// A variable where app or cat needs a quotation sticks the whole
	// remainder of the program.
	x.check("x app", "x app")
	x.check("x [a] cat copy", "x [a] cat copy")
	x.check("x app [a] drop", "x app [a] drop")
}

func TestComments(t *testing.T) {
	x := setup(t)

	x.check("(note)", "(note)")
	x.check("(fst) (snd)", "(fst) (snd)")

	// Comments are inert values: swap exchanges them.
	x.check("(fst) (snd) swap", "(snd) (fst)")

	// And they survive the rewriting around them.
	x.check("(note) [a] [b] swap", "(note) [b] [a]")
}

func TestStuckBang(t *testing.T) {
	x := setup(t)

	// Normalize never executes a bang, and nothing downstream of one
	// can be trusted to fire.
	x.check("!", "!")
	x.check("[a] !", "[a] !")
	x.check("! [a] box", "! [a] box")
}

func TestShiftReset(t *testing.T) {
	x := setup(t)

	// The continuation is captured as a quotation and handed to the
	// body; dropping it erases the delimited region.
	x.check("[drop] shift [a] reset", "")

	// Applying it runs the region unchanged.
	x.check("[app] shift [a] reset", "[a]")

	// Running the continuation twice.
	x.check("[copy app swap app] shift [a] reset", "[a] [a]")

	// The boundary is re-established: terms after reset are intact.
	x.check("[drop] shift [a] reset [b]", "[b]")

	// A reset reached normally just ends its region.
	x.check("[a] reset", "[a]")

	x.fail("[drop] shift", errs.IsType)
}

func TestEffortQuota(t *testing.T) {
	x := setup(t)

	omega := "[copy app] copy app"

	x.rw.SetQuota(100)

	_, err := x.rw.Normalize(x.read(omega))
	if !errs.IsTime(err) {
		t.Errorf("omega: %v, want a time error", err)
	}
}

func TestEffortMonotonicity(t *testing.T) {
	x := setup(t)

	src := "[a] [b] swap [c] cat"

	x.rw.SetQuota(2)

	small, err := x.rw.Normalize(x.read(src))
	if err != nil {
		t.Fatalf("normalize with tight quota: %v", err)
	}

	x.rw.SetQuota(10000)

	large, err := x.rw.Normalize(x.read(src))
	if err != nil {
		t.Fatalf("normalize with loose quota: %v", err)
	}

	if !small.Equal(large) {
		t.Errorf("quota changed the result: %s != %s", x.show(small), x.show(large))
	}
}

func TestComplete(t *testing.T) {
	x := setup(t)

	x.bind("a", "(x)")
	x.bind("b", "(y)")

	// The scenario: two bound variables before a swap.
	v, err := x.rw.Complete(x.read("a b swap"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	got, err := x.rw.Normalize(v)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if s := x.show(got); s != "(y) (x)" {
		t.Errorf("completed swap = %q, want %q", s, "(y) (x)")
	}
}

func TestCompleteLeavesUnbound(t *testing.T) {
	x := setup(t)

	x.bind("a", "[p]")

	v, err := x.rw.Complete(x.read("a u [a u] box"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Bound names are resolved everywhere, unbound ones stay, and
	// substitution alone does no rewriting.
	if s := x.show(v); s != "[p] u [[p] u] box" {
		t.Errorf("complete = %q", s)
	}
}

func TestCompleteDoesNotChaseBindings(t *testing.T) {
	x := setup(t)

	x.bind("a", "b")
	x.bind("b", "[p]")

	v, err := x.rw.Complete(x.read("a"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	// One substitution per occurrence per call.
	if s := x.show(v); s != "b" {
		t.Errorf("complete = %q, want %q", s, "b")
	}
}

// fixed is a handler that replaces whatever is in scope with a fixed
// sequence of terms.
type fixed struct {
	repl []termi.I
	got  [][]termi.I
}

func (f *fixed) Execute(args []termi.I, ct container.I) ([]termi.I, error) {
	f.got = append(f.got, args)

	return f.repl, nil
}

func TestExecuteBang(t *testing.T) {
	x := setup(t)

	done, err := x.ct.NewComment("done")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}

	f := &fixed{repl: []termi.I{done}}

	got, err := x.rw.Execute(x.read("[a] !"), f)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	// The operand and the bang are gone; the replacement is in.
	if s := x.show(got); s != "(done)" {
		t.Errorf("execute = %q, want %q", s, "(done)")
	}

	if len(f.got) != 1 || len(f.got[0]) != 1 {
		t.Fatalf("handler saw %v", f.got)
	}

	if s := x.show(f.got[0][0]); s != "[a]" {
		t.Errorf("handler argument = %q, want %q", s, "[a]")
	}

	// The identical input is unchanged under Normalize.
	x.check("[a] !", "[a] !")
}

func TestExecuteResumes(t *testing.T) {
	x := setup(t)

	f := &fixed{}

	// The handler consumes the stack; rewriting continues after.
	got, err := x.rw.Execute(x.read("[a] ! [b] [c] swap"), f)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if s := x.show(got); s != "[c] [b]" {
		t.Errorf("execute = %q, want %q", s, "[c] [b]")
	}
}

type failing struct{}

func (failing) Execute(args []termi.I, ct container.I) ([]termi.I, error) {
	return nil, errs.Assert{What: "handler refused"}
}

func TestExecuteHandlerError(t *testing.T) {
	x := setup(t)

	_, err := x.rw.Execute(x.read("!"), failing{})
	if !errs.IsAssert(err) {
		t.Errorf("execute = %v, want the handler's error", err)
	}
}

// reentrant unwraps its last argument and normalizes the body using
// the same store.
type reentrant struct {
	rw *rewrite.T
}

func (r reentrant) Execute(args []termi.I, ct container.I) ([]termi.I, error) {
	if len(args) == 0 {
		return nil, errs.Assert{What: "no argument"}
	}

	body, err := ct.QuoteBody(args[len(args)-1])
	if err != nil {
		return nil, err
	}

	v, err := r.rw.Normalize(body)
	if err != nil {
		return nil, err
	}

	return []termi.I{v}, nil
}

func TestExecuteReentrantHandler(t *testing.T) {
	x := setup(t)

	got, err := x.rw.Execute(x.read("[[a] [b] swap] !"), reentrant{rw: x.rw})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if s := x.show(got); s != "[b] [a]" {
		t.Errorf("execute = %q, want %q", s, "[b] [a]")
	}
}

func TestExecuteNilHandler(t *testing.T) {
	x := setup(t)

	_, err := x.rw.Execute(x.read("!"), nil)
	if !errs.IsBug(err) {
		t.Errorf("execute with nil handler = %v, want a bug", err)
	}
}

func TestNormalizeNeverConsultsEnvironment(t *testing.T) {
	x := setup(t)

	x.bind("a", "[p]")

	// Without Complete, a stays a stuck variable.
	x.check("a app", "a app")
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	x := setup(t)

	_, err := x.rw.Normalize(x.read("box"))
	if !errs.IsType(err) || errs.IsTime(err) {
		t.Errorf("box on nothing: %v", err)
	}

	if !errors.As(err, &errs.Type{}) {
		t.Errorf("error is not an errs.Type: %v", err)
	}
}
