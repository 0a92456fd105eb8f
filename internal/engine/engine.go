// Released under an MIT license. See LICENSE.

// Package engine ties abc's store, rewriter, reader, and printer
// together behind the interface the command line and the REPL use.
package engine

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xkapastel/abc/internal/common"
	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/common/interface/container"
	termi "github.com/xkapastel/abc/internal/common/interface/term"
	"github.com/xkapastel/abc/internal/common/struct/combinator"
	"github.com/xkapastel/abc/internal/common/struct/variable"
	"github.com/xkapastel/abc/internal/printer"
	"github.com/xkapastel/abc/internal/reader"
	"github.com/xkapastel/abc/internal/rewrite"
	"github.com/xkapastel/abc/internal/system/config"
	"github.com/xkapastel/abc/internal/term"
)

// T (engine) is one evaluation session: a store, its rewriter, and
// the result of the last evaluation.
type T struct {
	ct  *term.T
	rw  *rewrite.T
	out io.Writer

	last termi.I
}

type engine = T

// New creates an engine configured by cfg. Bang output goes to out.
func New(cfg config.T, out io.Writer) *T {
	ct := term.New(cfg.Space)
	rw := rewrite.New(ct)
	rw.SetQuota(cfg.Quota)

	return &engine{ct: ct, rw: rw, out: out}
}

// Evaluate runs one unit of input: a colon directive, or an abc
// program which is read, completed against the environment, executed,
// and rendered.
func (e *engine) Evaluate(line string) (string, error) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, ":") {
		return e.directive(trimmed)
	}

	t, err := reader.Read(e.ct, line)
	if err != nil {
		return "", err
	}

	t, err = e.rw.Complete(t)
	if err != nil {
		return "", err
	}

	t, err = e.rw.Execute(t, echo{out: e.out})
	if err != nil {
		return "", err
	}

	e.last = t

	return printer.Show(e.ct, t)
}

// Completions returns the words starting with prefix: primitives and
// bound variable names. It backs the REPL's word completion.
func (e *engine) Completions(prefix string) []string {
	words := e.ct.Names()

	for c := combinator.Apply; c <= combinator.Bang; c++ {
		words = append(words, c.String())
	}

	cs := []string{}

	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			cs = append(cs, w)
		}
	}

	sort.Strings(cs)

	return cs
}

func (e *engine) directive(line string) (string, error) {
	name, rest, _ := strings.Cut(line, " ")

	switch name {
	case ":let":
		return e.let(rest)

	case ":unlet":
		k, err := variable.Read(strings.TrimSpace(rest))
		if err != nil {
			return "", err
		}

		_, err = e.ct.Delete(k)

		return "", err

	case ":env":
		return e.env()

	case ":gc":
		roots := []termi.I{}
		if e.last != nil {
			roots = append(roots, e.last)
		}

		if err := e.ct.Collect(roots...); err != nil {
			return "", err
		}

		return fmt.Sprintf("%d terms", e.ct.Size()), nil

	case ":quota":
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n <= 0 {
			return "", errs.Syntax{What: ":quota wants a positive count"}
		}

		e.rw.SetQuota(n)

		return "", nil

	case ":quit":
		return "", common.ErrQuit
	}

	return "", errs.Syntax{What: "unknown directive " + name}
}

// let binds a name: ":let name = program".
func (e *engine) let(rest string) (string, error) {
	name, src, ok := strings.Cut(rest, "=")
	if !ok {
		return "", errs.Syntax{What: ":let wants name = program"}
	}

	k, err := variable.Read(strings.TrimSpace(name))
	if err != nil {
		return "", err
	}

	t, err := reader.Read(e.ct, src)
	if err != nil {
		return "", err
	}

	if _, err := e.ct.Put(k, t); err != nil {
		return "", err
	}

	return "", nil
}

func (e *engine) env() (string, error) {
	lines := []string{}

	for _, name := range e.ct.Names() {
		k, err := variable.Read(name)
		if err != nil {
			return "", err
		}

		t, ok := e.ct.Get(k)
		if !ok {
			return "", errs.Bug{What: "environment lost " + name}
		}

		s, err := printer.Show(e.ct, t)
		if err != nil {
			return "", err
		}

		lines = append(lines, name+" = "+s)
	}

	return strings.Join(lines, "\n"), nil
}

// echo is the engine's bang handler: it prints the terms in scope and
// consumes them.
type echo struct {
	out io.Writer
}

// Execute prints args, one per line, and replaces them with nothing.
func (h echo) Execute(args []termi.I, ct container.I) ([]termi.I, error) {
	for _, a := range args {
		s, err := printer.Show(ct, a)
		if err != nil {
			return nil, err
		}

		fmt.Fprintln(h.out, s)
	}

	return nil, nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	// The echo type is a bang handler.
	_ = rewrite.Handler(echo{})
}
