/*
Abc is a small combinator language. Programs are sequences of nine
primitive words, quotations, comments, and variables, and running a
program means rewriting it to a normal form:

	[a] [b] swap
	[a] box
	[copy app] shift [x] reset
	(a note to the reader) drop

For more detail, see: https://github.com/xkapastel/abc

Abc is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xkapastel/abc/internal/engine"
	"github.com/xkapastel/abc/internal/system/config"
	"github.com/xkapastel/abc/internal/system/history"
	"github.com/xkapastel/abc/internal/system/options"
	"github.com/xkapastel/abc/internal/ui"
)

const version = "0.1.0"

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println("abc " + version)

		return
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, "abc:", err.Error())
		os.Exit(1)
	}

	e := engine.New(cfg, os.Stdout)

	switch {
	case options.Command() != "":
		run(e, options.Command())

	case options.Script() != "":
		b, err := os.ReadFile(options.Script())
		if err != nil {
			fmt.Fprintln(os.Stderr, "abc:", err.Error())
			os.Exit(1)
		}

		run(e, string(b))

	case options.Interactive():
		ui.Run(e, cfg.Prompt, history.Path(cfg.History))

	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "abc:", err.Error())
			os.Exit(1)
		}

		run(e, string(b))
	}
}

// run evaluates one program and prints its normal form.
func run(e *engine.T, src string) {
	s, err := e.Evaluate(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "abc:", err.Error())
		os.Exit(1)
	}

	if s != "" {
		fmt.Println(s)
	}
}
