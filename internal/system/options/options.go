// Released under an MIT license. See LICENSE.

// Package options parses abc's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	version     bool
	usage       = `abc

Usage:
  abc [SCRIPT]
  abc -c PROGRAM
  abc [-i]
  abc -h
  abc -v

Arguments:
  SCRIPT  Path to an abc program to run.

Options:
  -c, --command=PROGRAM  Run the given program and exit.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print abc version.

If abc's stdin is a TTY and no script or command was given, abc runs
as an interactive read-eval-print loop.
`
)

// Command returns the program given with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if abc should run a read-eval-print loop.
func Interactive() bool {
	return interactive
}

// Parse reads the command line.
func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	version, _ = opts.Bool("--version")
}

// Script returns the script path, if any.
func Script() string {
	return script
}

// Version returns true if abc should print its version and exit.
func Version() bool {
	return version
}
