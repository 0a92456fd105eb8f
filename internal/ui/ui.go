// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the abc language.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/xkapastel/abc/internal/common"
	"github.com/xkapastel/abc/internal/system/history"
)

// Evaluator is the interface for things that want to process lines of
// input.
type Evaluator interface {
	Evaluate(line string) (string, error)
	Completions(prefix string) []string
}

// Run launches the UI which sends lines to the Evaluator. It returns
// when the Evaluator asks to quit or input is exhausted.
func Run(e Evaluator, prompt, hpath string) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	cli.SetWordCompleter(func(s string, n int) (string, []string, string) {
		head, tail := s[:n], s[n:]

		base := head
		if k := strings.LastIndexByte(head, ' '); k >= 0 {
			base = head[k+1:]
		}

		cs := e.Completions(base)

		return head[:len(head)-len(base)], cs, tail
	})

	history.Load(hpath, cli.ReadHistory)

	for {
		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
			// Fall through to evaluation.
		case liner.ErrPromptAborted:
			continue
		default:
			save(cli, hpath)

			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		s, err := e.Evaluate(line)
		if err == common.ErrQuit {
			break
		}

		if err != nil {
			fmt.Fprintln(os.Stderr, "abc:", err.Error())

			continue
		}

		if s != "" {
			fmt.Println(s)
		}
	}

	save(cli, hpath)
}

func save(cli *liner.State, hpath string) {
	if err := history.Save(hpath, cli.WriteHistory); err != nil {
		fmt.Fprintln(os.Stderr, "abc:", err.Error())
	}
}
