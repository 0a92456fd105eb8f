// Released under an MIT license. See LICENSE.

// Package history persists the interactive session's command history.
package history

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Path expands a leading ~ in p. An empty p selects ~/.abc_history.
func Path(p string) string {
	if p == "" {
		p = "~/.abc_history"
	}

	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}

		p = filepath.Join(home, p[1:])
	}

	return p
}

// Load reads saved history from p using read. The signature matches
// liner's ReadHistory. A missing file is not an error.
func Load(p string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save writes history to p using write. The signature matches liner's
// WriteHistory.
func Save(p string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(p)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
