// Released under an MIT license. See LICENSE.

// Package config loads abc's optional configuration file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xkapastel/abc/internal/common/errs"
	"github.com/xkapastel/abc/internal/rewrite"
	"github.com/xkapastel/abc/internal/term"
)

// T (config) holds the tunable settings for one session.
type T struct {
	Quota   int    `yaml:"quota"`   // Rewrite steps per evaluation.
	Space   int    `yaml:"space"`   // Bound on live terms.
	Prompt  string `yaml:"prompt"`  // Interactive prompt.
	History string `yaml:"history"` // History file path.
}

type config = T

// Default returns the settings used when no file overrides them.
func Default() T {
	return config{
		Quota:  rewrite.DefaultQuota,
		Space:  term.DefaultLimit,
		Prompt: "abc> ",
	}
}

// Path returns the configuration file location: $ABC_RC if set,
// ~/.abcrc otherwise.
func Path() string {
	if p := os.Getenv("ABC_RC"); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".abcrc")
}

// Load reads the file at p over the defaults. A missing file is not
// an error; a malformed one is a Syntax error.
func Load(p string) (T, error) {
	c := Default()

	if p == "" {
		return c, nil
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}

		return c, err
	}

	if err := yaml.Unmarshal(b, &c); err != nil {
		return Default(), errs.Syntax{What: p + ": " + err.Error()}
	}

	if c.Quota <= 0 {
		c.Quota = rewrite.DefaultQuota
	}

	if c.Space <= 0 {
		c.Space = term.DefaultLimit
	}

	if c.Prompt == "" {
		c.Prompt = "abc> "
	}

	return c, nil
}
