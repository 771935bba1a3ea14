// Package cliutil holds helpers shared by the command layer.
package cliutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoInput is returned when a glob matches nothing.
var ErrNoInput = errors.New("no input matched")

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands globs among path positionals, keeping order.
// "-" (stdin) and literal paths pass through untouched; stdin may appear once.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var (
		out   []string
		stdin bool
	)
	for _, a := range posArgs {
		if a == "-" {
			if stdin {
				return nil, errors.New(`"-" given more than once`)
			}
			stdin = true
			out = append(out, a)
			continue
		}
		if !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("%w %q", ErrNoInput, a)
		}
		out = append(out, m...)
	}
	return out, nil
}
