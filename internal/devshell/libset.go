// Package devshell assembles an interactive development environment whose
// dynamic-library search path covers a declared set of native libraries.
package devshell

import (
	"fmt"
	"runtime"

	"github.com/expr-lang/expr"
)

// Library is one declared native library. When is an optional boolean
// condition evaluated against host facts; an entry whose condition is
// false is skipped without being resolved.
type Library struct {
	Name string `yaml:"name"`
	When string `yaml:"when,omitempty"`
}

// LibrarySet is an ordered sequence of native library declarations.
// Order matters: a linker scanning the resulting search path finds
// earlier entries first. Duplicate names are allowed and preserved.
type LibrarySet []Library

// HostFacts returns the facts `when` conditions are evaluated against.
func HostFacts() map[string]any {
	return map[string]any{
		"os":   runtime.GOOS,
		"arch": runtime.GOARCH,
	}
}

// Enabled evaluates the library's condition against the given facts.
// A library without a condition is always enabled.
func (l Library) Enabled(facts map[string]any) (bool, error) {
	if l.When == "" {
		return true, nil
	}
	program, err := expr.Compile(l.When, expr.Env(facts), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("library %s: invalid condition %q: %w", l.Name, l.When, err)
	}
	out, err := expr.Run(program, facts)
	if err != nil {
		return false, fmt.Errorf("library %s: condition %q: %w", l.Name, l.When, err)
	}
	return out.(bool), nil
}
