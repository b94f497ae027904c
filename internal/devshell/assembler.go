package devshell

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// SearchPathVar is the environment variable carrying the assembled
// dynamic-library search path.
const SearchPathVar = "LD_LIBRARY_PATH"

// Environment is the assembled dev-shell configuration. It is a plain
// value: the caller decides whether to bind it into the process
// environment, a subprocess, or a printed export line.
type Environment struct {
	// Var is the environment variable name (SearchPathVar).
	Var string
	// Dirs are the resolved library directories in declaration order,
	// duplicates preserved.
	Dirs []string
}

// Value returns the search path as a single path-list string.
func (e *Environment) Value() string {
	return strings.Join(e.Dirs, string(os.PathListSeparator))
}

// Environ appends the search-path assignment to a base environment.
func (e *Environment) Environ(base []string) []string {
	return append(base, e.Var+"="+e.Value())
}

// ExportLine formats the environment as a shell export statement.
func (e *Environment) ExportLine() string {
	return fmt.Sprintf("export %s=%q", e.Var, e.Value())
}

// Assembler computes the dev-shell environment from a declared library
// set.
type Assembler struct {
	resolver LibraryResolver
}

// NewAssembler creates an Assembler over the given resolver.
func NewAssembler(resolver LibraryResolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// Assemble resolves every enabled library in declaration order and joins
// the resulting directories into an Environment. The first library that
// fails to resolve aborts assembly with a *ConstructionError; no partial
// environment is ever returned. Duplicate directories are kept: eliding
// them could hide an intended override of which physical library a
// left-to-right linker scan finds first. An empty set yields an empty
// search path, not an error.
func (a *Assembler) Assemble(ctx context.Context, libs LibrarySet, facts map[string]any) (*Environment, error) {
	dirs := make([]string, 0, len(libs))
	for _, lib := range libs {
		enabled, err := lib.Enabled(facts)
		if err != nil {
			return nil, &ConstructionError{Library: lib.Name, Cause: err}
		}
		if !enabled {
			slog.Debug("skipping native library", "library", lib.Name, "condition", lib.When)
			continue
		}

		dir, err := a.resolver.Resolve(ctx, lib.Name)
		if err != nil {
			return nil, &ConstructionError{Library: lib.Name, Cause: err}
		}
		dirs = append(dirs, dir)
	}

	return &Environment{Var: SearchPathVar, Dirs: dirs}, nil
}
