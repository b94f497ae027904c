// Package builder turns a composed toolchain and a source tree into a
// single cross-compiled package artifact.
package builder

import (
	"maps"

	"github.com/google/uuid"

	"github.com/crossforge-dev/crossforge/internal/toolchain"
)

// Request is one build invocation. Requests are constructed once, never
// mutated afterwards, and consumed exactly once; wrappers that need to
// adjust a request work on a copy.
type Request struct {
	// ID uniquely identifies this invocation in logs and diagnostics.
	ID uuid.UUID
	// Package names the artifact being built.
	Package string
	// Source is the root of the source tree to compile.
	Source string
	// Toolchain is the composed toolchain driving the build.
	Toolchain toolchain.Spec
	// Env holds environment settings passed to the build tool.
	Env map[string]string
	// Args holds extra build arguments, keys unique.
	Args map[string]string
}

// NewRequest creates a build request for a source tree.
func NewRequest(pkg, source string, spec toolchain.Spec, env, args map[string]string) Request {
	return Request{
		ID:        uuid.New(),
		Package:   pkg,
		Source:    source,
		Toolchain: spec,
		Env:       maps.Clone(env),
		Args:      maps.Clone(args),
	}
}

// withEnv returns a copy of the request with one environment setting
// replaced. The receiver is left untouched.
func (r Request) withEnv(key, value string) Request {
	env := maps.Clone(r.Env)
	if env == nil {
		env = make(map[string]string, 1)
	}
	env[key] = value
	r.Env = env
	return r
}
