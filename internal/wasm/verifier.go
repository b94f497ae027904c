// Package wasm verifies that build outputs are well-formed WebAssembly
// modules before they are handed to consumers.
package wasm

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
)

// Verifier smoke-checks wasm artifacts by compiling them with an
// interpreter-backed runtime. It catches truncated or corrupt outputs
// immediately after a build instead of at first load in a browser.
type Verifier struct{}

// NewVerifier creates a Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify compiles the module at path and reports any decode or
// validation failure.
func (v *Verifier) Verify(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read artifact: %w", err)
	}

	// Interpreter config keeps verification portable; no code is run.
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, data)
	if err != nil {
		return fmt.Errorf("artifact %s is not a valid wasm module: %w", path, err)
	}
	return compiled.Close(ctx)
}
