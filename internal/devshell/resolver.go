package devshell

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// LibraryResolver maps a native library name to the directory containing
// its shared libraries.
type LibraryResolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// PkgConfigResolver resolves library directories by querying pkg-config.
type PkgConfigResolver struct {
	// Bin is the pkg-config binary; defaults to "pkg-config".
	Bin string
}

// NewPkgConfigResolver creates a resolver using the host's pkg-config.
func NewPkgConfigResolver() *PkgConfigResolver {
	return &PkgConfigResolver{Bin: "pkg-config"}
}

// Resolve returns the library's libdir as reported by pkg-config.
func (r *PkgConfigResolver) Resolve(ctx context.Context, name string) (string, error) {
	bin := r.Bin
	if bin == "" {
		bin = "pkg-config"
	}

	out, err := exec.CommandContext(ctx, bin, "--variable=libdir", name).Output()
	if err != nil {
		return "", fmt.Errorf("pkg-config lookup for %s failed: %w", name, err)
	}

	dir := strings.TrimSpace(string(out))
	if dir == "" {
		return "", fmt.Errorf("pkg-config reports no libdir for %s", name)
	}
	return dir, nil
}
