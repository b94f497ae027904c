package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIndex = `
channels:
  - name: stable
    releases:
      - version: 1.89.0
        components:
          - name: compiler
            role: compiler
            profiles: [minimal, default]
            path: /opt/toolchains/stable-1.89.0/bin
          - name: build-tool
            role: build-tool
            profiles: [minimal, default]
            path: /opt/toolchains/stable-1.89.0/bin
          - name: std
            role: std
            targets: [wasm32-unknown-unknown]
            path: /opt/toolchains/stable-1.89.0/lib
      - version: 1.90.0
        components:
          - name: compiler
            role: compiler
            profiles: [minimal, default]
            path: /opt/toolchains/stable-1.90.0/bin
          - name: build-tool
            role: build-tool
            profiles: [minimal, default]
            path: /opt/toolchains/stable-1.90.0/bin
          - name: std
            role: std
            targets: [wasm32-unknown-unknown, wasm32-wasip1]
            path: /opt/toolchains/stable-1.90.0/lib
  - name: nightly
    releases:
      - version: 1.91.0-nightly.1
        components:
          - name: compiler
            role: compiler
            profiles: [minimal]
            path: /opt/toolchains/nightly/bin
`

func newTestProvider(t *testing.T) *IndexProvider {
	t.Helper()
	p, err := NewIndexProviderFromBytes([]byte(testIndex))
	require.NoError(t, err)
	return p
}

func TestIndexProvider_ResolveLatest(t *testing.T) {
	p := newTestProvider(t)

	c, err := p.Resolve(context.Background(), Query{
		Channel: "stable",
		Version: "latest",
		Profile: "minimal",
		Role:    RoleCompiler,
	})
	require.NoError(t, err)
	assert.Equal(t, "1.90.0", c.Version)
	assert.Equal(t, "/opt/toolchains/stable-1.90.0/bin", c.Path)
}

func TestIndexProvider_ResolveConstraint(t *testing.T) {
	p := newTestProvider(t)

	c, err := p.Resolve(context.Background(), Query{
		Channel: "stable",
		Version: "~1.89",
		Profile: "minimal",
		Role:    RoleBuildTool,
	})
	require.NoError(t, err)
	assert.Equal(t, "1.89.0", c.Version)
}

func TestIndexProvider_ResolveStdJoinsTriple(t *testing.T) {
	p := newTestProvider(t)

	c, err := p.Resolve(context.Background(), Query{
		Channel: "stable",
		Version: "latest",
		Role:    RoleStd,
		Triple:  "wasm32-unknown-unknown",
	})
	require.NoError(t, err)
	assert.Equal(t, "wasm32-unknown-unknown", c.Triple)
	assert.Equal(t, filepath.Join("/opt/toolchains/stable-1.90.0/lib", "wasm32-unknown-unknown"), c.Path)
}

func TestIndexProvider_UnknownChannel(t *testing.T) {
	p := newTestProvider(t)

	_, err := p.Resolve(context.Background(), Query{Channel: "beta", Role: RoleCompiler})

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "beta", resErr.Channel)
	assert.Contains(t, resErr.Error(), "unknown channel")
}

func TestIndexProvider_UnsupportedTriple(t *testing.T) {
	p := newTestProvider(t)

	_, err := p.Resolve(context.Background(), Query{
		Channel: "stable",
		Version: "latest",
		Role:    RoleStd,
		Triple:  "riscv64gc-unknown-linux-gnu",
	})

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "riscv64gc-unknown-linux-gnu", resErr.Triple)
	assert.Contains(t, resErr.Error(), "not provided")
}

func TestIndexProvider_MissingComponentInProfile(t *testing.T) {
	p := newTestProvider(t)

	// The nightly release declares no build-tool at all.
	_, err := p.Resolve(context.Background(), Query{
		Channel: "nightly",
		Version: "latest",
		Profile: "minimal",
		Role:    RoleBuildTool,
	})

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, string(RoleBuildTool), resErr.Component)
}

func TestIndexProvider_NoReleaseSatisfiesConstraint(t *testing.T) {
	p := newTestProvider(t)

	_, err := p.Resolve(context.Background(), Query{
		Channel: "stable",
		Version: ">=2.0.0",
		Role:    RoleCompiler,
		Profile: "minimal",
	})

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, errors.Unwrap(resErr).Error(), "no release satisfies")
}

func TestNewIndexProvider_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "channels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testIndex), 0o644))

	p, err := NewIndexProvider(path)
	require.NoError(t, err)

	_, err = p.Resolve(context.Background(), Query{
		Channel: "stable",
		Version: "latest",
		Profile: "minimal",
		Role:    RoleCompiler,
	})
	assert.NoError(t, err)
}

func TestNewIndexProvider_MissingFile(t *testing.T) {
	_, err := NewIndexProvider(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read channel index")
}
