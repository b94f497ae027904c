package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossforge-dev/crossforge/internal/builder"
	"github.com/crossforge-dev/crossforge/internal/toolchain"
)

// fakeToolScript stands in for the channel's build tool. It writes a
// minimal valid wasm module named after the requested package.
const fakeToolScript = `#!/bin/sh
outdir=""
pkg=""
prev=""
for a in "$@"; do
  if [ "$prev" = "--out-dir" ]; then outdir="$a"; fi
  if [ "$prev" = "--package" ]; then pkg="$a"; fi
  prev="$a"
done
mkdir -p "$outdir"
printf '\000asm\001\000\000\000' > "$outdir/$pkg.wasm"
`

// setupProject writes a project directory, a fake toolchain, and a
// channel index wired to it. Returns the project dir and the index path.
func setupProject(t *testing.T, toolScript string) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake build tool uses a shell script")
	}

	binDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "build-tool"), []byte(toolScript), 0o755))

	index := fmt.Sprintf(`
channels:
  - name: stable
    releases:
      - version: 1.90.0
        components:
          - name: compiler
            role: compiler
            profiles: [minimal, default]
            path: %[1]s
          - name: build-tool
            role: build-tool
            profiles: [minimal, default]
            path: %[1]s
          - name: std
            role: std
            targets: [wasm32-unknown-unknown]
            path: %[1]s
`, binDir)
	indexPath := filepath.Join(t.TempDir(), "channels.yaml")
	require.NoError(t, os.WriteFile(indexPath, []byte(index), 0o644))

	projectDir := filepath.Join(t.TempDir(), "app")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))
	manifest := `
project:
  name: app
toolchain:
  channel: stable
  target: wasm32-unknown-unknown
`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "crossforge.yaml"), []byte(manifest), 0o644))

	return projectDir, indexPath
}

func resetBuildFlags(t *testing.T) {
	t.Helper()
	prevManifest, prevChannels, prevSkip := buildManifest, buildChannels, skipVerify
	t.Cleanup(func() {
		buildManifest, buildChannels, skipVerify = prevManifest, prevChannels, prevSkip
	})
	buildManifest, buildChannels, skipVerify = "", "", false
}

func TestRunBuildAction_EndToEnd(t *testing.T) {
	projectDir, indexPath := setupProject(t, fakeToolScript)
	resetBuildFlags(t)
	buildChannels = indexPath

	require.NoError(t, runBuildAction(context.Background(), projectDir))
	assert.FileExists(t, filepath.Join(projectDir, "dist", "app.wasm"))
}

func TestRunBuildAction_AbsoluteSource(t *testing.T) {
	projectDir, indexPath := setupProject(t, fakeToolScript)
	resetBuildFlags(t)
	buildChannels = indexPath

	// An absolute build.source is used as-is, not joined onto the
	// manifest directory, and the artifact is named after the project.
	srcDir := filepath.Join(t.TempDir(), "workspace", "frontend")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	manifest := fmt.Sprintf(`
project:
  name: app
toolchain:
  channel: stable
  target: wasm32-unknown-unknown
build:
  source: %s
`, srcDir)
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "crossforge.yaml"), []byte(manifest), 0o644))

	require.NoError(t, runBuildAction(context.Background(), projectDir))
	assert.FileExists(t, filepath.Join(srcDir, "dist", "app.wasm"))
	assert.NoDirExists(t, filepath.Join(projectDir, "dist"))
}

func TestRunBuildAction_BuildFailure(t *testing.T) {
	projectDir, indexPath := setupProject(t, "#!/bin/sh\nexit 101\n")
	resetBuildFlags(t)
	buildChannels = indexPath

	err := runBuildAction(context.Background(), projectDir)

	var buildErr *builder.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, 101, buildErr.ExitCode)
}

func TestRunBuildAction_CorruptArtifactFailsVerification(t *testing.T) {
	script := `#!/bin/sh
outdir=""
pkg=""
prev=""
for a in "$@"; do
  if [ "$prev" = "--out-dir" ]; then outdir="$a"; fi
  if [ "$prev" = "--package" ]; then pkg="$a"; fi
  prev="$a"
done
mkdir -p "$outdir"
echo "definitely not wasm" > "$outdir/$pkg.wasm"
`
	projectDir, indexPath := setupProject(t, script)
	resetBuildFlags(t)
	buildChannels = indexPath

	err := runBuildAction(context.Background(), projectDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artifact verification failed")

	// With verification skipped, the corrupt artifact is accepted.
	skipVerify = true
	require.NoError(t, runBuildAction(context.Background(), projectDir))
}

func TestRunBuildAction_SchemaInvalidManifest(t *testing.T) {
	projectDir, indexPath := setupProject(t, fakeToolScript)
	resetBuildFlags(t)
	buildChannels = indexPath

	// Build args must be strings; the schema rejects this before the
	// toolchain is composed or the build tool runs.
	manifest := `
project:
  name: app
toolchain:
  channel: stable
  target: wasm32-unknown-unknown
build:
  args:
    release: true
`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "crossforge.yaml"), []byte(manifest), 0o644))

	err := runBuildAction(context.Background(), projectDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
	assert.NoDirExists(t, filepath.Join(projectDir, "dist"))
}

func TestRunBuildAction_MissingManifest(t *testing.T) {
	resetBuildFlags(t)

	err := runBuildAction(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load manifest")
}

func TestRunBuildAction_UnknownChannel(t *testing.T) {
	projectDir, indexPath := setupProject(t, fakeToolScript)
	resetBuildFlags(t)
	buildChannels = indexPath

	manifest := `
project:
  name: app
toolchain:
  channel: beta
  target: wasm32-unknown-unknown
`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "crossforge.yaml"), []byte(manifest), 0o644))

	err := runBuildAction(context.Background(), projectDir)

	var resErr *toolchain.ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "beta", resErr.Channel)
}
