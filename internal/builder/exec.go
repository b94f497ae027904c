package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"
)

// ExecBuilder drives the composed toolchain's build tool as a subprocess.
// The tool's stdout and stderr are passed through verbatim so compile
// diagnostics reach the operator unmodified.
//
// Output convention: the tool is asked to place its artifact under
// <source>/dist, named after the request's package with a .wasm suffix.
type ExecBuilder struct {
	targetEnv string
	stdout    io.Writer
	stderr    io.Writer
}

// NewExecBuilder creates an ExecBuilder reporting the triple recorded
// under targetEnv. Writers default to the process's own streams.
func NewExecBuilder(targetEnv string, stdout, stderr io.Writer) *ExecBuilder {
	if targetEnv == "" {
		targetEnv = DefaultTargetEnv
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecBuilder{targetEnv: targetEnv, stdout: stdout, stderr: stderr}
}

// Build implements Builder by invoking the toolchain's build tool.
func (b *ExecBuilder) Build(ctx context.Context, req Request) (*Artifact, error) {
	tool := req.Toolchain.BuildTool()
	bin := filepath.Join(tool.Path, tool.Name)

	distDir := filepath.Join(req.Source, "dist")
	pkg := req.Package
	if pkg == "" {
		pkg = sourceBase(req.Source)
	}
	artifactPath := filepath.Join(distDir, pkg+".wasm")

	args := []string{"build", "--source", req.Source, "--out-dir", distDir, "--package", pkg}
	for _, k := range sortedKeys(req.Args) {
		args = append(args, fmt.Sprintf("--%s=%s", k, req.Args[k]))
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = b.stdout
	cmd.Stderr = b.stderr
	cmd.Env = os.Environ()
	for _, k := range sortedKeys(req.Env) {
		cmd.Env = append(cmd.Env, k+"="+req.Env[k])
	}

	slog.Info("running build tool", "request", req.ID, "tool", bin, "target", req.Env[b.targetEnv])

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &BuildError{RequestID: req.ID, ExitCode: exitErr.ExitCode(), Cause: err}
		}
		return nil, &BuildError{RequestID: req.ID, Cause: err}
	}

	if _, err := os.Stat(artifactPath); err != nil {
		return nil, &BuildError{RequestID: req.ID, Cause: fmt.Errorf("build tool produced no artifact at %s: %w", artifactPath, err)}
	}

	return &Artifact{
		ID:      req.ID,
		Path:    artifactPath,
		Triple:  req.Env[b.targetEnv],
		BuiltAt: time.Now(),
	}, nil
}

// sourceBase is the fallback package name when none is set.
func sourceBase(source string) string {
	abs, err := filepath.Abs(source)
	if err != nil {
		abs = source
	}
	return filepath.Base(abs)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
