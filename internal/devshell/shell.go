package devshell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Enter spawns an interactive shell with the environment's search path
// exported. The variable lives only in the spawned process; nothing in
// the parent environment changes, and the export disappears when the
// session exits. The returned error reflects whether the shell itself
// failed to start; a nonzero exit of the interactive session is not an
// error.
func Enter(ctx context.Context, env *Environment) error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	slog.Info("entering dev shell", "shell", shell, "var", env.Var, "path", env.Value())

	cmd := exec.CommandContext(ctx, shell)
	cmd.Env = env.Environ(os.Environ())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Operator exited the session with a nonzero status.
			return nil
		}
		return fmt.Errorf("failed to start shell %s: %w", shell, err)
	}
	return nil
}
