package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crossforge-dev/crossforge/internal/config"
	"github.com/crossforge-dev/crossforge/internal/devshell"
)

var (
	developManifest string
	printEnv        bool
)

// newLibraryResolver is swapped out in tests.
var newLibraryResolver = func() devshell.LibraryResolver {
	return devshell.NewPkgConfigResolver()
}

// developCmd assembles the native-library environment and enters an
// interactive shell.
var developCmd = &cobra.Command{
	Use:   "develop [dir]",
	Short: "Enter a development shell with native libraries on the search path",
	Long: `Resolve the manifest's declared native libraries and spawn an
interactive shell whose ` + devshell.SearchPathVar + ` covers every library
directory, in declaration order. Environment construction is
all-or-nothing: one unresolvable library aborts entry.

With --print-env the export line is printed instead of spawning a
shell, so the value can be bound into a launcher script or a
subprocess environment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runDevelopAction(cmd.Context(), dir)
	},
}

func init() {
	rootCmd.AddCommand(developCmd)

	developCmd.Flags().StringVarP(&developManifest, "manifest", "m", "", "manifest path (default: <dir>/"+config.DefaultManifestName+")")
	developCmd.Flags().BoolVar(&printEnv, "print-env", false, "print the export line instead of spawning a shell")
}

// runDevelopAction implements the core logic for the develop command.
func runDevelopAction(ctx context.Context, dir string) error {
	manifestPath := developManifest
	if manifestPath == "" {
		manifestPath = filepath.Join(dir, config.DefaultManifestName)
	}

	m, err := config.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	assembler := devshell.NewAssembler(newLibraryResolver())
	env, err := assembler.Assemble(ctx, m.DevShell.Libraries, devshell.HostFacts())
	if err != nil {
		return err
	}

	slog.Info("dev environment assembled", "libraries", len(m.DevShell.Libraries), "path", env.Value())

	if printEnv {
		fmt.Println(env.ExportLine())
		return nil
	}
	return devshell.Enter(ctx, env)
}
