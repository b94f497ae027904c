package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crossforge-dev/crossforge/internal/builder"
	"github.com/crossforge-dev/crossforge/internal/config"
	"github.com/crossforge-dev/crossforge/internal/toolchain"
	"github.com/crossforge-dev/crossforge/internal/wasm"
)

var (
	buildManifest string
	buildChannels string
	skipVerify    bool
)

// buildCmd builds the project's cross-compiled package artifact.
var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Build the cross-compiled package artifact",
	Long: `Compose the declared toolchain, build the source tree pinned to the
manifest's target triple, and verify the resulting wasm artifact. Build
tool diagnostics are passed through unmodified; any failure exits
non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runBuildAction(cmd.Context(), dir)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildManifest, "manifest", "m", "", "manifest path (default: <dir>/"+config.DefaultManifestName+")")
	buildCmd.Flags().StringVar(&buildChannels, "channels", "", "channel index path")
	buildCmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "skip wasm artifact verification")
}

// runBuildAction implements the core logic for the build command.
func runBuildAction(ctx context.Context, dir string) error {
	manifestPath := buildManifest
	if manifestPath == "" {
		manifestPath = filepath.Join(dir, config.DefaultManifestName)
	}
	slog.Info("loading manifest", "path", manifestPath)

	m, err := config.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	provider, err := toolchain.NewIndexProvider(channelIndexPath(buildChannels))
	if err != nil {
		return err
	}

	var verifier builder.Verifier
	if !skipVerify {
		verifier = wasm.NewVerifier()
	}

	pipeline := builder.NewPipeline(
		toolchain.NewComposer(provider),
		builder.NewExecBuilder(m.Build.TargetEnv, nil, nil),
		verifier,
	)

	source := m.Build.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(dir, source)
	}

	out, err := pipeline.Run(ctx, builder.Params{
		Channel:   m.Toolchain.Channel,
		Version:   m.Toolchain.Version,
		Profile:   m.Toolchain.Profile,
		Triple:    m.Toolchain.Target,
		Source:    source,
		Args:      m.Build.Args,
		Env:       m.Build.Env,
		Package:   m.Project.Name,
		TargetEnv: m.Build.TargetEnv,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Built %s (%s): %s\n", m.Project.Name, out.Default.Triple, out.Default.Path)
	return nil
}
