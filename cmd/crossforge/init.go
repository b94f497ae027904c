package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crossforge-dev/crossforge/internal/config"
	"github.com/crossforge-dev/crossforge/internal/devshell"
)

type initOptions struct {
	Name          string
	Channel       string
	Target        string
	Libraries     []string
	NoInteractive bool
}

var initOpts initOptions

// initCmd scaffolds a crossforge.yaml manifest.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a crossforge.yaml manifest",
	Long: `Scaffold a manifest in the given directory. Missing values are asked
for interactively; pass --no-interactive to rely on flags and defaults
only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runInitAction(dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initOpts.Name, "name", "", "project name (default: directory name)")
	initCmd.Flags().StringVar(&initOpts.Channel, "channel", "", "toolchain channel")
	initCmd.Flags().StringVar(&initOpts.Target, "target", "", "cross-compilation target triple")
	initCmd.Flags().StringSliceVar(&initOpts.Libraries, "lib", nil, "native libraries for the dev shell (ordered)")
	initCmd.Flags().BoolVar(&initOpts.NoInteractive, "no-interactive", false, "never prompt; use flags and defaults")
}

func runInitAction(dir string) error {
	path := filepath.Join(dir, config.DefaultManifestName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	opts := initOpts
	if opts.Name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		opts.Name = filepath.Base(abs)
	}

	if !opts.NoInteractive {
		if err := promptInitOptions(&opts); err != nil {
			return err
		}
	}
	if opts.Channel == "" {
		opts.Channel = "stable"
	}
	if opts.Target == "" {
		opts.Target = "wasm32-unknown-unknown"
	}

	libs := make(devshell.LibrarySet, 0, len(opts.Libraries))
	for _, name := range opts.Libraries {
		libs = append(libs, devshell.Library{Name: name})
	}

	m := config.Manifest{
		Project:   config.Project{Name: opts.Name},
		Toolchain: config.Toolchain{Channel: opts.Channel, Target: opts.Target},
		DevShell:  config.DevShell{Libraries: libs},
	}
	if err := config.Validate(&m); err != nil {
		return err
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("failed to render manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

func promptInitOptions(opts *initOptions) error {
	if opts.Channel == "" {
		if err := huh.NewInput().
			Title("Toolchain channel").
			Placeholder("stable").
			Value(&opts.Channel).
			Run(); err != nil {
			return err
		}
	}

	if opts.Target == "" {
		if err := huh.NewSelect[string]().
			Title("Cross-compilation target").
			Options(
				huh.NewOption("wasm32-unknown-unknown (browser)", "wasm32-unknown-unknown"),
				huh.NewOption("wasm32-wasip1 (WASI)", "wasm32-wasip1"),
			).
			Value(&opts.Target).
			Run(); err != nil {
			return err
		}
	}

	if len(opts.Libraries) == 0 {
		if err := huh.NewMultiSelect[string]().
			Title("Native libraries for the dev shell").
			Options(
				huh.NewOption("GTK 3", "gtk+-3.0").Selected(true),
				huh.NewOption("WebKitGTK", "webkit2gtk-4.1").Selected(true),
				huh.NewOption("GLib", "glib-2.0"),
				huh.NewOption("Cairo", "cairo"),
				huh.NewOption("Pango", "pango"),
				huh.NewOption("OpenSSL", "openssl"),
			).
			Value(&opts.Libraries).
			Run(); err != nil {
			return err
		}
	}
	return nil
}
