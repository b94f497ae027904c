// Package config loads and validates the crossforge.yaml manifest.
package config

import "github.com/crossforge-dev/crossforge/internal/devshell"

// DefaultManifestName is the manifest file crossforge looks for in a
// project directory.
const DefaultManifestName = "crossforge.yaml"

// Manifest is the declarative project configuration: which toolchain to
// compose, how to build the source tree, and what the dev shell needs.
type Manifest struct {
	Project   Project   `yaml:"project"`
	Toolchain Toolchain `yaml:"toolchain"`
	Build     Build     `yaml:"build,omitempty"`
	DevShell  DevShell  `yaml:"devshell,omitempty"`
}

// Project identifies the package being built.
type Project struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

// Toolchain pins the composed toolchain.
type Toolchain struct {
	// Channel is the distribution channel (e.g. "stable").
	Channel string `yaml:"channel"`
	// Version is a semver constraint or "latest".
	Version string `yaml:"version,omitempty"`
	// Profile selects the component profile; defaults to "minimal".
	Profile string `yaml:"profile,omitempty"`
	// Target is the cross-compilation target triple.
	Target string `yaml:"target"`
}

// Build configures the package build.
type Build struct {
	// Source is the source tree root, relative to the manifest.
	Source string `yaml:"source,omitempty"`
	// Args are extra build arguments, keys unique.
	Args map[string]string `yaml:"args,omitempty"`
	// Env are extra environment settings for the build tool.
	Env map[string]string `yaml:"env,omitempty"`
	// TargetEnv overrides the env key carrying the target triple.
	TargetEnv string `yaml:"target_env,omitempty"`
}

// DevShell declares the native libraries the development session needs
// on its dynamic-library search path, in order.
type DevShell struct {
	Libraries devshell.LibrarySet `yaml:"libraries,omitempty"`
}

// applyDefaults fills in the manifest's optional fields. Explicit values
// always take precedence.
func applyDefaults(m *Manifest) {
	if m.Toolchain.Version == "" {
		m.Toolchain.Version = "latest"
	}
	if m.Toolchain.Profile == "" {
		m.Toolchain.Profile = "minimal"
	}
	if m.Build.Source == "" {
		m.Build.Source = "."
	}
}
