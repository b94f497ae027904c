package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Project names must be usable as artifact file names.
var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Target triples are dash-separated arch/vendor/os tokens.
var triplePattern = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_.]+)+$`)

// Validate performs structural validation of a manifest. Returns an
// error describing all validation failures found.
func Validate(m *Manifest) error {
	var errors []string

	if err := validateProject(m.Project); err != nil {
		errors = append(errors, err.Error())
	}
	if err := validateToolchain(m.Toolchain); err != nil {
		errors = append(errors, err.Error())
	}
	for i, lib := range m.DevShell.Libraries {
		if strings.TrimSpace(lib.Name) == "" {
			errors = append(errors, fmt.Sprintf("devshell library %d has an empty name", i))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("manifest validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

func validateProject(p Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if !projectNamePattern.MatchString(p.Name) {
		return fmt.Errorf("project name %q must be alphanumeric with dashes and underscores", p.Name)
	}
	if p.Version != "" {
		if _, err := semver.NewVersion(p.Version); err != nil {
			return fmt.Errorf("project version %q is not a valid semantic version: %w", p.Version, err)
		}
	}
	return nil
}

func validateToolchain(tc Toolchain) error {
	if tc.Channel == "" {
		return fmt.Errorf("toolchain channel is required")
	}
	if tc.Target == "" {
		return fmt.Errorf("toolchain target triple is required")
	}
	if !triplePattern.MatchString(tc.Target) {
		return fmt.Errorf("toolchain target %q does not look like a target triple", tc.Target)
	}
	if tc.Version != "" && tc.Version != "latest" {
		if _, err := semver.NewConstraint(tc.Version); err != nil {
			return fmt.Errorf("toolchain version %q is not a valid constraint: %w", tc.Version, err)
		}
	}
	return nil
}
