package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadManifest loads and parses a manifest from a YAML file. The raw
// document is checked against the manifest schema before it is decoded;
// defaults and structural validation follow.
func LoadManifest(path string) (*Manifest, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	// resolving symlinks or escaping the intended directory.
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest directory: %w", err)
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	// Pre-flight: reject malformed documents before interpreting fields.
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	return LoadManifestFromReader(bytes.NewReader(data))
}

// LoadManifestFromReader loads and parses a manifest from an io.Reader.
// This is useful for testing with in-memory YAML data.
func LoadManifestFromReader(r io.Reader) (*Manifest, error) {
	var m Manifest

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Strict parsing - reject unknown fields

	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&m)

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}
