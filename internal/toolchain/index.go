package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
)

// channelIndex is the on-disk channel index (~/.crossforge/channels.yaml).
// It pins the components each channel release provides and where their
// install directories live on the host.
type channelIndex struct {
	Channels []channelEntry `yaml:"channels"`
}

type channelEntry struct {
	Name     string         `yaml:"name"`
	Releases []releaseEntry `yaml:"releases"`
}

type releaseEntry struct {
	Version    string           `yaml:"version"`
	Components []componentEntry `yaml:"components"`
}

type componentEntry struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Profiles []string `yaml:"profiles"`
	// Targets lists the triples a std component supports. Empty for
	// compiler and build-tool components.
	Targets []string `yaml:"targets"`
	Path    string   `yaml:"path"`
}

// IndexProvider resolves components from a pinned channel index file.
// Resolution is deterministic for a fixed index: the same query always
// selects the same release and component.
type IndexProvider struct {
	index channelIndex
}

// NewIndexProvider loads a channel index from path.
func NewIndexProvider(path string) (*IndexProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read channel index: %w", err)
	}
	return NewIndexProviderFromBytes(data)
}

// NewIndexProviderFromBytes parses a channel index from raw YAML. Useful
// for tests with in-memory indexes.
func NewIndexProviderFromBytes(data []byte) (*IndexProvider, error) {
	var idx channelIndex
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse channel index: %w", err)
	}
	return &IndexProvider{index: idx}, nil
}

// Resolve implements ChannelProvider against the pinned index.
func (p *IndexProvider) Resolve(_ context.Context, q Query) (Component, error) {
	channel, ok := p.channel(q.Channel)
	if !ok {
		return Component{}, NewResolutionError(q.Channel, string(q.Role), q.Triple, "unknown channel", nil)
	}

	release, err := selectRelease(channel.Releases, q.Version)
	if err != nil {
		return Component{}, NewResolutionError(q.Channel, string(q.Role), q.Triple, "no release matches version", err)
	}

	for _, entry := range release.Components {
		if Role(entry.Role) != q.Role {
			continue
		}
		if q.Profile != "" && !slices.Contains(entry.Profiles, q.Profile) {
			continue
		}
		path := entry.Path
		if q.Role == RoleStd {
			if !slices.Contains(entry.Targets, q.Triple) {
				return Component{}, NewResolutionError(q.Channel, entry.Name, q.Triple,
					fmt.Sprintf("target %s not provided by release %s", q.Triple, release.Version), nil)
			}
			// Std install layout keeps one directory per target.
			path = filepath.Join(entry.Path, q.Triple)
		}
		return NewComponent(q.Role, entry.Name, q.Channel, release.Version, q.Triple, path)
	}

	reason := fmt.Sprintf("release %s has no %s component", release.Version, q.Role)
	if q.Profile != "" {
		reason += fmt.Sprintf(" in profile %q", q.Profile)
	}
	return Component{}, NewResolutionError(q.Channel, string(q.Role), q.Triple, reason, nil)
}

func (p *IndexProvider) channel(name string) (channelEntry, bool) {
	for _, c := range p.index.Channels {
		if c.Name == name {
			return c, true
		}
	}
	return channelEntry{}, false
}

// selectRelease picks the highest release satisfying the version
// constraint. "latest" and the empty string match every release.
func selectRelease(releases []releaseEntry, constraint string) (releaseEntry, error) {
	if len(releases) == 0 {
		return releaseEntry{}, fmt.Errorf("channel has no releases")
	}

	var check *semver.Constraints
	if constraint != "" && constraint != "latest" {
		c, err := semver.NewConstraint(constraint)
		if err != nil {
			return releaseEntry{}, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
		}
		check = c
	}

	var (
		best        releaseEntry
		bestVersion *semver.Version
	)
	for _, r := range releases {
		v, err := semver.NewVersion(r.Version)
		if err != nil {
			return releaseEntry{}, fmt.Errorf("invalid release version %q: %w", r.Version, err)
		}
		if check != nil && !check.Check(v) {
			continue
		}
		if bestVersion == nil || v.GreaterThan(bestVersion) {
			best = r
			bestVersion = v
		}
	}
	if bestVersion == nil {
		return releaseEntry{}, fmt.Errorf("no release satisfies %q", constraint)
	}
	return best, nil
}
