package toolchain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// ComposeRequest names everything needed to assemble one toolchain: a
// channel, a version constraint, the profile providing the compiler and
// build-tool pair, and the cross-compilation target the std component
// must support.
type ComposeRequest struct {
	Channel string
	Version string
	Profile string
	Triple  string
}

// Composer merges channel components into a Spec. The provider performs
// all resolution; Compose itself only shapes queries and merges results,
// so it stays deterministic for a fixed provider state.
type Composer struct {
	provider ChannelProvider
}

// NewComposer creates a Composer backed by the given provider.
func NewComposer(provider ChannelProvider) *Composer {
	return &Composer{provider: provider}
}

// Compose resolves the minimal-profile compiler and build tool plus the
// triple-qualified std component and merges them into one Spec. The three
// components resolve concurrently; the first failure cancels the rest and
// is returned unchanged.
func (c *Composer) Compose(ctx context.Context, req ComposeRequest) (Spec, error) {
	queries := []Query{
		{Channel: req.Channel, Version: req.Version, Profile: req.Profile, Role: RoleCompiler},
		{Channel: req.Channel, Version: req.Version, Profile: req.Profile, Role: RoleBuildTool},
		{Channel: req.Channel, Version: req.Version, Role: RoleStd, Triple: req.Triple},
	}

	components := make([]Component, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			resolved, err := c.provider.Resolve(gctx, q)
			if err != nil {
				return err
			}
			components[i] = resolved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Spec{}, err
	}

	spec, err := NewSpec(components...)
	if err != nil {
		return Spec{}, err
	}

	slog.Debug("toolchain composed",
		"channel", req.Channel,
		"version", components[0].Version,
		"triple", req.Triple)
	return spec, nil
}
