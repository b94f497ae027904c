package toolchain

import "context"

// Query addresses a single component inside a distribution channel.
type Query struct {
	// Channel is the distribution channel name (e.g. "stable").
	Channel string
	// Version is a semver constraint or "latest".
	Version string
	// Profile is the component profile the channel must expose
	// (e.g. "minimal").
	Profile string
	// Role of the requested component.
	Role Role
	// Triple qualifies std components by cross-compilation target.
	Triple string
}

// ChannelProvider resolves channel components to installed values. All
// side effects of resolution (fetching, caching) live behind this
// interface; composition stays a pure merge.
type ChannelProvider interface {
	// Resolve returns the component addressed by the query, or a
	// *ResolutionError naming the missing component.
	Resolve(ctx context.Context, q Query) (Component, error)
}
