package builder

import (
	"context"
	"log/slog"
)

// TargetOverride wraps a Builder and pins the cross-compilation target:
// every request passed through it carries the fixed triple under the
// target environment key. A caller-supplied value for the same key is
// replaced, not merged; the fixed triple always wins so every invocation
// compiles for exactly one reproducible target. Collisions are logged,
// never errors.
type TargetOverride struct {
	next   Builder
	envKey string
	triple string
}

// NewTargetOverride wraps next so that every build targets triple. An
// empty envKey falls back to DefaultTargetEnv.
func NewTargetOverride(next Builder, envKey, triple string) *TargetOverride {
	if envKey == "" {
		envKey = DefaultTargetEnv
	}
	return &TargetOverride{next: next, envKey: envKey, triple: triple}
}

// Build implements Builder. It only shapes arguments; any failure comes
// from the wrapped builder unchanged.
func (o *TargetOverride) Build(ctx context.Context, req Request) (*Artifact, error) {
	if existing, ok := req.Env[o.envKey]; ok && existing != o.triple {
		slog.Warn("overriding caller-supplied build target",
			"request", req.ID,
			"key", o.envKey,
			"caller", existing,
			"pinned", o.triple)
	}
	return o.next.Build(ctx, req.withEnv(o.envKey, o.triple))
}
