package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crossforge-dev/crossforge/internal/toolchain"
)

// Verifier checks a built artifact for well-formedness before it is
// handed to the caller.
type Verifier interface {
	Verify(ctx context.Context, path string) error
}

// Params names one end-to-end pipeline invocation: which toolchain to
// compose and which source tree to build with it.
type Params struct {
	Channel string
	Version string
	Profile string
	Triple  string

	Source string
	Args   map[string]string
	Env    map[string]string

	// Package is the named output alias. Defaults to the source
	// directory's base name.
	Package string
	// TargetEnv overrides the env key carrying the triple.
	TargetEnv string
}

// Output is the pipeline result: one artifact, reachable both as the
// default output and under its package name. Both bindings share the
// same underlying artifact.
type Output struct {
	Default *Artifact
	Named   map[string]*Artifact
}

// Pipeline wires toolchain composition, the target override, and the
// build tool into a single invocation with exactly one success path.
type Pipeline struct {
	composer *toolchain.Composer
	base     Builder
	verifier Verifier
}

// NewPipeline creates a pipeline over the given composer and builder.
// verifier may be nil to skip artifact verification.
func NewPipeline(composer *toolchain.Composer, base Builder, verifier Verifier) *Pipeline {
	return &Pipeline{composer: composer, base: base, verifier: verifier}
}

// Run composes the toolchain, builds the source tree pinned to the
// requested triple, and verifies the result. Any failure aborts the
// whole invocation; partial outputs are never returned.
func (p *Pipeline) Run(ctx context.Context, params Params) (*Output, error) {
	spec, err := p.composer.Compose(ctx, toolchain.ComposeRequest{
		Channel: params.Channel,
		Version: params.Version,
		Profile: params.Profile,
		Triple:  params.Triple,
	})
	if err != nil {
		return nil, err
	}

	name := params.Package
	if name == "" {
		name = sourceBase(params.Source)
	}

	pinned := NewTargetOverride(p.base, params.TargetEnv, params.Triple)
	req := NewRequest(name, params.Source, spec, params.Env, params.Args)

	artifact, err := pinned.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	if p.verifier != nil {
		if err := p.verifier.Verify(ctx, artifact.Path); err != nil {
			return nil, fmt.Errorf("artifact verification failed: %w", err)
		}
	}

	slog.Info("build complete", "request", req.ID, "package", name, "artifact", artifact.Path)

	return &Output{
		Default: artifact,
		Named:   map[string]*Artifact{name: artifact},
	}, nil
}
