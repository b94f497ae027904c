package builder

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultTargetEnv is the environment key the build tool reads the
// cross-compilation target from.
const DefaultTargetEnv = "CARGO_BUILD_TARGET"

// Artifact is the opaque output of a successful build.
type Artifact struct {
	ID      uuid.UUID
	Path    string
	Triple  string
	BuiltAt time.Time
}

// Builder compiles a source tree into a package artifact. Implementations
// surface build diagnostics verbatim on stderr and report failures as
// *BuildError.
type Builder interface {
	Build(ctx context.Context, req Request) (*Artifact, error)
}
