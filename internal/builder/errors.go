package builder

import (
	"fmt"

	"github.com/google/uuid"
)

// BuildError indicates the underlying build tool failed. The tool's
// diagnostics are already on stderr by the time this error is returned;
// the error carries only the exit state, never a rewrapped diagnostic.
type BuildError struct {
	RequestID uuid.UUID
	ExitCode  int
	Cause     error
}

func (e *BuildError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("build %s failed with exit code %d", e.RequestID, e.ExitCode)
	}
	return fmt.Sprintf("build %s failed: %v", e.RequestID, e.Cause)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
