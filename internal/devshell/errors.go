package devshell

import "fmt"

// ConstructionError indicates the environment could not be assembled
// because a declared library did not resolve. Nothing is exported when
// this is returned; session entry is all-or-nothing.
type ConstructionError struct {
	Library string
	Cause   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct dev environment: library %s: %v", e.Library, e.Cause)
}

func (e *ConstructionError) Unwrap() error {
	return e.Cause
}
