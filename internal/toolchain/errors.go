package toolchain

import "fmt"

// ResolutionError indicates a declared channel component could not be
// resolved. Resolution failures are fatal; nothing retries them.
type ResolutionError struct {
	Channel   string
	Component string
	Triple    string
	Reason    string
	Cause     error
}

func (e *ResolutionError) Error() string {
	ref := e.Channel + "/" + e.Component
	if e.Triple != "" {
		ref += "(" + e.Triple + ")"
	}
	if e.Cause != nil {
		return fmt.Sprintf("cannot resolve %s: %s: %v", ref, e.Reason, e.Cause)
	}
	return fmt.Sprintf("cannot resolve %s: %s", ref, e.Reason)
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// NewResolutionError creates a resolution error for a component reference.
func NewResolutionError(channel, component, triple, reason string, cause error) *ResolutionError {
	return &ResolutionError{
		Channel:   channel,
		Component: component,
		Triple:    triple,
		Reason:    reason,
		Cause:     cause,
	}
}
