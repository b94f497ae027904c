// Package toolchain composes a cross-compilation toolchain from channel
// components. Resolution of components is delegated to a ChannelProvider;
// composition itself is a pure merge over resolved values.
package toolchain

import (
	"fmt"
	"strings"
)

// Role identifies what part a component plays inside a composed toolchain.
type Role string

const (
	// RoleCompiler is the language compiler.
	RoleCompiler Role = "compiler"
	// RoleBuildTool is the package build tool driving the compiler.
	RoleBuildTool Role = "build-tool"
	// RoleStd is a target-specific standard library component.
	RoleStd Role = "std"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCompiler, RoleBuildTool, RoleStd:
		return true
	}
	return false
}

// Component is a single resolved toolchain component. Components are
// immutable values produced by a ChannelProvider.
type Component struct {
	Role    Role
	Name    string
	Channel string
	Version string
	// Triple is set only for std components; it names the
	// cross-compilation target the component supports.
	Triple string
	// Path is the resolved install directory of the component on the host.
	Path string
}

// NewComponent creates a Component with validation.
func NewComponent(role Role, name, channel, version, triple, path string) (Component, error) {
	if !role.Valid() {
		return Component{}, fmt.Errorf("unknown component role %q", role)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Component{}, fmt.Errorf("component name cannot be empty")
	}
	if channel == "" {
		return Component{}, fmt.Errorf("component channel cannot be empty")
	}
	if role == RoleStd && triple == "" {
		return Component{}, fmt.Errorf("std component %q requires a target triple", name)
	}
	if role != RoleStd && triple != "" {
		return Component{}, fmt.Errorf("component %q: only std components carry a target triple", name)
	}
	return Component{
		Role:    role,
		Name:    name,
		Channel: channel,
		Version: version,
		Triple:  triple,
		Path:    path,
	}, nil
}

// IsZero returns true if this is the zero value.
func (c Component) IsZero() bool {
	return c.Name == ""
}

// String returns a human-readable component reference.
func (c Component) String() string {
	if c.Triple != "" {
		return fmt.Sprintf("%s/%s@%s(%s)", c.Channel, c.Name, c.Version, c.Triple)
	}
	return fmt.Sprintf("%s/%s@%s", c.Channel, c.Name, c.Version)
}
