package toolchain

import (
	"fmt"
	"sort"
)

// Spec is a composed toolchain: one compiler, one build tool, and the
// standard-library components keyed by target triple. Specs are immutable
// once constructed; building the same source tree with equal Specs produces
// identical behavior.
type Spec struct {
	compiler  Component
	buildTool Component
	std       map[string]Component
}

// NewSpec merges resolved components into a Spec. Exactly one compiler and
// one build tool must be present; std components must not collide on the
// same triple.
func NewSpec(components ...Component) (Spec, error) {
	s := Spec{std: make(map[string]Component)}
	for _, c := range components {
		switch c.Role {
		case RoleCompiler:
			if !s.compiler.IsZero() {
				return Spec{}, fmt.Errorf("duplicate compiler component: %s and %s", s.compiler, c)
			}
			s.compiler = c
		case RoleBuildTool:
			if !s.buildTool.IsZero() {
				return Spec{}, fmt.Errorf("duplicate build-tool component: %s and %s", s.buildTool, c)
			}
			s.buildTool = c
		case RoleStd:
			if prev, ok := s.std[c.Triple]; ok {
				return Spec{}, fmt.Errorf("duplicate std component for %s: %s and %s", c.Triple, prev, c)
			}
			s.std[c.Triple] = c
		default:
			return Spec{}, fmt.Errorf("unknown component role %q", c.Role)
		}
	}
	if s.compiler.IsZero() {
		return Spec{}, fmt.Errorf("toolchain is missing a compiler component")
	}
	if s.buildTool.IsZero() {
		return Spec{}, fmt.Errorf("toolchain is missing a build-tool component")
	}
	return s, nil
}

// Compiler returns the compiler component.
func (s Spec) Compiler() Component { return s.compiler }

// BuildTool returns the build-tool component.
func (s Spec) BuildTool() Component { return s.buildTool }

// Std returns the standard-library component for the given target triple.
func (s Spec) Std(triple string) (Component, bool) {
	c, ok := s.std[triple]
	return c, ok
}

// Triples lists the target triples this toolchain can cross-compile for,
// in sorted order.
func (s Spec) Triples() []string {
	triples := make([]string, 0, len(s.std))
	for t := range s.std {
		triples = append(triples, t)
	}
	sort.Strings(triples)
	return triples
}

// Equal reports whether two Specs resolve to the same components.
func (s Spec) Equal(other Spec) bool {
	if s.compiler != other.compiler || s.buildTool != other.buildTool {
		return false
	}
	if len(s.std) != len(other.std) {
		return false
	}
	for triple, c := range s.std {
		if oc, ok := other.std[triple]; !ok || oc != c {
			return false
		}
	}
	return true
}

// String returns a short description of the composed toolchain.
func (s Spec) String() string {
	return fmt.Sprintf("toolchain{%s, %s, std=%v}", s.compiler, s.buildTool, s.Triples())
}
