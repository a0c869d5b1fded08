// Package registry holds the process-wide table of entity specifications.
// Contracts are registered once at construction and read-only afterwards, so
// a Registry is safe to share across any number of concurrent callers.
// Lookup of an unknown entity type reports a miss rather than panicking;
// callers decide how to surface the misconfiguration.
package registry

import (
	"fmt"
	"sort"

	"github.com/hiveos/go-canonical/pkg/contract"
)

// Registry maps entity type tags to their immutable field contracts.
type Registry struct {
	specs map[string]contract.EntitySpec
}

// New builds a Registry from the supplied entity specs. Later specs replace
// earlier ones with the same type tag, which lets callers layer overrides on
// top of Builtin(). Specs with an empty type tag or no fields are rejected.
func New(specs ...contract.EntitySpec) (*Registry, error) {
	reg := &Registry{specs: make(map[string]contract.EntitySpec, len(specs))}
	for _, spec := range specs {
		if spec.Type == "" {
			return nil, fmt.Errorf("registry: entity spec %q has no type tag", spec.Label)
		}
		if len(spec.Fields) == 0 {
			return nil, fmt.Errorf("registry: entity spec %q declares no fields", spec.Type)
		}
		for _, field := range spec.Fields {
			if field.Path == "" {
				return nil, fmt.Errorf("registry: entity spec %q has a field with no path", spec.Type)
			}
			if !contract.KnownFieldType(field.Type) {
				return nil, fmt.Errorf("registry: entity spec %q field %q has unknown type %q", spec.Type, field.Path, field.Type)
			}
		}
		reg.specs[spec.Type] = spec
	}
	return reg, nil
}

// MustNew panics if the registry cannot be constructed. Intended for static
// tables validated by tests.
func MustNew(specs ...contract.EntitySpec) *Registry {
	reg, err := New(specs...)
	if err != nil {
		panic(err)
	}
	return reg
}

var defaultRegistry = MustNew(Builtin()...)

// Default returns the registry of built-in Lab contracts.
func Default() *Registry {
	return defaultRegistry
}

// Get looks up the entity spec for a type tag. The boolean is false for
// unregistered types; the caller must handle the miss explicitly.
func (r *Registry) Get(entityType string) (contract.EntitySpec, bool) {
	if r == nil {
		return contract.EntitySpec{}, false
	}
	spec, ok := r.specs[entityType]
	return spec, ok
}

// IsRegistered reports whether a contract exists for the type tag.
func (r *Registry) IsRegistered(entityType string) bool {
	_, ok := r.Get(entityType)
	return ok
}

// RequiredPaths returns the required field paths for a type in declaration
// order, or nil for an unregistered type.
func (r *Registry) RequiredPaths(entityType string) []string {
	spec, ok := r.Get(entityType)
	if !ok {
		return nil
	}
	return spec.RequiredPaths()
}

// Types returns the registered type tags in sorted order.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.specs))
	for entityType := range r.specs {
		out = append(out, entityType)
	}
	sort.Strings(out)
	return out
}
