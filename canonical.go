// Package canonical is the convenience surface over contract enforcement:
// package-level Enforce and Validate calls backed by the built-in registry
// and synthesizer bank. Callers needing custom registries or synthesis
// strategies construct an enforcer.Enforcer directly.
package canonical

import (
	"github.com/hiveos/go-canonical/pkg/enforcer"
	"github.com/hiveos/go-canonical/pkg/registry"
)

// Result aliases the enforcement result exported via the root package for
// convenience.
type Result = enforcer.Result

// Report aliases the read-only validation report.
type Report = enforcer.Report

var defaultEnforcer = enforcer.New(enforcer.Options{})

// Enforce runs contract enforcement for an entity type using the built-in
// registry and synthesizers. It is the simplest entry point for callers that
// hold a canonical object and optionally one or two alternate raw sources.
func Enforce(entityType string, canonical map[string]any, alts ...map[string]any) Result {
	return defaultEnforcer.Enforce(entityType, canonical, alts...)
}

// Validate checks a canonical object against its contract without mutating
// it or attempting synthesis. It serves as a pre-flight gate before repair.
func Validate(entityType string, canonical map[string]any) Report {
	return defaultEnforcer.Validate(entityType, canonical)
}

// IsRegistered reports whether the built-in registry carries a contract for
// the entity type.
func IsRegistered(entityType string) bool {
	return registry.Default().IsRegistered(entityType)
}

// Types returns the entity types registered in the built-in registry.
func Types() []string {
	return registry.Default().Types()
}
