// Package contract defines the typed field contracts canonical objects are
// held to: per-field specifications (type, required, length and item floors),
// per-entity specifications grouping them, and the MeetsSpec predicate that
// decides whether a value counts as meaningful. Registries of built-in
// contracts live in pkg/registry; the repair machinery that enforces them
// lives in pkg/enforcer.
package contract
