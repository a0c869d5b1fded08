// Package jsonval provides the value-inspection primitives the contract
// enforcement pipeline is built on: kind classification for JSON-compatible
// values, dot-path reads and writes into nested objects, emptiness checks,
// and the strip pass that removes vacuous containers while preserving
// explicit nulls. All functions are pure and tolerate malformed input; a
// failed path walk reports a miss instead of panicking so callers can treat
// legacy payloads of unknown shape as best-effort sources.
package jsonval
