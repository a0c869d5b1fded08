// Package enforcer implements canonical contract enforcement: given an
// entity type, a partially-populated canonical object, and up to two
// alternate raw sources, it fills gaps by priority order, downgrades
// unfillable required fields to explicit null, and strips vacuous containers
// from the result. Enforcement is deterministic and pure: the caller's
// input is never mutated, and re-running on an enforced object is a no-op.
package enforcer

import (
	"fmt"

	"github.com/hiveos/go-canonical/pkg/contract"
	"github.com/hiveos/go-canonical/pkg/jsonval"
	"github.com/hiveos/go-canonical/pkg/registry"
	"github.com/hiveos/go-canonical/pkg/synthesis"
)

// Result reports one enforcement run. It is plain JSON so callers can log,
// persist, or return it from a handler unchanged. Callers are expected to
// persist Canonical in place of their input and surface Errors to operators
// when Valid is false.
type Result struct {
	Canonical         map[string]any `json:"canonical"`
	SynthesizedFields []string       `json:"synthesizedFields"`
	NullFields        []string       `json:"nullFields"`
	Valid             bool           `json:"valid"`
	Errors            []string       `json:"errors"`
}

// Options configures an Enforcer. Zero values select the built-in registry
// and synthesizer bank.
type Options struct {
	Registry     *registry.Registry
	Synthesizers func(entityType string) synthesis.Synthesizer
}

// Enforcer runs the contract enforcement algorithm. It holds no mutable
// state, so a single instance is safe for concurrent use.
type Enforcer struct {
	opts Options
}

// New creates an Enforcer with the supplied options.
func New(options Options) *Enforcer {
	if options.Registry == nil {
		options.Registry = registry.Default()
	}
	if options.Synthesizers == nil {
		options.Synthesizers = synthesis.ForType
	}
	return &Enforcer{opts: options}
}

// Enforce fills, nulls, and strips a canonical object until it satisfies the
// entity's field contract. Alternate sources are consulted in order for any
// field the canonical object cannot satisfy on its own; a value already
// meeting the contract always wins over synthesis. Unknown entity types
// return an invalid Result echoing the input unmodified, never an error.
func (e *Enforcer) Enforce(entityType string, canonical map[string]any, alts ...map[string]any) Result {
	spec, ok := e.opts.Registry.Get(entityType)
	if !ok {
		echo, _ := jsonval.DeepClone(canonical).(map[string]any)
		return Result{
			Canonical:         echo,
			SynthesizedFields: []string{},
			NullFields:        []string{},
			Valid:             false,
			Errors:            []string{fmt.Sprintf("unknown entity type %q", entityType)},
		}
	}

	working, _ := jsonval.DeepClone(canonical).(map[string]any)
	if working == nil {
		working = map[string]any{}
	}

	synth := e.opts.Synthesizers(entityType)
	sources := make([]map[string]any, 0, len(alts))
	for _, alt := range alts {
		if alt == nil {
			continue
		}
		sources = append(sources, synth(alt))
	}

	synthesized := []string{}
	nulled := []string{}
	errs := []string{}

	for _, field := range spec.Fields {
		current, found := jsonval.GetNested(working, field.Path)
		if found && contract.MeetsSpec(current, field) {
			continue
		}

		filled := false
		for _, source := range sources {
			candidate, found := jsonval.GetNested(source, field.Path)
			if !found || !contract.MeetsSpec(candidate, field) {
				continue
			}
			jsonval.SetNested(working, field.Path, jsonval.DeepClone(candidate))
			synthesized = append(synthesized, field.Path)
			filled = true
			break
		}
		if filled {
			continue
		}

		if field.Required {
			if found && current == nil {
				// Already downgraded to an explicit null by a previous run;
				// re-recording it would break idempotence.
				continue
			}
			jsonval.SetNested(working, field.Path, nil)
			nulled = append(nulled, field.Path)
			if field.Critical() {
				errs = append(errs, fmt.Sprintf("%s (%s) could not be synthesized from any source", field.Label, field.Path))
			}
			continue
		}
		// Optional and unsatisfiable: leave absent; residue is removed by
		// the strip pass below.
	}

	return Result{
		Canonical:         jsonval.StripEmpty(working),
		SynthesizedFields: synthesized,
		NullFields:        nulled,
		Valid:             len(errs) == 0,
		Errors:            errs,
	}
}
