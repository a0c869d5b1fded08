package enforcer

import (
	"fmt"

	"github.com/hiveos/go-canonical/pkg/contract"
	"github.com/hiveos/go-canonical/pkg/jsonval"
)

// Report is the outcome of a read-only contract check.
type Report struct {
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	MissingFields []string `json:"missingFields"`
}

// Validate checks whether a canonical object already satisfies its entity
// contract without mutating it or attempting synthesis. Each failing required
// field is classified (absent, empty, or wrong shape) so callers running a
// pre-flight gate can tell configuration gaps from upstream data problems.
func (e *Enforcer) Validate(entityType string, canonical map[string]any) Report {
	spec, ok := e.opts.Registry.Get(entityType)
	if !ok {
		return Report{
			Valid:         false,
			Errors:        []string{fmt.Sprintf("unknown entity type %q", entityType)},
			MissingFields: []string{},
		}
	}

	errs := []string{}
	missing := []string{}
	for _, field := range spec.Fields {
		if !field.Required {
			continue
		}

		value, found := jsonval.GetNested(canonical, field.Path)
		if found && contract.MeetsSpec(value, field) {
			continue
		}
		missing = append(missing, field.Path)

		switch {
		case !found:
			errs = append(errs, fmt.Sprintf("%s (%s) is absent", field.Label, field.Path))
		case jsonval.IsEmpty(value):
			errs = append(errs, fmt.Sprintf("%s (%s) is empty", field.Label, field.Path))
		default:
			errs = append(errs, fmt.Sprintf("%s (%s) does not satisfy the %s contract", field.Label, field.Path, field.Type))
		}
	}

	return Report{
		Valid:         len(errs) == 0,
		Errors:        errs,
		MissingFields: missing,
	}
}
