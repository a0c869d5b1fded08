package contract

import (
	"math"

	"github.com/hiveos/go-canonical/pkg/jsonval"
)

// MeetsSpec reports whether a present value satisfies a field contract.
//
// An explicit null passes only for optional fields; a required field holding
// null must go through the enforcement null path instead of being treated as
// already satisfied. Absent values never satisfy; callers are expected to
// have resolved presence first (jsonval.GetNested's second return) and not
// call MeetsSpec for a miss.
func MeetsSpec(value any, spec FieldSpec) bool {
	if value == nil {
		return !spec.Required
	}

	// Vacuous values never satisfy a contract, floor or no floor: the strip
	// pass removes them, and a required field must survive enforcement as a
	// meaningful value or an explicit null.
	switch spec.Type {
	case FieldTypeString:
		s, ok := value.(string)
		if !ok {
			return false
		}
		return s != "" && len(s) >= spec.MinLength
	case FieldTypeArray:
		items, ok := value.([]any)
		if !ok {
			return false
		}
		return len(items) > 0 && len(items) >= spec.MinItems
	case FieldTypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return false
		}
		return len(obj) > 0
	case FieldTypeNumber:
		num, ok := asNumber(value)
		if !ok {
			return false
		}
		return !math.IsNaN(num) && !math.IsInf(num, 0)
	default:
		return false
	}
}

func asNumber(value any) (float64, bool) {
	if jsonval.KindOf(value) != jsonval.KindNumber {
		return 0, false
	}
	norm, err := jsonval.Normalize(value)
	if err != nil {
		return 0, false
	}
	num, ok := norm.(float64)
	return num, ok
}
