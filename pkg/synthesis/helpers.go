package synthesis

import (
	"github.com/hiveos/go-canonical/pkg/jsonval"
)

// prose returns the first candidate path holding a non-empty string, cleaned
// of markup. Candidates cover the conventional legacy locations for a field;
// earlier paths win.
func prose(alt map[string]any, paths ...string) string {
	for _, path := range paths {
		value, ok := jsonval.GetNested(alt, path)
		if !ok {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		if cleaned := CleanProse(s); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// list returns the first candidate path holding a non-empty array.
func list(alt map[string]any, paths ...string) []any {
	for _, path := range paths {
		value, ok := jsonval.GetNested(alt, path)
		if !ok {
			continue
		}
		if items, ok := value.([]any); ok && len(items) > 0 {
			return items
		}
	}
	return nil
}

// mapping returns the first candidate path holding a non-empty object.
func mapping(alt map[string]any, paths ...string) map[string]any {
	for _, path := range paths {
		value, ok := jsonval.GetNested(alt, path)
		if !ok {
			continue
		}
		if obj, ok := value.(map[string]any); ok && len(obj) > 0 {
			return obj
		}
	}
	return nil
}

// number returns the first candidate path holding a JSON number.
func number(alt map[string]any, paths ...string) (float64, bool) {
	for _, path := range paths {
		value, ok := jsonval.GetNested(alt, path)
		if !ok {
			continue
		}
		if jsonval.KindOf(value) != jsonval.KindNumber {
			continue
		}
		norm, err := jsonval.Normalize(value)
		if err != nil {
			continue
		}
		if num, ok := norm.(float64); ok {
			return num, true
		}
	}
	return 0, false
}
