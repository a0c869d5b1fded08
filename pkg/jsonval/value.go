package jsonval

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind enumerates the JSON value kinds the enforcement pipeline operates on.
type Kind string

const (
	KindNull    Kind = "null"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBool    Kind = "bool"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindInvalid Kind = "invalid"
)

// ErrUnsupportedValue reports input that cannot be expressed as one of the
// six sanctioned JSON kinds.
var ErrUnsupportedValue = errors.New("jsonval: unsupported value")

// KindOf classifies a value into one of the sanctioned kinds. Values outside
// the JSON model (channels, funcs, typed structs, non-string-keyed maps)
// report KindInvalid.
func KindOf(value any) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}

// Normalize coerces a value into canonical JSON representation: numbers
// become float64, arrays and objects are rebuilt recursively. It is the
// boundary check for data arriving from decoders other than encoding/json;
// anything outside the JSON model returns ErrUnsupportedValue rather than
// flowing silently into the pipeline.
func Normalize(value any) (any, error) {
	switch v := value.(type) {
	case nil, string, bool, float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("jsonval: parse number %q: %w", v.String(), err)
		}
		return parsed, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			norm, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			norm, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[key] = norm
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// DeepClone copies a JSON-compatible value so callers can mutate the result
// without touching the original. Scalars are returned as-is; values of
// unknown kinds are also returned as-is since the pipeline never mutates
// them.
func DeepClone(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = DeepClone(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = DeepClone(item)
		}
		return out
	default:
		return v
	}
}
