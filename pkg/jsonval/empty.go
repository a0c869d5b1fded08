package jsonval

// IsEmpty reports whether a value carries no data: nil, "", a zero-length
// array, or an object with zero keys. Note that nil is classified as empty
// here even though an explicit null is the sanctioned placeholder for "no
// data" in enforced output; emptiness and spec satisfaction are separate
// questions, and callers must not conflate the two.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// StripEmpty rebuilds an object without its vacuous members: empty strings
// and zero-length arrays are dropped, nested objects are stripped recursively
// and kept only if anything survives. Explicit nulls are preserved verbatim
// at any depth. The input is not mutated, and the function is idempotent.
func StripEmpty(obj map[string]any) map[string]any {
	if obj == nil {
		return nil
	}

	out := make(map[string]any, len(obj))
	for key, value := range obj {
		switch v := value.(type) {
		case nil:
			out[key] = nil
		case string:
			if v == "" {
				continue
			}
			out[key] = v
		case []any:
			if len(v) == 0 {
				continue
			}
			out[key] = v
		case map[string]any:
			stripped := StripEmpty(v)
			if len(stripped) == 0 {
				continue
			}
			out[key] = stripped
		default:
			out[key] = value
		}
	}
	return out
}
