package jsonval

import "strings"

// SplitPath breaks a dot-separated field path into its segments, dropping
// empty segments produced by stray dots.
func SplitPath(path string) []string {
	raw := strings.Split(path, ".")
	out := make([]string, 0, len(raw))
	for _, segment := range raw {
		if segment == "" {
			continue
		}
		out = append(out, segment)
	}
	return out
}

// GetNested walks a dot-separated path inside a nested object. The boolean
// reports whether the full path resolved: it is false the moment any
// intermediate segment is missing, nil, or not an object. A resolved leaf may
// still be nil (an explicit null), which is distinct from a miss.
func GetNested(obj map[string]any, path string) (any, bool) {
	segments := SplitPath(path)
	if len(segments) == 0 || obj == nil {
		return nil, false
	}

	var current any = obj
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, found := node[segment]
		if !found {
			return nil, false
		}
		current = value
	}
	return current, true
}

// SetNested writes a value at a dot-separated path, creating intermediate
// objects as it walks. An existing intermediate that is not an object is
// replaced with a fresh one so the write always lands. Mutates obj in place;
// a nil obj or empty path is a no-op.
func SetNested(obj map[string]any, path string, value any) {
	segments := SplitPath(path)
	if len(segments) == 0 || obj == nil {
		return
	}

	node := obj
	for _, segment := range segments[:len(segments)-1] {
		next, ok := node[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[segment] = next
		}
		node = next
	}
	node[segments[len(segments)-1]] = value
}
