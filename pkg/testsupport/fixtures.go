// Package testsupport holds fixture and golden-file helpers shared by the
// contract tests. Goldens are refreshed by running the tests with
// UPDATE_GOLDENS set.
package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hiveos/go-canonical/pkg/enforcer"
)

// MustLoadCanonical loads a JSON fixture into a canonical object map.
func MustLoadCanonical(t *testing.T, path string) map[string]any {
	t.Helper()

	obj, err := LoadCanonical(path)
	if err != nil {
		t.Fatalf("load canonical: %v", err)
	}
	return obj
}

// LoadCanonical reads a JSON fixture without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadCanonical(path string) (map[string]any, error) {
	if path == "" {
		return nil, errors.New("testsupport: canonical path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read canonical: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal canonical: %w", err)
	}
	return out, nil
}

// MustLoadResult loads a JSON golden file into an enforcement Result.
func MustLoadResult(t *testing.T, path string) enforcer.Result {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out enforcer.Result
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is
// set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
