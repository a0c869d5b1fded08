package jsonval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hiveos/go-canonical/pkg/jsonval"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "empty string", value: "", want: true},
		{name: "empty array", value: []any{}, want: true},
		{name: "empty object", value: map[string]any{}, want: true},
		{name: "whitespace string", value: " ", want: false},
		{name: "zero number", value: 0.0, want: false},
		{name: "false", value: false, want: false},
		{name: "populated array", value: []any{"a"}, want: false},
		{name: "populated object", value: map[string]any{"k": "v"}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := jsonval.IsEmpty(tc.value); got != tc.want {
				t.Fatalf("IsEmpty(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestStripEmptyPreservesNulls(t *testing.T) {
	in := map[string]any{
		"a": nil,
		"b": map[string]any{"c": nil},
		"d": map[string]any{},
	}

	want := map[string]any{
		"a": nil,
		"b": map[string]any{"c": nil},
	}
	if diff := cmp.Diff(want, jsonval.StripEmpty(in)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStripEmptyDropsVacuousMembers(t *testing.T) {
	in := map[string]any{
		"keep":        "text",
		"emptyString": "",
		"emptyArray":  []any{},
		"emptyNested": map[string]any{"inner": map[string]any{}},
		"nested": map[string]any{
			"keep": []any{"x"},
			"drop": "",
		},
	}

	want := map[string]any{
		"keep": "text",
		"nested": map[string]any{
			"keep": []any{"x"},
		},
	}
	if diff := cmp.Diff(want, jsonval.StripEmpty(in)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStripEmptyIdempotent(t *testing.T) {
	in := map[string]any{
		"a": nil,
		"b": map[string]any{"c": "", "d": "kept"},
		"e": []any{},
	}

	once := jsonval.StripEmpty(in)
	twice := jsonval.StripEmpty(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("not idempotent (-once +twice):\n%s", diff)
	}
}

func TestStripEmptyDoesNotMutateInput(t *testing.T) {
	in := map[string]any{
		"empty": "",
		"keep":  "v",
	}
	_ = jsonval.StripEmpty(in)

	if _, ok := in["empty"]; !ok {
		t.Fatal("input was mutated")
	}
}
