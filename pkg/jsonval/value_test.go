package jsonval_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hiveos/go-canonical/pkg/jsonval"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  jsonval.Kind
	}{
		{name: "null", value: nil, want: jsonval.KindNull},
		{name: "string", value: "s", want: jsonval.KindString},
		{name: "bool", value: true, want: jsonval.KindBool},
		{name: "float", value: 1.5, want: jsonval.KindNumber},
		{name: "int", value: 3, want: jsonval.KindNumber},
		{name: "array", value: []any{1}, want: jsonval.KindArray},
		{name: "object", value: map[string]any{}, want: jsonval.KindObject},
		{name: "struct is invalid", value: struct{}{}, want: jsonval.KindInvalid},
		{name: "typed slice is invalid", value: []string{"a"}, want: jsonval.KindInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := jsonval.KindOf(tc.value); got != tc.want {
				t.Fatalf("KindOf = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeCoercesNumbers(t *testing.T) {
	in := map[string]any{
		"int":   42,
		"float": 1.25,
		"list":  []any{int64(7), uint(3)},
	}

	got, err := jsonval.Normalize(in)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := map[string]any{
		"int":   42.0,
		"float": 1.25,
		"list":  []any{7.0, 3.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	_, err := jsonval.Normalize(map[string]any{"ch": make(chan int)})
	if !errors.Is(err, jsonval.ErrUnsupportedValue) {
		t.Fatalf("err = %v, want ErrUnsupportedValue", err)
	}
}

func TestDeepCloneIsolation(t *testing.T) {
	original := map[string]any{
		"nested": map[string]any{"list": []any{"a"}},
	}
	clone, ok := jsonval.DeepClone(original).(map[string]any)
	if !ok {
		t.Fatal("clone is not an object")
	}

	jsonval.SetNested(clone, "nested.added", "value")
	clone["nested"].(map[string]any)["list"].([]any)[0] = "changed"

	if _, found := jsonval.GetNested(original, "nested.added"); found {
		t.Fatal("mutation leaked into original")
	}
	if original["nested"].(map[string]any)["list"].([]any)[0] != "a" {
		t.Fatal("array mutation leaked into original")
	}
}
