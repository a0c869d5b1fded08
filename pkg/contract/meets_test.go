package contract_test

import (
	"math"
	"testing"

	"github.com/hiveos/go-canonical/pkg/contract"
)

func TestMeetsSpecString(t *testing.T) {
	spec := contract.FieldSpec{Path: "positioning.statement", Type: contract.FieldTypeString, Required: true, MinLength: 15}

	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "long enough", value: "We serve growth-stage B2B SaaS teams.", want: true},
		{name: "exactly min length", value: "123456789012345", want: true},
		{name: "too short", value: "Too short", want: false},
		{name: "empty", value: "", want: false},
		{name: "wrong type", value: 12.0, want: false},
		{name: "null fails required", value: nil, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := contract.MeetsSpec(tc.value, spec); got != tc.want {
				t.Fatalf("MeetsSpec = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMeetsSpecNullOnlyPassesOptional(t *testing.T) {
	optional := contract.FieldSpec{Path: "p", Type: contract.FieldTypeString}
	required := contract.FieldSpec{Path: "p", Type: contract.FieldTypeString, Required: true}

	if !contract.MeetsSpec(nil, optional) {
		t.Fatal("null should satisfy an optional field")
	}
	if contract.MeetsSpec(nil, required) {
		t.Fatal("null must not satisfy a required field")
	}
}

func TestMeetsSpecVacuousNeverPasses(t *testing.T) {
	// Even with no floor set, "" and [] cannot meet a contract: the strip
	// pass would remove them and a required field would vanish.
	str := contract.FieldSpec{Path: "cadence.frequency", Type: contract.FieldTypeString, Required: true}
	arr := contract.FieldSpec{Path: "themes", Type: contract.FieldTypeArray, Required: true}

	if contract.MeetsSpec("", str) {
		t.Fatal("empty string must not meet a floor-less string contract")
	}
	if contract.MeetsSpec([]any{}, arr) {
		t.Fatal("empty array must not meet a floor-less array contract")
	}
}

func TestMeetsSpecArray(t *testing.T) {
	spec := contract.FieldSpec{Path: "differentiators.bullets", Type: contract.FieldTypeArray, Required: true, MinItems: 2}

	if contract.MeetsSpec([]any{"one"}, spec) {
		t.Fatal("one item should not meet a two-item floor")
	}
	if !contract.MeetsSpec([]any{"one", "two"}, spec) {
		t.Fatal("two items should meet the floor")
	}
	if contract.MeetsSpec("not an array", spec) {
		t.Fatal("wrong shape must fail")
	}
}

func TestMeetsSpecObject(t *testing.T) {
	spec := contract.FieldSpec{Path: "budgetAllocation.model", Type: contract.FieldTypeObject, Required: true}

	if contract.MeetsSpec(map[string]any{}, spec) {
		t.Fatal("zero-key object must fail")
	}
	if !contract.MeetsSpec(map[string]any{"paid": 0.6}, spec) {
		t.Fatal("populated object should pass")
	}
	if contract.MeetsSpec([]any{"x"}, spec) {
		t.Fatal("array must not pass an object contract")
	}
}

func TestMeetsSpecNumber(t *testing.T) {
	spec := contract.FieldSpec{Path: "cadence.postsPerWeek", Type: contract.FieldTypeNumber, Required: true}

	if !contract.MeetsSpec(3.0, spec) {
		t.Fatal("finite float should pass")
	}
	if !contract.MeetsSpec(4, spec) {
		t.Fatal("int should pass")
	}
	if contract.MeetsSpec(math.NaN(), spec) {
		t.Fatal("NaN must fail")
	}
	if contract.MeetsSpec(math.Inf(1), spec) {
		t.Fatal("infinity must fail")
	}
	if contract.MeetsSpec("5", spec) {
		t.Fatal("numeric string must fail")
	}
}

func TestCritical(t *testing.T) {
	cases := []struct {
		name string
		spec contract.FieldSpec
		want bool
	}{
		{name: "required string with floor", spec: contract.FieldSpec{Type: contract.FieldTypeString, Required: true, MinLength: 15}, want: true},
		{name: "required string no floor", spec: contract.FieldSpec{Type: contract.FieldTypeString, Required: true}, want: false},
		{name: "optional string with floor", spec: contract.FieldSpec{Type: contract.FieldTypeString, MinLength: 15}, want: false},
		{name: "required array with floor", spec: contract.FieldSpec{Type: contract.FieldTypeArray, Required: true, MinItems: 2}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.spec.Critical(); got != tc.want {
				t.Fatalf("Critical = %v, want %v", got, tc.want)
			}
		})
	}
}
