package schemaimport_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hiveos/go-canonical/pkg/contract"
	"github.com/hiveos/go-canonical/pkg/registry"
	"github.com/hiveos/go-canonical/pkg/schemaimport"
)

const referralSchema = `{
  "type": "object",
  "required": ["program"],
  "properties": {
    "program": {
      "type": "object",
      "required": ["summary", "incentives"],
      "properties": {
        "summary": {
          "title": "Program Summary",
          "type": "string",
          "minLength": 20
        },
        "incentives": {
          "type": "array",
          "minItems": 2
        },
        "targetCpa": {
          "type": "number"
        }
      }
    },
    "tracking": {
      "type": "object"
    }
  }
}`

func TestEntitySpecFromSchema(t *testing.T) {
	doc := schemaimport.MustNewDocument("referral", []byte(referralSchema))
	doc.Label = "Referral Lab"
	doc.GraphKind = "referral_engine"
	doc.RecordTable = "Referral Labs"

	spec, err := schemaimport.EntitySpecFromSchema(doc)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	want := contract.EntitySpec{
		Type:        "referral",
		Label:       "Referral Lab",
		GraphKind:   "referral_engine",
		RecordTable: "Referral Labs",
		Fields: []contract.FieldSpec{
			{Path: "program.incentives", Label: "Program Incentives", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
			{Path: "program.summary", Label: "Program Summary", Type: contract.FieldTypeString, Required: true, MinLength: 20},
			{Path: "program.targetCpa", Label: "Target Cpa", Type: contract.FieldTypeNumber},
			{Path: "tracking", Label: "Tracking", Type: contract.FieldTypeObject},
		},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	// The derived spec must register cleanly alongside the builtins.
	if _, err := registry.New(append(registry.Builtin(), spec)...); err != nil {
		t.Fatalf("register derived spec: %v", err)
	}
}

func TestEntitySpecFromSchemaDefaultsLabel(t *testing.T) {
	doc := schemaimport.MustNewDocument("partner_marketing", []byte(`{
		"type": "object",
		"properties": {"northStarMetric": {"type": "string"}}
	}`))

	spec, err := schemaimport.EntitySpecFromSchema(doc)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if spec.Label != "Partner Marketing" {
		t.Fatalf("label = %q, want humanized type", spec.Label)
	}
	if spec.Fields[0].Label != "North Star Metric" {
		t.Fatalf("field label = %q, want humanized name", spec.Fields[0].Label)
	}
}

func TestEntitySpecFromSchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  schemaimport.Document
	}{
		{name: "missing type tag", doc: schemaimport.Document{}},
		{name: "not json", doc: schemaimport.MustNewDocument("x", []byte(`not json`))},
		{name: "root not object", doc: schemaimport.MustNewDocument("x", []byte(`{"type": "string"}`))},
		{name: "no properties", doc: schemaimport.MustNewDocument("x", []byte(`{"type": "object"}`))},
		{name: "boolean property", doc: schemaimport.MustNewDocument("x", []byte(`{"type": "object", "properties": {"flag": {"type": "boolean"}}}`))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := schemaimport.EntitySpecFromSchema(tc.doc); err == nil {
				t.Fatal("expected import error")
			}
		})
	}
}
