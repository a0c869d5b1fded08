package registry

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hiveos/go-canonical/pkg/contract"
)

type yamlDocument struct {
	Entities []yamlEntity `yaml:"entities"`
}

type yamlEntity struct {
	Type        string      `yaml:"type"`
	Label       string      `yaml:"label"`
	GraphKind   string      `yaml:"graphKind"`
	RecordTable string      `yaml:"recordTable"`
	Fields      []yamlField `yaml:"fields"`
}

type yamlField struct {
	Path      string `yaml:"path"`
	Label     string `yaml:"label"`
	Type      string `yaml:"type"`
	Required  bool   `yaml:"required"`
	MinLength int    `yaml:"minLength"`
	MinItems  int    `yaml:"minItems"`
}

// ParseEntitySpecs decodes entity specs from a YAML document of the form:
//
//	entities:
//	  - type: brand
//	    label: Brand Lab
//	    graphKind: brand_foundation
//	    recordTable: Brand Labs
//	    fields:
//	      - path: positioning.statement
//	        label: Positioning Statement
//	        type: string
//	        required: true
//	        minLength: 15
//
// The result is validated the same way New validates static tables, so a
// malformed document fails here rather than at first lookup.
func ParseEntitySpecs(raw []byte) ([]contract.EntitySpec, error) {
	if len(raw) == 0 {
		return nil, errors.New("registry: yaml document is empty")
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("registry: decode yaml: %w", err)
	}
	if len(doc.Entities) == 0 {
		return nil, errors.New("registry: yaml document declares no entities")
	}

	specs := make([]contract.EntitySpec, 0, len(doc.Entities))
	for _, entity := range doc.Entities {
		fields := make([]contract.FieldSpec, 0, len(entity.Fields))
		for _, field := range entity.Fields {
			fields = append(fields, contract.FieldSpec{
				Path:      field.Path,
				Label:     field.Label,
				Type:      contract.FieldType(field.Type),
				Required:  field.Required,
				MinLength: field.MinLength,
				MinItems:  field.MinItems,
			})
		}
		specs = append(specs, contract.EntitySpec{
			Type:        entity.Type,
			Label:       entity.Label,
			GraphKind:   entity.GraphKind,
			RecordTable: entity.RecordTable,
			Fields:      fields,
		})
	}

	// Validate through the same gate as static construction.
	if _, err := New(specs...); err != nil {
		return nil, err
	}
	return specs, nil
}
