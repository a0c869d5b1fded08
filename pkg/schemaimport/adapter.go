package schemaimport

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/hiveos/go-canonical/pkg/contract"
)

// EntitySpecFromSchema derives a field contract from a loaded schema
// document. Object properties are flattened into dot paths; string and array
// leaves carry their minLength/minItems floors, required membership follows
// the enclosing object's required list, and titles become labels (falling
// back to a humanized property name). Types outside the contract model
// (boolean, untyped) are rejected so a schema mismatch surfaces at import
// time rather than as silent nulls during enforcement.
func EntitySpecFromSchema(doc Document) (contract.EntitySpec, error) {
	if doc.EntityType == "" {
		return contract.EntitySpec{}, fmt.Errorf("schemaimport: entity type is required (%s)", doc.Origin())
	}

	var schema openapi3.Schema
	if err := json.Unmarshal(doc.Raw(), &schema); err != nil {
		return contract.EntitySpec{}, fmt.Errorf("schemaimport: decode %s: %w", doc.Origin(), err)
	}
	if !schemaIs(&schema, openapi3.TypeObject) {
		return contract.EntitySpec{}, fmt.Errorf("schemaimport: %s: root schema must be an object", doc.Origin())
	}

	fields, err := fieldsFromObject("", &schema, doc.Origin())
	if err != nil {
		return contract.EntitySpec{}, err
	}
	if len(fields) == 0 {
		return contract.EntitySpec{}, fmt.Errorf("schemaimport: %s: schema declares no usable properties", doc.Origin())
	}

	label := doc.Label
	if label == "" {
		label = humanize(doc.EntityType)
	}
	return contract.EntitySpec{
		Type:        doc.EntityType,
		Label:       label,
		GraphKind:   doc.GraphKind,
		RecordTable: doc.RecordTable,
		Fields:      fields,
	}, nil
}

func fieldsFromObject(prefix string, schema *openapi3.Schema, location string) ([]contract.FieldSpec, error) {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []contract.FieldSpec
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		switch {
		case schemaIs(prop, openapi3.TypeObject) && len(prop.Properties) > 0:
			nested, err := fieldsFromObject(path, prop, location)
			if err != nil {
				return nil, err
			}
			fields = append(fields, nested...)
		case schemaIs(prop, openapi3.TypeObject):
			fields = append(fields, contract.FieldSpec{
				Path:     path,
				Label:    labelFor(prop, name),
				Type:     contract.FieldTypeObject,
				Required: required[name],
			})
		case schemaIs(prop, openapi3.TypeString):
			fields = append(fields, contract.FieldSpec{
				Path:      path,
				Label:     labelFor(prop, name),
				Type:      contract.FieldTypeString,
				Required:  required[name],
				MinLength: int(prop.MinLength),
			})
		case schemaIs(prop, openapi3.TypeArray):
			fields = append(fields, contract.FieldSpec{
				Path:     path,
				Label:    labelFor(prop, name),
				Type:     contract.FieldTypeArray,
				Required: required[name],
				MinItems: int(prop.MinItems),
			})
		case schemaIs(prop, openapi3.TypeNumber), schemaIs(prop, openapi3.TypeInteger):
			fields = append(fields, contract.FieldSpec{
				Path:     path,
				Label:    labelFor(prop, name),
				Type:     contract.FieldTypeNumber,
				Required: required[name],
			})
		default:
			return nil, fmt.Errorf("schemaimport: %s: property %q has no contract-compatible type", location, path)
		}
	}
	return fields, nil
}

func schemaIs(schema *openapi3.Schema, typ string) bool {
	return schema.Type != nil && schema.Type.Is(typ)
}

func labelFor(schema *openapi3.Schema, name string) string {
	if title := strings.TrimSpace(schema.Title); title != "" {
		return title
	}
	return humanize(name)
}

// humanize converts camelCase or snake_case identifiers into title-cased
// display labels.
func humanize(name string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
