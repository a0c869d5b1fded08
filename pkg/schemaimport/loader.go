// Package schemaimport derives entity specifications from JSON Schema
// documents, letting operators define new Lab contracts as schema files
// instead of Go tables. A loaded Document pairs the raw schema with the
// registry metadata the schema format itself cannot express.
package schemaimport

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Document is a JSON Schema contract awaiting conversion into an entity
// spec. The metadata fields may be adjusted after loading and before
// conversion; only EntityType is mandatory.
type Document struct {
	EntityType  string
	Label       string
	GraphKind   string
	RecordTable string

	origin string
	raw    []byte
}

// NewDocument wraps an in-memory schema payload for the given entity type.
func NewDocument(entityType string, raw []byte) (Document, error) {
	if entityType == "" {
		return Document{}, errors.New("schemaimport: entity type is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schemaimport: schema document is empty")
	}
	return Document{
		EntityType: entityType,
		origin:     "inline",
		raw:        append([]byte(nil), raw...),
	}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(entityType string, raw []byte) Document {
	doc, err := NewDocument(entityType, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// LoadFile reads a schema contract from disk. The entity type defaults to
// the file name stem, so "brand.schema.json" imports as "brand"; callers can
// override it on the returned Document before conversion.
func LoadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("schemaimport: read %s: %w", path, err)
	}
	doc, err := NewDocument(typeFromName(path), raw)
	if err != nil {
		return Document{}, fmt.Errorf("schemaimport: load %s: %w", path, err)
	}
	doc.origin = filepath.Clean(path)
	return doc, nil
}

// LoadFS reads a schema contract out of an fs.FS, such as an embedded
// contract set shipped with an operator bundle.
func LoadFS(fsys fs.FS, name string) (Document, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("schemaimport: read %s: %w", name, err)
	}
	doc, err := NewDocument(typeFromName(name), raw)
	if err != nil {
		return Document{}, fmt.Errorf("schemaimport: load %s: %w", name, err)
	}
	doc.origin = name
	return doc, nil
}

// Origin reports where the document was loaded from, for error messages.
func (d Document) Origin() string {
	return d.origin
}

// Raw returns a defensive copy of the schema payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// typeFromName derives an entity type from a schema file name:
// "specs/demand.schema.json" yields "demand".
func typeFromName(name string) string {
	base := path.Base(filepath.ToSlash(name))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSuffix(base, ".schema")
}
