package contract

// FieldType is the enum of leaf value kinds a field contract can demand.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
	FieldTypeNumber FieldType = "number"
)

// KnownFieldType reports whether the supplied type tag is one of the four
// contract kinds.
func KnownFieldType(t FieldType) bool {
	switch t {
	case FieldTypeString, FieldTypeArray, FieldTypeObject, FieldTypeNumber:
		return true
	default:
		return false
	}
}

// FieldSpec describes one leaf value a canonical object must contain. Struct
// fields are annotated so spec tables serialise directly into API payloads
// and golden snapshots.
//
// A required field must, after enforcement, be present in the output either
// as a spec-satisfying value or as an explicit null, never absent, empty, or
// a vacuous container. MinLength and MinItems set the bar for a value to
// count as meaningful rather than merely present.
type FieldSpec struct {
	Path      string    `json:"path"`
	Label     string    `json:"label"`
	Type      FieldType `json:"type"`
	Required  bool      `json:"required"`
	MinLength int       `json:"minLength,omitempty"`
	MinItems  int       `json:"minItems,omitempty"`
}

// Critical reports whether an unmet requirement on this field should surface
// as an operator-facing error rather than a silent null. By convention the
// meaningful-prose fields (required strings with a length floor) are the ones
// worth flagging.
func (f FieldSpec) Critical() bool {
	return f.Required && f.Type == FieldTypeString && f.MinLength > 0
}

// EntitySpec is the immutable field contract for one entity type, plus the
// identifiers of the two downstream systems its confirmed output feeds:
// GraphKind names the context-graph node kind, RecordTable the system-of-
// record table.
type EntitySpec struct {
	Type        string      `json:"type"`
	Label       string      `json:"label"`
	GraphKind   string      `json:"graphKind"`
	RecordTable string      `json:"recordTable"`
	Fields      []FieldSpec `json:"fields"`
}

// RequiredPaths returns the paths of the required fields in declaration
// order.
func (e EntitySpec) RequiredPaths() []string {
	out := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		if field.Required {
			out = append(out, field.Path)
		}
	}
	return out
}
