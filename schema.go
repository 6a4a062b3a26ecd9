package minnow

import "fmt"

type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
)

// Schema declares field name to type. It is fixed at engine construction;
// every accepted document carries exactly these fields with these types.
type Schema map[string]FieldType

func (s Schema) validate() error {
	if len(s) == 0 {
		return &ConfigurationError{Reason: "schema must declare at least one field"}
	}
	for name, ft := range s {
		if name == "" {
			return &ConfigurationError{Reason: "field name must not be empty"}
		}
		switch ft {
		case FieldString, FieldNumber, FieldBoolean:
		default:
			return &ConfigurationError{Reason: fmt.Sprintf("field %q: unknown type %q", name, ft)}
		}
	}
	return nil
}

const (
	minFieldWeight = 1.0
	maxFieldWeight = 5.0
)

// Field is one schema entry with its relevance weight.
type Field struct {
	Name   string
	Weight float64
}

func NewField(name string) *Field {
	return &Field{Name: name, Weight: minFieldWeight}
}

// clampWeight forces w into [minFieldWeight, maxFieldWeight]. The second
// return reports whether a correction was applied.
func clampWeight(w float64) (float64, bool) {
	if w < minFieldWeight {
		return minFieldWeight, true
	}
	if w > maxFieldWeight {
		return maxFieldWeight, true
	}
	return w, false
}
