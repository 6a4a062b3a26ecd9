package minnow

import (
	"encoding/json"
	"fmt"
)

// Document is one record matching the engine's schema. Documents are value
// objects: there is no identity field, equality is structural.
type Document map[string]any

// validate checks d against the schema and returns a coerced copy for the
// store to own. Integer values of number fields become float64 so that
// structural equality stays consistent across call sites.
func (d Document) validate(schema Schema) (Document, error) {
	for name := range d {
		if _, ok := schema[name]; !ok {
			return nil, &ValidationError{Field: name, Reason: "not declared in schema"}
		}
	}
	out := make(Document, len(schema))
	for name, ft := range schema {
		v, ok := d[name]
		if !ok {
			return nil, &ValidationError{Field: name, Reason: "missing"}
		}
		switch ft {
		case FieldString:
			s, ok := v.(string)
			if !ok {
				return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("want string, got %T", v)}
			}
			out[name] = s
		case FieldNumber:
			n, ok := toFloat(v)
			if !ok {
				return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("want number, got %T", v)}
			}
			out[name] = n
		case FieldBoolean:
			b, ok := v.(bool)
			if !ok {
				return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("want boolean, got %T", v)}
			}
			out[name] = b
		}
	}
	return out, nil
}

// Equal reports structural equality: identical key sets with identical
// values, independent of order. Values are schema scalars after validation.
func (d Document) Equal(o Document) bool {
	if len(d) != len(o) {
		return false
	}
	for k, v := range d {
		ov, ok := o[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// key is a canonical serialization, used to deduplicate structurally equal
// documents. JSON escapes values and writes map keys in sorted order, so two
// documents share a key iff they are structurally equal; naive separator
// joining would collide on values containing the separators.
func (d Document) key() string {
	// Values are schema scalars after validation, so marshaling cannot fail.
	b, _ := json.Marshal(d)
	return string(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
