package minnow

import "fmt"

// ConfigurationError reports a malformed schema at engine construction.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s", e.Reason)
}

// ValidationError reports a document that does not match the schema.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("document validation: %s", e.Reason)
	}
	return fmt.Sprintf("document validation: field %q: %s", e.Field, e.Reason)
}

// ParameterError reports an invalid search parameter: an unknown field
// reference, an unknown where/score condition key, or an out-of-range
// score threshold.
type ParameterError struct {
	Param  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Param, e.Reason)
}

// TypeMismatchError reports a condition operand whose type does not match
// the declared type of the field it is applied to.
type TypeMismatchError struct {
	Field string
	Want  FieldType
	Got   any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: condition value %v does not match declared type %s", e.Field, e.Got, e.Want)
}
