package minnow

import (
	"fmt"
	"strings"
)

// FieldWeight overrides one field's relevance weight for a single search.
// Weights outside [1,5] are clamped, never rejected.
type FieldWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Condition constrains one field, e.g. {"gte": 1900} or {"inc": "gatsby"}.
// Recognized keys: lt, lte, gt, gte, bt, eq, inc.
type Condition map[string]any

// Where maps a field name to either a Condition or, for boolean fields, the
// literal bool the field must equal. Every condition must hold.
type Where map[string]any

// ScoreFilter post-filters hits by score. Recognized keys: gt, lt, eq;
// thresholds must lie strictly inside (0,1).
type ScoreFilter map[string]float64

// SearchParams carries the optional search parameters. The struct is typed,
// so unknown top-level keys are impossible by construction; condition keys
// inside Where and ScoreFilter are validated at search time.
type SearchParams struct {
	Fields []FieldWeight `json:"fields,omitempty"`
	Where  Where         `json:"where,omitempty"`
	Score  ScoreFilter   `json:"score,omitempty"`
}

func validateWhere(schema Schema, where Where) error {
	for field, raw := range where {
		ft, ok := schema[field]
		if !ok {
			return &ParameterError{Param: "where", Reason: fmt.Sprintf("unknown field %q", field)}
		}
		if ft == FieldBoolean {
			if _, ok := raw.(bool); !ok {
				return &TypeMismatchError{Field: field, Want: FieldBoolean, Got: raw}
			}
			continue
		}
		cond, ok := toCondition(raw)
		if !ok {
			return &ParameterError{Param: "where", Reason: fmt.Sprintf("field %q: condition must be an object", field)}
		}
		for key, operand := range cond {
			switch key {
			case "lt", "lte", "gt", "gte", "eq":
				if err := checkOperand(field, ft, operand); err != nil {
					return err
				}
			case "bt":
				lo, hi, ok := btBounds(operand)
				if !ok {
					return &ParameterError{Param: "where", Reason: fmt.Sprintf("field %q: bt takes a two-element [min,max]", field)}
				}
				if err := checkOperand(field, ft, lo); err != nil {
					return err
				}
				if err := checkOperand(field, ft, hi); err != nil {
					return err
				}
			case "inc":
				if ft != FieldString {
					return &ParameterError{Param: "where", Reason: fmt.Sprintf("field %q: inc requires a string field", field)}
				}
				if _, ok := operand.(string); !ok {
					return &TypeMismatchError{Field: field, Want: FieldString, Got: operand}
				}
			default:
				return &ParameterError{Param: "where", Reason: fmt.Sprintf("field %q: unknown condition %q", field, key)}
			}
		}
	}
	return nil
}

// matchWhere evaluates an already validated where clause against a stored
// document.
func matchWhere(doc Document, schema Schema, where Where) bool {
	for field, raw := range where {
		switch schema[field] {
		case FieldBoolean:
			if doc[field] != raw.(bool) {
				return false
			}
		case FieldNumber:
			cond, _ := toCondition(raw)
			n := doc[field].(float64)
			for key, operand := range cond {
				if !matchNumber(n, key, operand) {
					return false
				}
			}
		case FieldString:
			cond, _ := toCondition(raw)
			s := doc[field].(string)
			for key, operand := range cond {
				if !matchString(s, key, operand) {
					return false
				}
			}
		}
	}
	return true
}

func matchNumber(n float64, key string, operand any) bool {
	switch key {
	case "bt":
		lo, hi, _ := btBounds(operand)
		lower, _ := toFloat(lo)
		upper, _ := toFloat(hi)
		return n >= lower && n <= upper
	}
	o, _ := toFloat(operand)
	switch key {
	case "lt":
		return n < o
	case "lte":
		return n <= o
	case "gt":
		return n > o
	case "gte":
		return n >= o
	case "eq":
		return n == o
	}
	return false
}

func matchString(s, key string, operand any) bool {
	if key == "bt" {
		lo, hi, _ := btBounds(operand)
		return s >= lo.(string) && s <= hi.(string)
	}
	o := operand.(string)
	switch key {
	case "lt":
		return s < o
	case "lte":
		return s <= o
	case "gt":
		return s > o
	case "gte":
		return s >= o
	case "eq":
		return s == o
	case "inc":
		return strings.Contains(s, o)
	}
	return false
}

func checkOperand(field string, ft FieldType, operand any) error {
	switch ft {
	case FieldNumber:
		if _, ok := toFloat(operand); !ok {
			return &TypeMismatchError{Field: field, Want: FieldNumber, Got: operand}
		}
	case FieldString:
		if _, ok := operand.(string); !ok {
			return &TypeMismatchError{Field: field, Want: FieldString, Got: operand}
		}
	}
	return nil
}

func btBounds(operand any) (lo, hi any, ok bool) {
	switch r := operand.(type) {
	case []any:
		if len(r) == 2 {
			return r[0], r[1], true
		}
	case []float64:
		if len(r) == 2 {
			return r[0], r[1], true
		}
	case []int:
		if len(r) == 2 {
			return r[0], r[1], true
		}
	case []string:
		if len(r) == 2 {
			return r[0], r[1], true
		}
	}
	return nil, nil, false
}

func toCondition(raw any) (Condition, bool) {
	switch c := raw.(type) {
	case Condition:
		return c, true
	case map[string]any:
		return c, true
	}
	return nil, false
}

func validateScoreFilter(conditions ScoreFilter) error {
	for key, threshold := range conditions {
		switch key {
		case "gt", "lt", "eq":
		default:
			return &ParameterError{Param: "score", Reason: fmt.Sprintf("unknown condition %q", key)}
		}
		if threshold <= 0 || threshold >= 1 {
			return &ParameterError{Param: "score", Reason: fmt.Sprintf("%s threshold %v outside (0,1)", key, threshold)}
		}
	}
	return nil
}

// FilterHitsByScore applies a score post-filter to any previously obtained
// hit list. Every provided condition must hold for a hit to survive.
func FilterHitsByScore(hs []Hit, conditions ScoreFilter) ([]Hit, error) {
	if err := validateScoreFilter(conditions); err != nil {
		return nil, err
	}
	out := make([]Hit, 0, len(hs))
	for _, h := range hs {
		if matchScore(h.Score, conditions) {
			out = append(out, h)
		}
	}
	return out, nil
}

func matchScore(score float64, conditions ScoreFilter) bool {
	for key, threshold := range conditions {
		switch key {
		case "gt":
			if score <= threshold {
				return false
			}
		case "lt":
			if score >= threshold {
				return false
			}
		case "eq":
			if score != threshold {
				return false
			}
		}
	}
	return true
}
