package minnow

import (
	"strconv"
	"strings"
)

// phraseBoost rewards contiguous multi-word matches over isolated word
// overlap.
const phraseBoost = 5

// Scorer computes the relevance of a (document, query) pair from the field
// types and weights.
type Scorer struct {
	schema   Schema
	analyzer Analyzer
	lev      *Levenshtein
}

func NewScorer(schema Schema, analyzer Analyzer, lev *Levenshtein) *Scorer {
	return &Scorer{
		schema:   schema,
		analyzer: analyzer,
		lev:      lev,
	}
}

// Score sums the contribution of every field. A total of zero means the
// document is not a match.
func (s *Scorer) Score(doc Document, query TokenStream, weights map[string]float64) float64 {
	var total float64
	for name, ft := range s.schema {
		v, ok := doc[name]
		if !ok {
			continue
		}
		w := weights[name]
		switch ft {
		case FieldString:
			text, ok := v.(string)
			if !ok {
				continue
			}
			total += s.scoreText(text, query, w)
		case FieldNumber:
			n, ok := v.(float64)
			if !ok {
				continue
			}
			for _, surface := range query.Surfaces() {
				if q, err := strconv.ParseFloat(surface, 64); err == nil && q == n {
					total += w
				}
			}
		case FieldBoolean:
			b, ok := v.(bool)
			if !ok {
				continue
			}
			for _, surface := range query.Surfaces() {
				if (surface == "true" && b) || (surface == "false" && !b) {
					total += w
				}
			}
		}
	}
	return total
}

func (s *Scorer) scoreText(text string, query TokenStream, weight float64) float64 {
	field := s.analyzer.Analyze(text)
	var score float64

	// Phrase pass: slide a query-sized window over the normalized field
	// text; a fuzzy hit advances the window past the matched span.
	if query.Size() > 1 {
		phrase := []rune(strings.Join(query.Surfaces(), " "))
		flat := []rune(strings.Join(field.Surfaces(), " "))
		for i := 0; i+len(phrase) <= len(flat); {
			d := s.lev.Distance(string(flat[i:i+len(phrase)]), string(phrase))
			if d < fuzzyThreshold {
				score += weight * phraseBoost / float64(d+1)
				i += len(phrase)
			} else {
				i++
			}
		}
	}

	// Word pass: every (query term, field term) pair within the distance
	// threshold contributes.
	for _, ft := range field.Terms() {
		for _, qt := range query.Terms() {
			if d := s.lev.Distance(qt, ft); d < fuzzyThreshold {
				score += weight / float64(d+1)
			}
		}
	}
	return score
}
