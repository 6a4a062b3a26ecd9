package minnow

import (
	"strings"
	"unicode"
)

type CharFilter interface {
	Filter(string) string
}

// NormalizeCharFilter lowercases its input and removes every rune that is
// neither a word character nor whitespace.
type NormalizeCharFilter struct{}

func NewNormalizeCharFilter() NormalizeCharFilter {
	return NormalizeCharFilter{}
}

func (NormalizeCharFilter) Filter(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MappingCharFilter replaces every occurrence of each key with its value,
// e.g. folding typographic quotes before normalization.
type MappingCharFilter struct {
	mapper map[string]string
}

func NewMappingCharFilter(mapper map[string]string) MappingCharFilter {
	return MappingCharFilter{mapper: mapper}
}

func (c MappingCharFilter) Filter(s string) string {
	for k, v := range c.mapper {
		s = strings.ReplaceAll(s, k, v)
	}
	return s
}
