package minnow

import "sort"

// Hit pairs a matched document with its relevance score.
type Hit struct {
	Score    float64
	Document Document
}

type hits []Hit

func (h hits) Len() int           { return len(h) }
func (h hits) Less(i, j int) bool { return h[i].Score > h[j].Score }
func (h hits) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// sortHits orders by score descending. sort.Stable keeps insertion order
// between equal scores.
func sortHits(hs []Hit) {
	sort.Stable(hits(hs))
}

// dedupHits keeps the first, highest-scoring occurrence of each set of
// structurally equal documents.
func dedupHits(hs []Hit) []Hit {
	seen := make(map[string]struct{}, len(hs))
	out := make([]Hit, 0, len(hs))
	for _, h := range hs {
		k := h.Document.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, h)
	}
	return out
}

// sortHitsByField returns a copy of hs lexicographically ordered by the
// named string field.
func sortHitsByField(hs []Hit, field string) []Hit {
	out := make([]Hit, len(hs))
	copy(out, hs)
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].Document[field].(string)
		b, _ := out[j].Document[field].(string)
		return a < b
	})
	return out
}
