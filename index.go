package minnow

// InvertedIndex maps a stemmed term to the documents containing it in a
// string field. Buckets share document pointers with the store; a term key
// exists iff its bucket is non-empty.
type InvertedIndex map[string][]*Document

func NewInvertedIndex() InvertedIndex {
	return make(InvertedIndex)
}

// Add indexes every string field of doc through the analyzer.
func (ii InvertedIndex) Add(doc *Document, schema Schema, analyzer Analyzer) {
	for name, ft := range schema {
		if ft != FieldString {
			continue
		}
		text, ok := (*doc)[name].(string)
		if !ok {
			continue
		}
		for _, term := range analyzer.Analyze(text).Terms() {
			bucket := ii[term]
			if containsDoc(bucket, doc) {
				// Don't add the same document twice under one term.
				continue
			}
			ii[term] = append(bucket, doc)
		}
	}
}

// Remove drops every document structurally equal to doc from every bucket
// and deletes buckets that become empty.
func (ii InvertedIndex) Remove(doc Document) {
	for term, bucket := range ii {
		kept := make([]*Document, 0, len(bucket))
		for _, d := range bucket {
			if !(*d).Equal(doc) {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			delete(ii, term)
		} else {
			ii[term] = kept
		}
	}
}

// Candidates returns the set of documents fuzzily reachable from any query
// term: every bucket whose key lies within the edit distance threshold of a
// term is unioned in. This bounds the scoring pass to likely-relevant
// documents instead of the whole store.
func (ii InvertedIndex) Candidates(terms []string, lev *Levenshtein) map[*Document]struct{} {
	set := make(map[*Document]struct{})
	for _, qt := range terms {
		for key, bucket := range ii {
			if lev.Distance(qt, key) < fuzzyThreshold {
				for _, d := range bucket {
					set[d] = struct{}{}
				}
			}
		}
	}
	return set
}

func containsDoc(bucket []*Document, doc *Document) bool {
	for _, d := range bucket {
		if d == doc {
			return true
		}
	}
	return false
}
