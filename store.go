package minnow

// DocumentStore owns the validated documents, in insertion order. The order
// is what makes equal-score ranking ties deterministic.
type DocumentStore struct {
	docs []*Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Add appends a validated document and returns the stored pointer, which
// the inverted index shares.
func (s *DocumentStore) Add(doc Document) *Document {
	d := doc
	s.docs = append(s.docs, &d)
	return &d
}

// Remove drops every stored document structurally equal to doc and reports
// whether anything was removed. Removing an absent document is a no-op.
func (s *DocumentStore) Remove(doc Document) bool {
	kept := make([]*Document, 0, len(s.docs))
	for _, d := range s.docs {
		if !(*d).Equal(doc) {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(s.docs) {
		return false
	}
	s.docs = kept
	return true
}

// All returns the stored documents in insertion order.
func (s *DocumentStore) All() []*Document {
	return s.docs
}

func (s *DocumentStore) Len() int {
	return len(s.docs)
}
