package minnow

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Batched mutations are processed in fixed-size groups to bound per-call
// work; semantics are identical to one-at-a-time processing.
const batchSize = 100

type Option func(*Engine)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithAnalyzer replaces the text pipeline used for indexing, scoring and
// query analysis.
func WithAnalyzer(a Analyzer) Option {
	return func(e *Engine) {
		e.analyzer = a
	}
}

// WithStopWords drops the given words from the default pipeline before
// stemming.
func WithStopWords(words ...string) Option {
	return func(e *Engine) {
		e.analyzer = NewAnalyzer(
			[]CharFilter{NewNormalizeCharFilter()},
			NewStandardTokenizer(),
			[]TokenFilter{NewStopWordFilter(words), NewStemFilter()},
		)
	}
}

// Engine is an embeddable, schema-typed, in-memory fuzzy search engine.
// Every operation runs to completion before returning; a single mutex
// serializes public calls, nothing finer-grained is guaranteed.
type Engine struct {
	mu sync.Mutex

	schema   Schema
	fields   map[string]*Field
	analyzer Analyzer

	store  *DocumentStore
	index  InvertedIndex
	lev    *Levenshtein
	scorer *Scorer

	queryCache map[queryCacheKey][]Hit
	logger     *slog.Logger
}

// queryCacheKey is the canonical form of (query, parameters minus the
// score filter). Entries are cached before score filtering so one entry can
// serve the same query under different thresholds.
type queryCacheKey struct {
	query  string
	params string
}

// New constructs an engine for the given schema.
func New(schema Schema, opts ...Option) (*Engine, error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}
	s := make(Schema, len(schema))
	fields := make(map[string]*Field, len(schema))
	for name, ft := range schema {
		s[name] = ft
		fields[name] = NewField(name)
	}
	e := &Engine{
		schema:     s,
		fields:     fields,
		analyzer:   NewDefaultAnalyzer(),
		store:      NewDocumentStore(),
		index:      NewInvertedIndex(),
		lev:        NewLevenshtein(),
		queryCache: make(map[queryCacheKey][]Hit),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.scorer = NewScorer(e.schema, e.analyzer, e.lev)
	return e, nil
}

// SetFieldWeight sets a field's default relevance weight, clamped into
// [1,5]. An out-of-range weight is corrected and logged, never rejected.
func (e *Engine) SetFieldWeight(name string, weight float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := e.fields[name]
	if !ok {
		return &ParameterError{Param: "fields", Reason: fmt.Sprintf("unknown field %q", name)}
	}
	w, clamped := clampWeight(weight)
	if clamped {
		e.logger.Warn("field weight clamped", "field", name, "given", weight, "weight", w)
	}
	f.Weight = w
	e.invalidateQueryCache()
	return nil
}

// AddDoc validates doc against the schema and inserts a copy into the store
// and the inverted index. A document that does not match the schema is
// rejected with a ValidationError before anything is mutated.
func (e *Engine) AddDoc(doc Document) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addDoc(doc)
}

// AddDocs adds docs in call order, in groups of batchSize. A rejected
// document stops the call; documents before it stay committed and the error
// names the offending position.
func (e *Engine) AddDocs(docs []Document) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for start := 0; start < len(docs); start += batchSize {
		for i, doc := range docs[start:min(start+batchSize, len(docs))] {
			if err := e.addDoc(doc); err != nil {
				return fmt.Errorf("document %d: %w", start+i, err)
			}
		}
	}
	return nil
}

func (e *Engine) addDoc(doc Document) error {
	validated, err := doc.validate(e.schema)
	if err != nil {
		return err
	}
	stored := e.store.Add(validated)
	e.index.Add(stored, e.schema, e.analyzer)
	e.invalidateQueryCache()
	return nil
}

// RemoveDoc removes every stored document structurally equal to doc, from
// the store and from every index bucket. Removing an absent document is a
// no-op.
func (e *Engine) RemoveDoc(doc Document) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeDoc(doc)
}

// RemoveDocs removes docs in call order, in groups of batchSize.
func (e *Engine) RemoveDocs(docs []Document) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for start := 0; start < len(docs); start += batchSize {
		for _, doc := range docs[start:min(start+batchSize, len(docs))] {
			e.removeDoc(doc)
		}
	}
}

func (e *Engine) removeDoc(doc Document) {
	target, err := doc.validate(e.schema)
	if err != nil {
		// An invalid document cannot equal anything in the store.
		return
	}
	if !e.store.Remove(target) {
		return
	}
	e.index.Remove(target)
	e.invalidateQueryCache()
}

// Cached rankings embed scores and weights, so any mutation drops them.
func (e *Engine) invalidateQueryCache() {
	if len(e.queryCache) > 0 {
		e.queryCache = make(map[queryCacheKey][]Hit)
	}
}

// SearchResult is the outcome of one search: the ranked hits after all
// filtering, their count, and the elapsed wall time.
type SearchResult struct {
	Elapsed time.Duration
	Count   int
	Hits    []Hit

	schema Schema
}

// SortBy returns the hits lexicographically ordered by the named string
// field.
func (r *SearchResult) SortBy(field string) ([]Hit, error) {
	if r.schema[field] != FieldString {
		return nil, &ParameterError{Param: "sortBy", Reason: fmt.Sprintf("field %q is not a string field", field)}
	}
	return sortHitsByField(r.Hits, field), nil
}

// Search runs a free-text query. Parameters are validated fully before any
// evaluation; the ranked, deduplicated hit list is cached before the score
// post-filter is applied.
func (e *Engine) Search(query string, params *SearchParams) (*SearchResult, error) {
	start := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	if params == nil {
		params = &SearchParams{}
	}
	weights, err := e.resolveWeights(params.Fields)
	if err != nil {
		return nil, err
	}
	if err := validateWhere(e.schema, params.Where); err != nil {
		return nil, err
	}
	if err := validateScoreFilter(params.Score); err != nil {
		return nil, err
	}

	key, err := e.cacheKey(query, params)
	if err != nil {
		return nil, err
	}
	ranked, ok := e.queryCache[key]
	if !ok {
		ranked = e.rank(query, params.Where, weights)
		e.queryCache[key] = ranked
	}

	hits, err := FilterHitsByScore(ranked, params.Score)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Elapsed: time.Since(start),
		Count:   len(hits),
		Hits:    hits,
		schema:  e.schema,
	}, nil
}

func (e *Engine) rank(query string, where Where, weights map[string]float64) []Hit {
	tokens := e.analyzer.Analyze(query)
	candidates := e.index.Candidates(tokens.Terms(), e.lev)
	scored := make([]Hit, 0, len(candidates))
	// Walking the store keeps equal-score ties stable by insertion order.
	for _, doc := range e.store.All() {
		if _, ok := candidates[doc]; !ok {
			continue
		}
		if len(where) > 0 && !matchWhere(*doc, e.schema, where) {
			continue
		}
		if s := e.scorer.Score(*doc, tokens, weights); s > 0 {
			scored = append(scored, Hit{Score: s, Document: *doc})
		}
	}
	sortHits(scored)
	return dedupHits(scored)
}

func (e *Engine) resolveWeights(overrides []FieldWeight) (map[string]float64, error) {
	weights := make(map[string]float64, len(e.fields))
	for name, f := range e.fields {
		weights[name] = f.Weight
	}
	for _, fw := range overrides {
		if _, ok := e.schema[fw.Name]; !ok {
			return nil, &ParameterError{Param: "fields", Reason: fmt.Sprintf("unknown field %q", fw.Name)}
		}
		w, clamped := clampWeight(fw.Weight)
		if clamped {
			e.logger.Warn("field weight clamped", "field", fw.Name, "given", fw.Weight, "weight", w)
		}
		weights[fw.Name] = w
	}
	return weights, nil
}

func (e *Engine) cacheKey(query string, params *SearchParams) (queryCacheKey, error) {
	base := struct {
		Fields []FieldWeight `json:"fields,omitempty"`
		Where  Where         `json:"where,omitempty"`
	}{params.Fields, params.Where}
	// Map keys marshal in sorted order, which makes the serialization
	// canonical.
	b, err := json.Marshal(base)
	if err != nil {
		return queryCacheKey{}, &ParameterError{Param: "where", Reason: "not serializable: " + err.Error()}
	}
	return queryCacheKey{query: query, params: string(b)}, nil
}
