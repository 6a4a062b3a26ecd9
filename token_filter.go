package minnow

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		lower := strings.ToLower(token.Term)
		r[i] = NewToken(lower, setSurface(strings.ToLower(token.Surface)))
	}
	return NewTokenStream(r)
}

type StopWordFilter struct {
	stopWords []string
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	return StopWordFilter{
		stopWords: stopWords,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	stopwords := make(map[string]struct{})
	for _, w := range f.stopWords {
		stopwords[w] = struct{}{}
	}
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := stopwords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// StemFilter reduces terms with the built-in suffix rule set (see Stem).
// The surface form is kept untouched.
type StemFilter struct{}

func NewStemFilter() StemFilter {
	return StemFilter{}
}

func (f StemFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(Stem(token.Term), setSurface(token.Surface))
	}
	return NewTokenStream(r)
}

// SnowballFilter is a drop-in alternative to StemFilter backed by the
// snowball English stemmer.
type SnowballFilter struct{}

func NewSnowballFilter() SnowballFilter {
	return SnowballFilter{}
}

func (f SnowballFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		stemmed := english.Stem(token.Term, false)
		r[i] = NewToken(stemmed, setSurface(token.Surface))
	}
	return NewTokenStream(r)
}
