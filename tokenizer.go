package minnow

import "strings"

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// StandardTokenizer splits on whitespace. Punctuation handling belongs to
// the char filters that run before it.
type StandardTokenizer struct{}

func NewStandardTokenizer() StandardTokenizer {
	return StandardTokenizer{}
}

func (StandardTokenizer) Tokenize(s string) TokenStream {
	words := strings.Fields(s)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = NewToken(w)
	}
	return NewTokenStream(tokens)
}
