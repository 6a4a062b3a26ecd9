package minnow

// Token is one analyzed word. Term is the indexable form (after token
// filters, typically a stem); Surface is the normalized word as written,
// which the scorer needs for phrase, number and boolean comparisons.
type Token struct {
	Term    string
	Surface string
}

type TokenOption func(*Token)

func NewToken(term string, options ...TokenOption) Token {
	token := Token{Term: term, Surface: term}
	for _, option := range options {
		option(&token)
	}
	return token
}

func setSurface(surface string) TokenOption {
	return func(t *Token) {
		t.Surface = surface
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}

func (ts TokenStream) Surfaces() []string {
	surfaces := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		surfaces[i] = t.Surface
	}
	return surfaces
}
