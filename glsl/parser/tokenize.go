package parser

import (
	"iter"
)

// TokenIterator is a lazy token sequence.
type TokenIterator = iter.Seq2[Token, error]

// Tokenize returns the tokens of src without whitespace. Comments are
// included only with WithComments. The sequence ends after the EOF token
// or after the first error, and may be ranged over more than once.
func Tokenize(src []byte, opts ...Option) TokenIterator {
	cfg := newParser(nil, nil, opts)
	return func(yield func(Token, error) bool) {
		lx := NewLexer(src, cfg.file)
		for {
			tok, err := lx.NextToken()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Kind == TokenWhitespace {
				continue
			}
			if (tok.Kind == TokenComment || tok.Kind == TokenLineComment) && !cfg.includeComments {
				continue
			}
			if !yield(tok, nil) {
				return
			}
			if tok.Kind == TokenEOF {
				return
			}
		}
	}
}

// Tokens collects Tokenize into a slice, stopping at the first error.
func Tokens(src []byte, opts ...Option) ([]Token, error) {
	var tokens []Token
	for tok, err := range Tokenize(src, opts...) {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
