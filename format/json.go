package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/glslq/glsl/parser"
)

type TokenJSONEncoder struct {
	w io.Writer
}

func NewTokenJSONEncoder(w io.Writer) *TokenJSONEncoder {
	return &TokenJSONEncoder{w: w}
}

func (e *TokenJSONEncoder) Encode(tokens []parser.Token) error {
	text, err := e.MarshalText(tokens)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokenJSONEncoder) MarshalText(tokens []parser.Token) ([]byte, error) {
	data := make([]jsonToken, len(tokens))
	for i, tok := range tokens {
		data[i] = jsonToken{
			Kind:    tok.Kind.String(),
			Literal: tok.Literal,
			Span: astJSONSpan{
				Start: astJSONPosition{Line: tok.Span.Start.Line, Column: tok.Span.Start.Column},
				End:   astJSONPosition{Line: tok.Span.End.Line, Column: tok.Span.End.Column},
			},
		}
	}
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

type jsonToken struct {
	Kind    string      `json:"kind"`
	Literal string      `json:"literal,omitempty"`
	Span    astJSONSpan `json:"span"`
}
