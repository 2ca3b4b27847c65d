package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/glslq/glsl/parser"
)

// TokenLineEncoder writes one tab-separated line per token: position,
// kind and the quoted literal.
type TokenLineEncoder struct {
	w io.Writer
}

func NewTokenLineEncoder(w io.Writer) *TokenLineEncoder {
	return &TokenLineEncoder{w: w}
}

func (e *TokenLineEncoder) Encode(tokens []parser.Token) error {
	text, err := e.MarshalText(tokens)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokenLineEncoder) MarshalText(tokens []parser.Token) ([]byte, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%d:%d\t%s\t%s\n",
			tok.Span.Start.Line,
			tok.Span.Start.Column,
			tok.Kind,
			literalField(tok),
		)
	}
	return []byte(sb.String()), nil
}

func literalField(tok parser.Token) string {
	if tok.Literal == "" {
		return "-"
	}
	return strconv.Quote(tok.Literal)
}
