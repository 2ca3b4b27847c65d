package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/glslq/glsl/parser"
	"github.com/dhamidi/glslq/glsl/syntax"
)

// Encoder serializes a syntax tree.
type Encoder interface {
	Encode(node syntax.Node) error
	MarshalText(node syntax.Node) ([]byte, error)
}

// TokenEncoder serializes a token stream.
type TokenEncoder interface {
	Encode(tokens []parser.Token) error
	MarshalText(tokens []parser.Token) ([]byte, error)
}

// EncoderNames lists the names NewEncoder accepts.
var EncoderNames = []string{"json", "yaml", "tree"}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewASTJSONEncoder(w), nil
	case "yaml":
		return NewASTYAMLEncoder(w), nil
	case "tree":
		return NewASTTreeEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}

func NewTokenEncoder(name string, w io.Writer) (TokenEncoder, error) {
	switch name {
	case "json":
		return NewTokenJSONEncoder(w), nil
	case "line":
		return NewTokenLineEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown token format %q", name)
}
