package format

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/dhamidi/glslq/glsl/syntax"
)

type ASTYAMLEncoder struct {
	w io.Writer
}

func NewASTYAMLEncoder(w io.Writer) *ASTYAMLEncoder {
	return &ASTYAMLEncoder{w: w}
}

func (e *ASTYAMLEncoder) Encode(node syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTYAMLEncoder) MarshalText(node syntax.Node) ([]byte, error) {
	return yaml.Marshal(nodeToJSON(node))
}
