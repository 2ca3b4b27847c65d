package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/glslq/glsl/syntax"
)

// ASTTreeEncoder writes one node per line, indented by depth:
//
//	BinaryExpr "+" 1:1-1:6
//	  Ident "a" 1:1-1:2
type ASTTreeEncoder struct {
	w io.Writer
}

func NewASTTreeEncoder(w io.Writer) *ASTTreeEncoder {
	return &ASTTreeEncoder{w: w}
}

func (e *ASTTreeEncoder) Encode(node syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTTreeEncoder) MarshalText(node syntax.Node) ([]byte, error) {
	var sb strings.Builder
	writeTree(&sb, nodeToJSON(node), 0)
	return []byte(sb.String()), nil
}

func writeTree(sb *strings.Builder, n *astJSONNode, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind)
	if n.Text != "" {
		fmt.Fprintf(sb, " %q", n.Text)
	}
	if n.Span != nil {
		fmt.Fprintf(sb, " %d:%d-%d:%d", n.Span.Start.Line, n.Span.Start.Column, n.Span.End.Line, n.Span.End.Column)
	}
	sb.WriteByte('\n')
	for _, child := range n.Children {
		writeTree(sb, child, depth+1)
	}
}
