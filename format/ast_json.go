package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/glslq/glsl/syntax"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node syntax.Node) ([]byte, error) {
	text, err := json.MarshalIndent(nodeToJSON(node), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

// astJSONNode is the serialized form shared by the JSON, YAML and tree
// encoders. Text carries the node's own payload: a name, an operator, a
// literal, a type or a directive line.
type astJSONNode struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Span     *astJSONSpan   `json:"span,omitempty" yaml:"span,omitempty"`
	Children []*astJSONNode `json:"children,omitempty" yaml:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start" yaml:"start"`
	End   astJSONPosition `json:"end" yaml:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func nodeToJSON(n syntax.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind: nodeKind(n),
		Text: nodeText(n),
	}

	if span := n.Pos(); !span.IsZero() {
		jn.Span = &astJSONSpan{
			Start: astJSONPosition{Line: span.Start.Line, Column: span.Start.Column},
			End:   astJSONPosition{Line: span.End.Line, Column: span.End.Column},
		}
	}

	for _, child := range directChildren(n) {
		jn.Children = append(jn.Children, nodeToJSON(child))
	}
	return jn
}

func nodeKind(n syntax.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*syntax.")
}

// childCollector records the nodes one level below root.
type childCollector struct {
	root     syntax.Node
	children []syntax.Node
}

func (c *childCollector) Visit(n syntax.Node) syntax.Visitor {
	if n == nil {
		return nil
	}
	if n == c.root {
		return c
	}
	c.children = append(c.children, n)
	return nil
}

func directChildren(n syntax.Node) []syntax.Node {
	c := &childCollector{root: n}
	syntax.Walk(c, n)
	return c.children
}

func nodeText(n syntax.Node) string {
	switch n := n.(type) {
	case *syntax.FunctionPrototype:
		return n.Name
	case *syntax.ParamDecl:
		return n.Name
	case *syntax.Declarator:
		return n.Name
	case *syntax.PrecisionDecl:
		return n.Precision.String()
	case *syntax.BlockDecl:
		return n.Name
	case *syntax.QualifierDecl:
		return strings.Join(n.Names, ", ")
	case *syntax.Preprocessor:
		return n.Text
	case *syntax.BuiltinType:
		return n.Type.String()
	case *syntax.TypeName:
		return n.Name
	case *syntax.StructSpecifier:
		return n.Name
	case *syntax.ArrayedIdent:
		return n.Name
	case *syntax.StorageQualifier:
		if len(n.TypeNames) > 0 {
			return n.Storage.String() + "(" + strings.Join(n.TypeNames, ", ") + ")"
		}
		return n.Storage.String()
	case *syntax.LayoutID:
		return n.Name
	case *syntax.PrecisionQualifier:
		return n.Precision.String()
	case *syntax.InterpolationQualifier:
		return n.Interpolation.String()
	case *syntax.InvariantQualifier:
		return "invariant"
	case *syntax.PreciseQualifier:
		return "precise"
	case *syntax.CaseLabel:
		if n.Value == nil {
			return "default"
		}
		return "case"
	case *syntax.JumpStmt:
		return n.Kind.String()
	case *syntax.DeclCondition:
		return n.Name
	case *syntax.Ident:
		return n.Name
	case syntax.Literal:
		return FormatLiteral(n)
	case *syntax.UnaryExpr:
		return n.Op.String()
	case *syntax.PostfixExpr:
		return n.Op.String()
	case *syntax.BinaryExpr:
		return n.Op.String()
	case *syntax.AssignExpr:
		return n.Op.String()
	case *syntax.FieldExpr:
		return n.Field
	}
	return ""
}
