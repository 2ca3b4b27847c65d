// Package glsl is the front end for GLSL shaders: it turns source text
// into a syntax tree and a syntax tree back into source text.
//
// Errors are returned unchanged from the parser, so callers can use
// errors.As with *parser.LexError and *parser.ParseError, or errors.Is
// with parser.ErrLex and parser.ErrParse.
package glsl

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/glslq/format"
	"github.com/dhamidi/glslq/glsl/parser"
	"github.com/dhamidi/glslq/glsl/syntax"
)

// Parse parses a complete shader.
func Parse(source string, opts ...parser.Option) (*syntax.TranslationUnit, error) {
	node, err := parser.ParseTranslationUnit(strings.NewReader(source), opts...).Finish()
	if err != nil {
		return nil, err
	}
	return node.(*syntax.TranslationUnit), nil
}

// ParseFile reads and parses the shader at path. Error positions carry
// the path.
func ParseFile(path string, opts ...parser.Option) (*syntax.TranslationUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shader: %w", err)
	}
	return Parse(string(data), append([]parser.Option{parser.WithFile(path)}, opts...)...)
}

// ParseExpr parses a single expression.
func ParseExpr(source string) (syntax.Expr, error) {
	node, err := parser.ParseExpression(strings.NewReader(source)).Finish()
	if err != nil {
		return nil, err
	}
	return node.(syntax.Expr), nil
}

// Print renders tu as source text. Parsing the result yields a tree equal
// to tu.
func Print(tu *syntax.TranslationUnit, opts ...format.Option) string {
	return format.Print(tu, opts...)
}

// Format reformats src, keeping its comments.
func Format(src []byte, opts ...format.Option) ([]byte, error) {
	return format.Source(src, opts...)
}
