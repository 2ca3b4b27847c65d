package format

import (
	"bytes"
	"io"
	"sort"

	"github.com/dhamidi/glslq/glsl/parser"
	"github.com/dhamidi/glslq/glsl/syntax"
)

const DefaultIndent = "    "

type Option func(*GLSLPrettyPrinter)

// WithIndent sets the string written once per nesting level.
func WithIndent(indent string) Option {
	return func(p *GLSLPrettyPrinter) {
		p.indentStr = indent
	}
}

// GLSLPrettyPrinter writes a syntax tree as GLSL source. Output depends
// only on the tree, except when comments are attached: then blank lines
// between declarations and statements follow the original layout.
type GLSLPrettyPrinter struct {
	w            io.Writer
	err          error
	comments     []parser.Token
	commentIndex int
	layout       bool
	indent       int
	indentStr    string
	atLineStart  bool
	started      bool
	wroteBlank   bool
	lastLine     int
}

func NewGLSLPrettyPrinter(w io.Writer, opts ...Option) *GLSLPrettyPrinter {
	p := &GLSLPrettyPrinter{
		w:           w,
		indentStr:   DefaultIndent,
		atLineStart: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes node. A translation unit, declaration or statement ends
// with a newline; an expression does not.
func (p *GLSLPrettyPrinter) Print(node syntax.Node) error {
	p.printNode(node)
	return p.err
}

// PrintWithComments writes a parsed translation unit, re-emitting comments
// before the declaration or statement that follows them.
func (p *GLSLPrettyPrinter) PrintWithComments(tu *syntax.TranslationUnit, comments []parser.Token) error {
	p.comments = append([]parser.Token(nil), comments...)
	sort.SliceStable(p.comments, func(i, j int) bool {
		return p.comments[i].Span.Start.Offset < p.comments[j].Span.Start.Offset
	})
	p.commentIndex = 0
	p.layout = true

	p.printTranslationUnit(tu)
	p.emitRemainingComments()
	return p.err
}

func (p *GLSLPrettyPrinter) printNode(node syntax.Node) {
	switch n := node.(type) {
	case *syntax.TranslationUnit:
		p.printTranslationUnit(n)
	case syntax.ExternalDecl:
		p.printExternalDeclLine(n)
	case syntax.Statement:
		p.printStmtLine(n)
	case syntax.Expr:
		p.printExpr(n, syntax.PrecComma)
	case syntax.Initializer:
		p.printInitializer(n)
	case syntax.Condition:
		p.printCondition(n)
	case *syntax.FullySpecifiedType:
		p.printFullySpecifiedType(n)
	case *syntax.TypeSpecifier:
		p.printTypeSpecifier(n)
	case *syntax.TypeQualifier:
		p.printTypeQualifier(n)
	case syntax.QualifierSpec:
		p.printQualifierSpec(n)
	case *syntax.ArraySpecifier:
		p.printArraySpecifier(n)
	case *syntax.ParamDecl:
		p.printParamDecl(n)
	case *syntax.Declarator:
		p.printDeclarator(n)
	case *syntax.StructField:
		p.printStructField(n)
	case *syntax.ArrayedIdent:
		p.printArrayedIdent(n)
	case *syntax.LayoutID:
		p.printLayoutID(n)
	case syntax.TypeBase:
		p.printTypeBase(n)
	}
}

func (p *GLSLPrettyPrinter) printTranslationUnit(tu *syntax.TranslationUnit) {
	var prev syntax.ExternalDecl
	for _, decl := range tu.Decls {
		if prev != nil && (isFunctionDef(prev) || isFunctionDef(decl)) {
			p.blankLine()
		}
		p.printExternalDeclLine(decl)
		prev = decl
	}
}

func isFunctionDef(decl syntax.ExternalDecl) bool {
	_, ok := decl.(*syntax.FunctionDefinition)
	return ok
}

func (p *GLSLPrettyPrinter) writeIndent() {
	if !p.atLineStart {
		return
	}
	p.atLineStart = false
	for i := 0; i < p.indent; i++ {
		p.write(p.indentStr)
	}
}

// write emits s, indenting first when s starts a line.
func (p *GLSLPrettyPrinter) write(s string) {
	if s != "\n" {
		p.writeIndent()
		p.started = true
		p.wroteBlank = false
	}
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *GLSLPrettyPrinter) newline() {
	p.write("\n")
	p.atLineStart = true
}

// blankLine writes an empty line unless output is empty or already ends
// with one.
func (p *GLSLPrettyPrinter) blankLine() {
	if !p.started || p.wroteBlank {
		return
	}
	if !p.atLineStart {
		p.newline()
	}
	p.newline()
	p.wroteBlank = true
}

// breakBefore writes a blank line when the original source had one
// between the previous line and line.
func (p *GLSLPrettyPrinter) breakBefore(line int) {
	if p.layout && p.lastLine > 0 && line > p.lastLine+1 {
		p.blankLine()
	}
}

// Print formats node with default options.
func Print(node syntax.Node, opts ...Option) string {
	var buf bytes.Buffer
	NewGLSLPrettyPrinter(&buf, opts...).Print(node)
	return buf.String()
}

// Source parses src and prints it back with comments preserved.
func Source(src []byte, opts ...Option) ([]byte, error) {
	return SourceFile(src, "", opts...)
}

// SourceFile is Source with a file name for error positions.
func SourceFile(src []byte, filename string, opts ...Option) ([]byte, error) {
	popts := []parser.Option{parser.WithComments()}
	if filename != "" {
		popts = append(popts, parser.WithFile(filename))
	}
	pr := parser.ParseTranslationUnit(bytes.NewReader(src), popts...)
	node, err := pr.Finish()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	pp := NewGLSLPrettyPrinter(&buf, opts...)
	if err := pp.PrintWithComments(node.(*syntax.TranslationUnit), pr.Comments()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
