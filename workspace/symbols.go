package workspace

import (
	"errors"
	"strings"

	"github.com/dhamidi/glslq/format"
	"github.com/dhamidi/glslq/glsl/parser"
	"github.com/dhamidi/glslq/glsl/syntax"
)

type SymbolKind int

const (
	SymbolFunction SymbolKind = iota
	SymbolStruct
	SymbolBlock
	SymbolVariable
	SymbolConstant
	SymbolField
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolStruct:
		return "struct"
	case SymbolBlock:
		return "block"
	case SymbolVariable:
		return "variable"
	case SymbolConstant:
		return "constant"
	case SymbolField:
		return "field"
	}
	return "unknown"
}

// Symbol is a named declaration. Span covers the whole declaration.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Detail   string
	Span     syntax.Span
	Children []Symbol
}

// Symbols lists the functions, types, blocks and variables declared at
// file scope, in source order.
func Symbols(tu *syntax.TranslationUnit) []Symbol {
	var symbols []Symbol
	for _, decl := range tu.Decls {
		switch d := decl.(type) {
		case *syntax.FunctionDefinition:
			symbols = append(symbols, Symbol{
				Name:   d.Prototype.Name,
				Kind:   SymbolFunction,
				Detail: signature(d.Prototype),
				Span:   d.Span,
			})
		case *syntax.FunctionPrototype:
			symbols = append(symbols, Symbol{
				Name:   d.Name,
				Kind:   SymbolFunction,
				Detail: signature(d),
				Span:   d.Span,
			})
		case *syntax.InitDeclaratorList:
			symbols = append(symbols, declaratorSymbols(d)...)
		case *syntax.BlockDecl:
			sym := Symbol{
				Name:     d.Name,
				Kind:     SymbolBlock,
				Span:     d.Span,
				Children: fieldSymbols(d.Fields),
			}
			if d.Instance != nil {
				sym.Detail = d.Instance.Name
			}
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

func declaratorSymbols(d *syntax.InitDeclaratorList) []Symbol {
	var symbols []Symbol
	if st, ok := d.Type.Type.Base.(*syntax.StructSpecifier); ok && st.Name != "" {
		symbols = append(symbols, Symbol{
			Name:     st.Name,
			Kind:     SymbolStruct,
			Span:     st.Span,
			Children: fieldSymbols(st.Fields),
		})
	}
	kind := SymbolVariable
	if isConst(d.Type.Qualifier) {
		kind = SymbolConstant
	}
	detail := typeText(d.Type)
	for _, decl := range d.Declarators {
		symbols = append(symbols, Symbol{
			Name:   decl.Name,
			Kind:   kind,
			Detail: detail,
			Span:   decl.Span,
		})
	}
	return symbols
}

func fieldSymbols(fields []*syntax.StructField) []Symbol {
	var symbols []Symbol
	for _, field := range fields {
		detail := format.Print(field.Type)
		for _, id := range field.Declarators {
			symbols = append(symbols, Symbol{
				Name:   id.Name,
				Kind:   SymbolField,
				Detail: detail,
				Span:   id.Span,
			})
		}
	}
	return symbols
}

func isConst(q *syntax.TypeQualifier) bool {
	if q == nil {
		return false
	}
	for _, spec := range q.Specs {
		if s, ok := spec.(*syntax.StorageQualifier); ok && s.Storage == syntax.StorageConst {
			return true
		}
	}
	return false
}

func signature(proto *syntax.FunctionPrototype) string {
	return strings.TrimSuffix(format.Print(proto), ";\n")
}

// typeText renders a declared type. An inline struct body is shortened
// to its name.
func typeText(t *syntax.FullySpecifiedType) string {
	if st, ok := t.Type.Base.(*syntax.StructSpecifier); ok {
		prefix := ""
		if t.Qualifier != nil && len(t.Qualifier.Specs) > 0 {
			prefix = format.Print(t.Qualifier) + " "
		}
		return prefix + "struct " + st.Name
	}
	return format.Print(t)
}

// Diagnostic is a syntax error in a file.
type Diagnostic struct {
	Path    string
	Span    syntax.Span
	Message string
	Err     error
}

// NewDiagnostic extracts the position of a lexer or parser error. Other
// errors are reported at the start of the file.
func NewDiagnostic(path string, err error) Diagnostic {
	d := Diagnostic{Path: path, Message: err.Error(), Err: err}

	var lexErr *parser.LexError
	var parseErr *parser.ParseError
	switch {
	case errors.As(err, &lexErr):
		d.Span = lexErr.Span
	case errors.As(err, &parseErr):
		d.Span = parseErr.Span
	}
	if d.Span.Start.Line > 0 {
		d.Message = strings.TrimPrefix(d.Message, d.Span.Start.String()+": ")
	}
	return d
}
