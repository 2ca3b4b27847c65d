package format

import (
	"github.com/dhamidi/glslq/glsl/syntax"
)

// beginLine flushes the comments that precede n and keeps a blank line
// the source had before it.
func (p *GLSLPrettyPrinter) beginLine(n syntax.Node) {
	span := n.Pos()
	p.emitCommentsBefore(span.Start)
	p.breakBefore(span.Start.Line)
	p.lastLine = max(p.lastLine, span.Start.Line)
}

func (p *GLSLPrettyPrinter) endLine(n syntax.Node) {
	span := n.Pos()
	// A directive runs to the end of its line, so nothing may follow it.
	if _, ok := n.(*syntax.Preprocessor); !ok && !p.atLineStart {
		p.emitTrailingComments(span.End.Line)
	}
	if !p.atLineStart {
		p.newline()
	}
	p.lastLine = max(p.lastLine, span.End.Line)
}

func (p *GLSLPrettyPrinter) printExternalDeclLine(decl syntax.ExternalDecl) {
	p.beginLine(decl)
	p.printExternalDecl(decl)
	p.endLine(decl)
}

func (p *GLSLPrettyPrinter) printExternalDecl(decl syntax.ExternalDecl) {
	switch d := decl.(type) {
	case *syntax.FunctionDefinition:
		p.printSignature(d.Prototype)
		p.write(" ")
		p.printCompoundStmt(d.Body)
	case *syntax.Preprocessor:
		p.write(d.Text)
	case syntax.Declaration:
		p.printDeclaration(d)
	}
}

func (p *GLSLPrettyPrinter) printDeclaration(decl syntax.Declaration) {
	switch d := decl.(type) {
	case *syntax.FunctionPrototype:
		p.printSignature(d)
		p.write(";")
	case *syntax.InitDeclaratorList:
		p.printFullySpecifiedType(d.Type)
		for i, declarator := range d.Declarators {
			if i == 0 {
				p.write(" ")
			} else {
				p.write(", ")
			}
			p.printDeclarator(declarator)
		}
		p.write(";")
	case *syntax.PrecisionDecl:
		p.write("precision ")
		p.write(d.Precision.String())
		p.write(" ")
		p.printTypeSpecifier(d.Type)
		p.write(";")
	case *syntax.BlockDecl:
		p.printQualifierPrefix(d.Qualifier)
		p.write(d.Name)
		p.write(" ")
		p.printFieldBlock(d.Fields, d.Span.End)
		if d.Instance != nil {
			p.write(" ")
			p.printArrayedIdent(d.Instance)
		}
		p.write(";")
	case *syntax.QualifierDecl:
		p.printTypeQualifier(d.Qualifier)
		for i, name := range d.Names {
			if i == 0 {
				p.write(" ")
			} else {
				p.write(", ")
			}
			p.write(name)
		}
		p.write(";")
	}
}

func (p *GLSLPrettyPrinter) printSignature(proto *syntax.FunctionPrototype) {
	p.printFullySpecifiedType(proto.ReturnType)
	p.write(" ")
	p.write(proto.Name)
	p.write("(")
	for i, param := range proto.Params {
		if i > 0 {
			p.write(", ")
		}
		p.printParamDecl(param)
	}
	p.write(")")
}

func (p *GLSLPrettyPrinter) printParamDecl(param *syntax.ParamDecl) {
	p.printQualifierPrefix(param.Qualifier)
	p.printTypeSpecifier(param.Type)
	if param.Name != "" {
		p.write(" ")
		p.write(param.Name)
		p.printArraySpecifier(param.Array)
	}
}

func (p *GLSLPrettyPrinter) printDeclarator(d *syntax.Declarator) {
	p.write(d.Name)
	p.printArraySpecifier(d.Array)
	if d.Init != nil {
		p.write(" = ")
		p.printInitializer(d.Init)
	}
}

func (p *GLSLPrettyPrinter) printInitializer(init syntax.Initializer) {
	switch i := init.(type) {
	case *syntax.ExprInitializer:
		p.printExpr(i.X, syntax.PrecAssign)
	case *syntax.ListInitializer:
		p.write("{")
		for j, item := range i.Items {
			if j > 0 {
				p.write(", ")
			}
			p.printInitializer(item)
		}
		p.write("}")
	}
}

func (p *GLSLPrettyPrinter) printFullySpecifiedType(t *syntax.FullySpecifiedType) {
	if t == nil {
		return
	}
	p.printQualifierPrefix(t.Qualifier)
	p.printTypeSpecifier(t.Type)
}

// printQualifierPrefix writes q followed by a space, or nothing when q is
// empty.
func (p *GLSLPrettyPrinter) printQualifierPrefix(q *syntax.TypeQualifier) {
	if q == nil || len(q.Specs) == 0 {
		return
	}
	p.printTypeQualifier(q)
	p.write(" ")
}

func (p *GLSLPrettyPrinter) printTypeSpecifier(ts *syntax.TypeSpecifier) {
	if ts == nil {
		return
	}
	p.printTypeBase(ts.Base)
	p.printArraySpecifier(ts.Array)
}

func (p *GLSLPrettyPrinter) printTypeBase(base syntax.TypeBase) {
	switch b := base.(type) {
	case *syntax.BuiltinType:
		p.write(b.Type.String())
	case *syntax.TypeName:
		p.write(b.Name)
	case *syntax.StructSpecifier:
		p.write("struct ")
		if b.Name != "" {
			p.write(b.Name)
			p.write(" ")
		}
		p.printFieldBlock(b.Fields, b.Span.End)
	}
}

// printFieldBlock writes the braced member list of a struct or interface
// block, one member per line.
func (p *GLSLPrettyPrinter) printFieldBlock(fields []*syntax.StructField, end syntax.Position) {
	p.write("{")
	p.newline()
	p.indent++
	for _, field := range fields {
		p.beginLine(field)
		p.printStructField(field)
		p.endLine(field)
	}
	p.emitCommentsBefore(end)
	p.indent--
	p.write("}")
}

func (p *GLSLPrettyPrinter) printStructField(field *syntax.StructField) {
	p.printQualifierPrefix(field.Qualifier)
	p.printTypeSpecifier(field.Type)
	for i, id := range field.Declarators {
		if i == 0 {
			p.write(" ")
		} else {
			p.write(", ")
		}
		p.printArrayedIdent(id)
	}
	p.write(";")
}

func (p *GLSLPrettyPrinter) printArrayedIdent(id *syntax.ArrayedIdent) {
	p.write(id.Name)
	p.printArraySpecifier(id.Array)
}

func (p *GLSLPrettyPrinter) printArraySpecifier(arr *syntax.ArraySpecifier) {
	if arr == nil {
		return
	}
	for _, dim := range arr.Dims {
		p.write("[")
		if dim != nil {
			p.printExpr(dim, syntax.PrecTernary)
		}
		p.write("]")
	}
}

func (p *GLSLPrettyPrinter) printTypeQualifier(q *syntax.TypeQualifier) {
	if q == nil {
		return
	}
	for i, spec := range q.Specs {
		if i > 0 {
			p.write(" ")
		}
		p.printQualifierSpec(spec)
	}
}

func (p *GLSLPrettyPrinter) printQualifierSpec(spec syntax.QualifierSpec) {
	switch s := spec.(type) {
	case *syntax.StorageQualifier:
		p.write(s.Storage.String())
		if len(s.TypeNames) > 0 {
			p.write("(")
			for i, name := range s.TypeNames {
				if i > 0 {
					p.write(", ")
				}
				p.write(name)
			}
			p.write(")")
		}
	case *syntax.LayoutQualifier:
		p.write("layout(")
		for i, id := range s.IDs {
			if i > 0 {
				p.write(", ")
			}
			p.printLayoutID(id)
		}
		p.write(")")
	case *syntax.PrecisionQualifier:
		p.write(s.Precision.String())
	case *syntax.InterpolationQualifier:
		p.write(s.Interpolation.String())
	case *syntax.InvariantQualifier:
		p.write("invariant")
	case *syntax.PreciseQualifier:
		p.write("precise")
	}
}

func (p *GLSLPrettyPrinter) printLayoutID(id *syntax.LayoutID) {
	p.write(id.Name)
	if id.Value != nil {
		p.write(" = ")
		p.printExpr(id.Value, syntax.PrecTernary)
	}
}
