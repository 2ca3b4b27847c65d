package format

import (
	"github.com/dhamidi/glslq/glsl/syntax"
)

func (p *GLSLPrettyPrinter) printStmtLine(stmt syntax.Statement) {
	p.beginLine(stmt)
	p.printStmt(stmt)
	p.endLine(stmt)
}

func (p *GLSLPrettyPrinter) printStmt(stmt syntax.Statement) {
	switch s := stmt.(type) {
	case *syntax.CompoundStmt:
		p.printCompoundStmt(s)
	case *syntax.Preprocessor:
		p.write(s.Text)
	case *syntax.DeclarationStmt:
		p.printDeclaration(s.Decl)
	case *syntax.ExprStmt:
		if s.X != nil {
			p.printExpr(s.X, syntax.PrecComma)
		}
		p.write(";")
	case *syntax.IfStmt:
		p.printIfStmt(s)
	case *syntax.SwitchStmt:
		p.write("switch (")
		p.printExpr(s.Tag, syntax.PrecComma)
		p.write(") ")
		p.printBlock(s.Body, s.Span.End, true)
	case *syntax.CaseLabel:
		if s.Value == nil {
			p.write("default:")
			return
		}
		p.write("case ")
		p.printExpr(s.Value, syntax.PrecComma)
		p.write(":")
	case *syntax.WhileStmt:
		p.write("while (")
		p.printCondition(s.Cond)
		p.write(")")
		p.printBody(s.Body)
	case *syntax.DoWhileStmt:
		p.write("do")
		p.printBody(s.Body)
		p.continueAfter(s.Body)
		p.write("while (")
		p.printExpr(s.Cond, syntax.PrecComma)
		p.write(");")
	case *syntax.ForStmt:
		p.printForStmt(s)
	case *syntax.JumpStmt:
		p.write(s.Kind.String())
		if s.Value != nil {
			p.write(" ")
			p.printExpr(s.Value, syntax.PrecComma)
		}
		p.write(";")
	}
}

func (p *GLSLPrettyPrinter) printCompoundStmt(block *syntax.CompoundStmt) {
	p.printBlock(block.Stmts, block.Span.End, false)
}

// printBlock writes a braced statement list. In a switch body the
// statements under a case label are indented one level deeper than the
// label.
func (p *GLSLPrettyPrinter) printBlock(stmts []syntax.Statement, end syntax.Position, isSwitch bool) {
	if len(stmts) == 0 && !p.hasCommentBefore(end) {
		p.write("{}")
		return
	}
	p.write("{")
	p.newline()
	p.indent++
	for _, stmt := range stmts {
		_, isLabel := stmt.(*syntax.CaseLabel)
		nested := isSwitch && !isLabel
		if nested {
			p.indent++
		}
		p.printStmtLine(stmt)
		if nested {
			p.indent--
		}
	}
	p.emitCommentsBefore(end)
	p.indent--
	p.write("}")
}

func (p *GLSLPrettyPrinter) hasCommentBefore(pos syntax.Position) bool {
	return p.commentIndex < len(p.comments) && p.comments[p.commentIndex].Span.Start.Offset < pos.Offset
}

// printBody writes the body of a control statement after its header. A
// block stays on the header line; any other statement goes on the next
// line, one level deeper.
func (p *GLSLPrettyPrinter) printBody(body syntax.Statement) {
	if b, ok := body.(*syntax.CompoundStmt); ok {
		p.write(" ")
		p.printCompoundStmt(b)
		return
	}
	p.newline()
	p.indent++
	p.printStmt(body)
	p.indent--
}

// continueAfter positions the output for the keyword that follows body,
// as in "} else" or "} while".
func (p *GLSLPrettyPrinter) continueAfter(body syntax.Statement) {
	if _, ok := body.(*syntax.CompoundStmt); ok {
		p.write(" ")
		return
	}
	p.newline()
}

func (p *GLSLPrettyPrinter) printIfStmt(s *syntax.IfStmt) {
	p.write("if (")
	p.printExpr(s.Cond, syntax.PrecComma)
	p.write(")")
	then := s.Then
	if s.Else != nil && endsInOpenIf(then) {
		// Without braces the else would bind to the inner if.
		then = &syntax.CompoundStmt{Stmts: []syntax.Statement{then}}
	}
	p.printBody(then)
	if s.Else == nil {
		return
	}
	p.continueAfter(then)
	p.write("else")
	if elif, ok := s.Else.(*syntax.IfStmt); ok {
		p.write(" ")
		p.printIfStmt(elif)
		return
	}
	p.printBody(s.Else)
}

// endsInOpenIf reports whether an else written after s would be taken by
// an if inside s.
func endsInOpenIf(s syntax.Statement) bool {
	switch s := s.(type) {
	case *syntax.IfStmt:
		if s.Else == nil {
			return true
		}
		return endsInOpenIf(s.Else)
	case *syntax.WhileStmt:
		return endsInOpenIf(s.Body)
	case *syntax.ForStmt:
		return endsInOpenIf(s.Body)
	}
	return false
}

func (p *GLSLPrettyPrinter) printForStmt(s *syntax.ForStmt) {
	p.write("for (")
	if s.Init != nil {
		p.printStmt(s.Init)
	} else {
		p.write(";")
	}
	if s.Cond != nil {
		p.write(" ")
		p.printCondition(s.Cond)
	}
	p.write(";")
	if s.Post != nil {
		p.write(" ")
		p.printExpr(s.Post, syntax.PrecComma)
	}
	p.write(")")
	p.printBody(s.Body)
}

func (p *GLSLPrettyPrinter) printCondition(cond syntax.Condition) {
	switch c := cond.(type) {
	case *syntax.ExprCondition:
		p.printExpr(c.X, syntax.PrecComma)
	case *syntax.DeclCondition:
		p.printFullySpecifiedType(c.Type)
		p.write(" ")
		p.write(c.Name)
		p.write(" = ")
		p.printInitializer(c.Init)
	}
}
