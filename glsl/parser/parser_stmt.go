package parser

import (
	"github.com/dhamidi/glslq/glsl/syntax"
)

func (p *Parser) parseStatement() syntax.Statement {
	p.enter()
	defer p.leave()

	switch p.peek().Kind {
	case TokenLBrace:
		return p.parseCompoundStmt()
	case TokenDirective:
		return p.parseDirective()
	case TokenIf:
		return p.parseIfStmt()
	case TokenSwitch:
		return p.parseSwitchStmt()
	case TokenCase, TokenDefault:
		return p.parseCaseLabel()
	case TokenWhile:
		return p.parseWhileStmt()
	case TokenDo:
		return p.parseDoWhileStmt()
	case TokenFor:
		return p.parseForStmt()
	case TokenBreak, TokenContinue, TokenReturn, TokenDiscard:
		return p.parseJumpStmt()
	}

	if p.isDeclarationStart() {
		return p.parseDeclarationStmt()
	}
	return p.parseExprStmt()
}

func (p *Parser) parseCompoundStmt() *syntax.CompoundStmt {
	start := p.start()
	p.expect(TokenLBrace, "compound statement")
	block := &syntax.CompoundStmt{}
	for !p.check(TokenRBrace) {
		if p.check(TokenEOF) {
			p.failExpected("compound statement", TokenRBrace)
		}
		block.Stmts = append(block.Stmts, p.parseStatement())
	}
	p.expect(TokenRBrace, "compound statement")
	block.Span = p.spanFrom(start)
	return block
}

func (p *Parser) parseDeclarationStmt() *syntax.DeclarationStmt {
	start := p.start()
	decl := p.parseDeclaration(false).(syntax.Declaration)
	return &syntax.DeclarationStmt{Decl: decl, Span: p.spanFrom(start)}
}

func (p *Parser) parseExprStmt() *syntax.ExprStmt {
	start := p.start()
	stmt := &syntax.ExprStmt{}
	if !p.check(TokenSemicolon) {
		stmt.X = p.parseExpression()
	}
	p.expect(TokenSemicolon, "expression statement")
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseIfStmt() *syntax.IfStmt {
	start := p.start()
	p.expect(TokenIf, "if statement")
	p.expect(TokenLParen, "if statement")
	stmt := &syntax.IfStmt{Cond: p.parseExpression()}
	p.expect(TokenRParen, "if statement")
	stmt.Then = p.parseStatement()
	// A dangling else binds to the nearest if.
	if p.accept(TokenElse) {
		stmt.Else = p.parseStatement()
	}
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseSwitchStmt() *syntax.SwitchStmt {
	start := p.start()
	p.expect(TokenSwitch, "switch statement")
	p.expect(TokenLParen, "switch statement")
	stmt := &syntax.SwitchStmt{Tag: p.parseExpression()}
	p.expect(TokenRParen, "switch statement")
	p.expect(TokenLBrace, "switch statement")
	for !p.check(TokenRBrace) {
		if p.check(TokenEOF) {
			p.failExpected("switch statement", TokenRBrace)
		}
		stmt.Body = append(stmt.Body, p.parseStatement())
	}
	p.expect(TokenRBrace, "switch statement")
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseCaseLabel() *syntax.CaseLabel {
	start := p.start()
	label := &syntax.CaseLabel{}
	if p.accept(TokenCase) {
		label.Value = p.parseExpression()
	} else {
		p.expect(TokenDefault, "case label")
	}
	p.expect(TokenColon, "case label")
	label.Span = p.spanFrom(start)
	return label
}

func (p *Parser) parseWhileStmt() *syntax.WhileStmt {
	start := p.start()
	p.expect(TokenWhile, "while statement")
	p.expect(TokenLParen, "while statement")
	stmt := &syntax.WhileStmt{Cond: p.parseCondition()}
	p.expect(TokenRParen, "while statement")
	stmt.Body = p.parseStatement()
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseDoWhileStmt() *syntax.DoWhileStmt {
	start := p.start()
	p.expect(TokenDo, "do statement")
	stmt := &syntax.DoWhileStmt{Body: p.parseStatement()}
	p.expect(TokenWhile, "do statement")
	p.expect(TokenLParen, "do statement")
	stmt.Cond = p.parseExpression()
	p.expect(TokenRParen, "do statement")
	p.expect(TokenSemicolon, "do statement")
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseForStmt() *syntax.ForStmt {
	start := p.start()
	p.expect(TokenFor, "for statement")
	p.expect(TokenLParen, "for statement")
	stmt := &syntax.ForStmt{}
	if p.isDeclarationStart() {
		stmt.Init = p.parseDeclarationStmt()
	} else {
		stmt.Init = p.parseExprStmt()
	}
	if !p.check(TokenSemicolon) {
		stmt.Cond = p.parseCondition()
	}
	p.expect(TokenSemicolon, "for statement")
	if !p.check(TokenRParen) {
		stmt.Post = p.parseExpression()
	}
	p.expect(TokenRParen, "for statement")
	stmt.Body = p.parseStatement()
	stmt.Span = p.spanFrom(start)
	return stmt
}

// parseCondition parses a loop condition, which is either an expression
// or a single initialized declaration.
func (p *Parser) parseCondition() syntax.Condition {
	start := p.start()
	if !p.isDeclarationStart() {
		x := p.parseExpression()
		return &syntax.ExprCondition{X: x, Span: p.spanFrom(start)}
	}
	cond := &syntax.DeclCondition{Type: p.parseFullySpecifiedType()}
	cond.Name = p.expect(TokenIdent, "condition").Literal
	p.expect(TokenAssign, "condition")
	cond.Init = p.parseInitializer()
	cond.Span = p.spanFrom(start)
	return cond
}

func (p *Parser) parseJumpStmt() *syntax.JumpStmt {
	start := p.start()
	tok := p.advance()
	stmt := &syntax.JumpStmt{}
	switch tok.Kind {
	case TokenBreak:
		stmt.Kind = syntax.JumpBreak
	case TokenContinue:
		stmt.Kind = syntax.JumpContinue
	case TokenDiscard:
		stmt.Kind = syntax.JumpDiscard
	case TokenReturn:
		stmt.Kind = syntax.JumpReturn
		if !p.check(TokenSemicolon) {
			stmt.Value = p.parseExpression()
		}
	}
	p.expect(TokenSemicolon, tok.Literal+" statement")
	stmt.Span = p.spanFrom(start)
	return stmt
}
