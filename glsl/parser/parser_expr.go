package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/dhamidi/glslq/glsl/syntax"
)

var binaryOps = map[TokenKind]syntax.BinaryOp{
	TokenOrOr:    syntax.LogicalOr,
	TokenXorXor:  syntax.LogicalXor,
	TokenAndAnd:  syntax.LogicalAnd,
	TokenPipe:    syntax.BitOr,
	TokenCaret:   syntax.BitXor,
	TokenAmp:     syntax.BitAnd,
	TokenEQ:      syntax.Eq,
	TokenNE:      syntax.Ne,
	TokenLT:      syntax.Lt,
	TokenGT:      syntax.Gt,
	TokenLE:      syntax.Le,
	TokenGE:      syntax.Ge,
	TokenShl:     syntax.ShiftLeft,
	TokenShr:     syntax.ShiftRight,
	TokenPlus:    syntax.Add,
	TokenMinus:   syntax.Sub,
	TokenStar:    syntax.Mul,
	TokenSlash:   syntax.Div,
	TokenPercent: syntax.Mod,
}

var assignOps = map[TokenKind]syntax.AssignOp{
	TokenAssign:    syntax.Assign,
	TokenMulAssign: syntax.MulAssign,
	TokenDivAssign: syntax.DivAssign,
	TokenModAssign: syntax.ModAssign,
	TokenAddAssign: syntax.AddAssign,
	TokenSubAssign: syntax.SubAssign,
	TokenShlAssign: syntax.ShlAssign,
	TokenShrAssign: syntax.ShrAssign,
	TokenAndAssign: syntax.AndAssign,
	TokenXorAssign: syntax.XorAssign,
	TokenOrAssign:  syntax.OrAssign,
}

var unaryOps = map[TokenKind]syntax.UnaryOp{
	TokenInc:   syntax.PreInc,
	TokenDec:   syntax.PreDec,
	TokenPlus:  syntax.Plus,
	TokenMinus: syntax.Minus,
	TokenBang:  syntax.Not,
	TokenTilde: syntax.Complement,
}

// parseExpression parses a full expression, including the comma
// operator.
func (p *Parser) parseExpression() syntax.Expr {
	start := p.start()
	x := p.parseAssignment()
	for p.accept(TokenComma) {
		y := p.parseAssignment()
		x = &syntax.CommaExpr{X: x, Y: y, Span: p.spanFrom(start)}
	}
	return x
}

// parseAssignment parses a right-associative assignment. The target must
// be a unary-level expression.
func (p *Parser) parseAssignment() syntax.Expr {
	p.enter()
	defer p.leave()

	start := p.start()
	lhs := p.parseConditional()
	tok := p.peek()
	op, ok := assignOps[tok.Kind]
	if !ok {
		return lhs
	}
	if syntax.Precedence(lhs) < syntax.PrecUnary {
		p.failf(tok, "assignment", "cannot assign to %s expression", describeExpr(lhs))
	}
	p.advance()
	rhs := p.parseAssignment()
	return &syntax.AssignExpr{Op: op, LHS: lhs, RHS: rhs, Span: p.spanFrom(start)}
}

// parseConditional parses "cond ? expr : assignment".
func (p *Parser) parseConditional() syntax.Expr {
	start := p.start()
	cond := p.parseBinary(syntax.PrecLogicalOr)
	if !p.accept(TokenQuestion) {
		return cond
	}
	then := p.parseExpression()
	p.expect(TokenColon, "conditional expression")
	els := p.parseAssignment()
	return &syntax.TernaryExpr{Cond: cond, Then: then, Else: els, Span: p.spanFrom(start)}
}

// parseBinary is the precedence-climbing loop over the binary operator
// table. Only operators binding at least as tightly as minPrec are
// consumed.
func (p *Parser) parseBinary(minPrec int) syntax.Expr {
	start := p.start()
	x := p.parseUnary()
	for {
		op, ok := binaryOps[p.peek().Kind]
		if !ok || op.Precedence() < minPrec {
			return x
		}
		p.advance()
		y := p.parseBinary(op.Precedence() + 1)
		x = &syntax.BinaryExpr{Op: op, X: x, Y: y, Span: p.spanFrom(start)}
	}
}

func (p *Parser) parseUnary() syntax.Expr {
	p.enter()
	defer p.leave()

	op, ok := unaryOps[p.peek().Kind]
	if !ok {
		return p.parsePostfix()
	}
	start := p.start()
	p.advance()
	x := p.parseUnary()
	return &syntax.UnaryExpr{Op: op, X: x, Span: p.spanFrom(start)}
}

func (p *Parser) parsePostfix() syntax.Expr {
	start := p.start()
	x := p.parsePrimary()
	for {
		switch p.peek().Kind {
		case TokenLBracket:
			p.advance()
			index := p.parseExpression()
			p.expect(TokenRBracket, "index expression")
			x = &syntax.IndexExpr{X: x, Index: index, Span: p.spanFrom(start)}
		case TokenDot:
			p.advance()
			field := p.expect(TokenIdent, "field selection")
			x = &syntax.FieldExpr{X: x, Field: field.Literal, Span: p.spanFrom(start)}
		case TokenLParen:
			args := p.parseCallArgs()
			x = &syntax.CallExpr{Func: x, Args: args, Span: p.spanFrom(start)}
		case TokenInc:
			p.advance()
			x = &syntax.PostfixExpr{Op: syntax.PostInc, X: x, Span: p.spanFrom(start)}
		case TokenDec:
			p.advance()
			x = &syntax.PostfixExpr{Op: syntax.PostDec, X: x, Span: p.spanFrom(start)}
		default:
			return x
		}
	}
}

// parseCallArgs parses "(args)". "(void)" is an empty argument list.
func (p *Parser) parseCallArgs() []syntax.Expr {
	p.expect(TokenLParen, "function call")
	if p.accept(TokenRParen) {
		return nil
	}
	if tok := p.peek(); tok.Kind == TokenTypeName && tok.Literal == "void" && p.peekN(1).Kind == TokenRParen {
		p.advance()
		p.advance()
		return nil
	}
	var args []syntax.Expr
	for {
		args = append(args, p.parseAssignment())
		if !p.accept(TokenComma) {
			break
		}
	}
	p.expect(TokenRParen, "function call")
	return args
}

func (p *Parser) parsePrimary() syntax.Expr {
	tok := p.peek()
	switch tok.Kind {
	case TokenIdent:
		if p.typeNames[tok.Literal] {
			return p.parseConstructor()
		}
		p.advance()
		return &syntax.Ident{Name: tok.Literal, Span: tok.Span}
	case TokenTypeName:
		return p.parseConstructor()
	case TokenIntLiteral, TokenFloatLiteral, TokenBoolLiteral:
		p.advance()
		return p.literal(tok)
	case TokenLParen:
		p.advance()
		x := p.parseExpression()
		p.expect(TokenRParen, "parenthesized expression")
		return x
	}
	p.failf(tok, "expression", "expected expression, found %s", tok.Describe())
	return nil
}

// parseConstructor parses the callee of a constructor call. A plain type
// name becomes an *syntax.Ident; an array type becomes a
// *syntax.TypeExpr. The argument list itself is left to parsePostfix.
func (p *Parser) parseConstructor() syntax.Expr {
	start := p.start()
	tok := p.peek()
	if p.peekN(1).Kind != TokenLBracket {
		p.advance()
		if !p.check(TokenLParen) {
			p.failf(p.peek(), "constructor", "expected '(' after type %s", quote(tok.Literal))
		}
		return &syntax.Ident{Name: tok.Literal, Span: tok.Span}
	}
	ts := p.parseTypeSpecifier()
	if !p.check(TokenLParen) {
		p.failExpected("array constructor", TokenLParen)
	}
	return &syntax.TypeExpr{Type: ts, Span: p.spanFrom(start)}
}

func (p *Parser) literal(tok Token) syntax.Expr {
	switch tok.Kind {
	case TokenBoolLiteral:
		return &syntax.BoolLiteral{Value: tok.Literal == "true", Span: tok.Span}
	case TokenFloatLiteral:
		return p.floatLiteral(tok)
	}
	return p.intLiteral(tok)
}

func (p *Parser) intLiteral(tok Token) syntax.Expr {
	text := tok.Literal
	unsigned := strings.HasSuffix(text, "u") || strings.HasSuffix(text, "U")
	if unsigned {
		text = text[:len(text)-1]
	}
	base := 10
	switch {
	case len(text) > 2 && (text[1] == 'x' || text[1] == 'X'):
		base, text = 16, text[2:]
	case len(text) > 1 && text[0] == '0':
		base, text = 8, text[1:]
	}
	v, err := strconv.ParseUint(text, base, 64)
	if err != nil || v > math.MaxUint32 {
		p.failf(tok, "literal", "integer literal %s out of range", tok.Literal)
	}
	if unsigned {
		return &syntax.UIntLiteral{Value: v, Span: tok.Span}
	}
	return &syntax.IntLiteral{Value: int64(v), Span: tok.Span}
}

func (p *Parser) floatLiteral(tok Token) syntax.Expr {
	text := tok.Literal
	if strings.HasSuffix(text, "lf") || strings.HasSuffix(text, "LF") {
		v, err := strconv.ParseFloat(text[:len(text)-2], 64)
		if err != nil {
			p.failf(tok, "literal", "double literal %s out of range", tok.Literal)
		}
		return &syntax.DoubleLiteral{Value: v, Span: tok.Span}
	}
	text = strings.TrimRight(text, "fF")
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		p.failf(tok, "literal", "float literal %s out of range", tok.Literal)
	}
	return &syntax.FloatLiteral{Value: float32(v), Span: tok.Span}
}

func describeExpr(x syntax.Expr) string {
	switch x.(type) {
	case *syntax.CommaExpr:
		return "a comma"
	case *syntax.AssignExpr:
		return "an assignment"
	case *syntax.TernaryExpr:
		return "a conditional"
	case *syntax.BinaryExpr:
		return "a binary"
	}
	return "this"
}
