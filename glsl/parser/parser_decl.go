package parser

import (
	"github.com/dhamidi/glslq/glsl/syntax"
)

var storageKinds = map[TokenKind]syntax.Storage{
	TokenConst:      syntax.StorageConst,
	TokenIn:         syntax.StorageIn,
	TokenOut:        syntax.StorageOut,
	TokenInOut:      syntax.StorageInOut,
	TokenCentroid:   syntax.StorageCentroid,
	TokenPatch:      syntax.StoragePatch,
	TokenSample:     syntax.StorageSample,
	TokenUniform:    syntax.StorageUniform,
	TokenBuffer:     syntax.StorageBuffer,
	TokenShared:     syntax.StorageShared,
	TokenCoherent:   syntax.StorageCoherent,
	TokenVolatile:   syntax.StorageVolatile,
	TokenRestrict:   syntax.StorageRestrict,
	TokenReadOnly:   syntax.StorageReadOnly,
	TokenWriteOnly:  syntax.StorageWriteOnly,
	TokenAttribute:  syntax.StorageAttribute,
	TokenVarying:    syntax.StorageVarying,
	TokenSubroutine: syntax.StorageSubroutine,
}

var precisionKinds = map[TokenKind]syntax.Precision{
	TokenHighp:   syntax.PrecisionHigh,
	TokenMediump: syntax.PrecisionMedium,
	TokenLowp:    syntax.PrecisionLow,
}

var interpolationKinds = map[TokenKind]syntax.Interpolation{
	TokenSmooth:        syntax.InterpSmooth,
	TokenFlat:          syntax.InterpFlat,
	TokenNoPerspective: syntax.InterpNoPerspective,
}

func isQualifierStart(kind TokenKind) bool {
	if _, ok := storageKinds[kind]; ok {
		return true
	}
	if _, ok := precisionKinds[kind]; ok {
		return true
	}
	if _, ok := interpolationKinds[kind]; ok {
		return true
	}
	switch kind {
	case TokenLayout, TokenInvariant, TokenPrecise:
		return true
	}
	return false
}

// isTypeStart reports whether tok begins a type specifier.
func (p *Parser) isTypeStart(tok Token) bool {
	switch tok.Kind {
	case TokenTypeName, TokenStruct:
		return true
	case TokenIdent:
		return p.typeNames[tok.Literal]
	}
	return false
}

// isDeclarationStart decides whether the statement at the current
// position is a declaration. A type followed by '(' (possibly after array
// brackets) is a constructor call and therefore an expression.
func (p *Parser) isDeclarationStart() bool {
	tok := p.peek()
	if tok.Kind == TokenPrecision || tok.Kind == TokenStruct || isQualifierStart(tok.Kind) {
		return true
	}
	if !p.isTypeStart(tok) {
		return false
	}
	n := 1
	for p.peekN(n).Kind == TokenLBracket {
		depth := 0
		for {
			k := p.peekN(n).Kind
			if k == TokenEOF {
				return true
			}
			n++
			if k == TokenLBracket {
				depth++
			} else if k == TokenRBracket {
				depth--
				if depth == 0 {
					break
				}
			}
		}
	}
	return p.peekN(n).Kind != TokenLParen
}

func (p *Parser) parseExternalDecl() syntax.ExternalDecl {
	if p.check(TokenDirective) {
		return p.parseDirective()
	}
	return p.parseDeclaration(true)
}

// parseDeclaration parses any declaration. At file scope a prototype
// followed by a body becomes a FunctionDefinition; elsewhere the result
// is always a syntax.Declaration.
func (p *Parser) parseDeclaration(atFileScope bool) syntax.ExternalDecl {
	start := p.start()
	if p.check(TokenPrecision) {
		return p.parsePrecisionDecl()
	}

	var qual *syntax.TypeQualifier
	if isQualifierStart(p.peek().Kind) {
		qual = p.parseTypeQualifier()
		switch tok := p.peek(); {
		case tok.Kind == TokenSemicolon:
			p.advance()
			return &syntax.QualifierDecl{Qualifier: qual, Span: p.spanFrom(start)}
		case tok.Kind == TokenIdent && !p.typeNames[tok.Literal]:
			switch p.peekN(1).Kind {
			case TokenLBrace:
				return p.parseBlockDecl(start, qual)
			case TokenComma, TokenSemicolon:
				return p.parseQualifierDecl(start, qual)
			}
		}
	}

	ty := p.parseTypeSpecifier()
	full := &syntax.FullySpecifiedType{Qualifier: qual, Type: ty, Span: p.spanFrom(start)}

	if p.accept(TokenSemicolon) {
		return &syntax.InitDeclaratorList{Type: full, Span: p.spanFrom(start)}
	}

	name := p.expect(TokenIdent, "declaration")
	if p.check(TokenLParen) {
		proto := &syntax.FunctionPrototype{
			ReturnType: full,
			Name:       name.Literal,
			Params:     p.parseParams(),
		}
		proto.Span = p.spanFrom(start)
		if declaresSubroutineType(qual) {
			p.typeNames[proto.Name] = true
		}
		if atFileScope && p.check(TokenLBrace) {
			body := p.parseCompoundStmt()
			return &syntax.FunctionDefinition{
				Prototype: proto,
				Body:      body,
				Span:      p.spanFrom(start),
			}
		}
		p.expect(TokenSemicolon, "function prototype")
		proto.Span = p.spanFrom(start)
		return proto
	}

	list := &syntax.InitDeclaratorList{Type: full}
	list.Declarators = append(list.Declarators, p.parseDeclarator(name))
	for p.accept(TokenComma) {
		next := p.expect(TokenIdent, "declaration")
		list.Declarators = append(list.Declarators, p.parseDeclarator(next))
	}
	p.expect(TokenSemicolon, "declaration")
	list.Span = p.spanFrom(start)
	return list
}

// declaresSubroutineType reports whether a prototype with qualifier q
// declares a subroutine type, whose name can then be used as a type.
func declaresSubroutineType(q *syntax.TypeQualifier) bool {
	if q == nil {
		return false
	}
	for _, spec := range q.Specs {
		if sq, ok := spec.(*syntax.StorageQualifier); ok && sq.Storage == syntax.StorageSubroutine && len(sq.TypeNames) == 0 {
			return true
		}
	}
	return false
}

// parseDeclarator parses what follows a declared name: optional array
// dimensions and an optional initializer.
func (p *Parser) parseDeclarator(name Token) *syntax.Declarator {
	d := &syntax.Declarator{Name: name.Literal}
	if p.check(TokenLBracket) {
		d.Array = p.parseArraySpecifier()
	}
	if p.accept(TokenAssign) {
		d.Init = p.parseInitializer()
	}
	d.Span = p.spanFrom(name.Span.Start)
	return d
}

func (p *Parser) parsePrecisionDecl() *syntax.PrecisionDecl {
	start := p.start()
	p.expect(TokenPrecision, "precision declaration")
	tok := p.peek()
	prec, ok := precisionKinds[tok.Kind]
	if !ok {
		p.failExpected("precision declaration", TokenHighp, TokenMediump, TokenLowp)
	}
	p.advance()
	ty := p.parseTypeSpecifier()
	p.expect(TokenSemicolon, "precision declaration")
	return &syntax.PrecisionDecl{Precision: prec, Type: ty, Span: p.spanFrom(start)}
}

func (p *Parser) parseBlockDecl(start Position, qual *syntax.TypeQualifier) *syntax.BlockDecl {
	name := p.expect(TokenIdent, "interface block")
	block := &syntax.BlockDecl{Qualifier: qual, Name: name.Literal}
	block.Fields = p.parseFieldList("interface block")
	if p.check(TokenIdent) {
		tok := p.advance()
		inst := &syntax.ArrayedIdent{Name: tok.Literal}
		if p.check(TokenLBracket) {
			inst.Array = p.parseArraySpecifier()
		}
		inst.Span = p.spanFrom(tok.Span.Start)
		block.Instance = inst
	}
	p.expect(TokenSemicolon, "interface block")
	block.Span = p.spanFrom(start)
	return block
}

func (p *Parser) parseQualifierDecl(start Position, qual *syntax.TypeQualifier) *syntax.QualifierDecl {
	decl := &syntax.QualifierDecl{Qualifier: qual}
	for {
		decl.Names = append(decl.Names, p.expect(TokenIdent, "qualifier declaration").Literal)
		if !p.accept(TokenComma) {
			break
		}
	}
	p.expect(TokenSemicolon, "qualifier declaration")
	decl.Span = p.spanFrom(start)
	return decl
}

func (p *Parser) parseParams() []*syntax.ParamDecl {
	p.expect(TokenLParen, "parameter list")
	if p.accept(TokenRParen) {
		return nil
	}
	if tok := p.peek(); tok.Kind == TokenTypeName && tok.Literal == "void" && p.peekN(1).Kind == TokenRParen {
		p.advance()
		p.advance()
		return nil
	}
	var params []*syntax.ParamDecl
	for {
		params = append(params, p.parseParamDecl())
		if !p.accept(TokenComma) {
			break
		}
	}
	p.expect(TokenRParen, "parameter list")
	return params
}

func (p *Parser) parseParamDecl() *syntax.ParamDecl {
	start := p.start()
	param := &syntax.ParamDecl{}
	if isQualifierStart(p.peek().Kind) {
		param.Qualifier = p.parseTypeQualifier()
	}
	param.Type = p.parseTypeSpecifier()
	if p.check(TokenIdent) {
		param.Name = p.advance().Literal
		if p.check(TokenLBracket) {
			param.Array = p.parseArraySpecifier()
		}
	}
	param.Span = p.spanFrom(start)
	return param
}

func (p *Parser) parseFullySpecifiedType() *syntax.FullySpecifiedType {
	start := p.start()
	full := &syntax.FullySpecifiedType{}
	if isQualifierStart(p.peek().Kind) {
		full.Qualifier = p.parseTypeQualifier()
	}
	full.Type = p.parseTypeSpecifier()
	full.Span = p.spanFrom(start)
	return full
}

func (p *Parser) parseTypeSpecifier() *syntax.TypeSpecifier {
	start := p.start()
	tok := p.peek()
	ts := &syntax.TypeSpecifier{}
	switch {
	case tok.Kind == TokenTypeName:
		p.advance()
		bt, _ := syntax.LookupBasicType(tok.Literal)
		ts.Base = &syntax.BuiltinType{Type: bt, Span: tok.Span}
	case tok.Kind == TokenStruct:
		ts.Base = p.parseStructSpecifier()
	case tok.Kind == TokenIdent && p.typeNames[tok.Literal]:
		p.advance()
		ts.Base = &syntax.TypeName{Name: tok.Literal, Span: tok.Span}
	case tok.Kind == TokenIdent:
		p.failf(tok, "type specifier", "unknown type name %s", quote(tok.Literal))
	default:
		p.failExpected("type specifier", TokenTypeName, TokenStruct, TokenIdent)
	}
	if p.check(TokenLBracket) {
		ts.Array = p.parseArraySpecifier()
	}
	ts.Span = p.spanFrom(start)
	return ts
}

func (p *Parser) parseStructSpecifier() *syntax.StructSpecifier {
	start := p.start()
	p.expect(TokenStruct, "struct specifier")
	s := &syntax.StructSpecifier{}
	if p.check(TokenIdent) {
		s.Name = p.advance().Literal
		// Visible from here on, including to later declarators of the
		// same declaration.
		p.typeNames[s.Name] = true
	}
	s.Fields = p.parseFieldList("struct specifier")
	s.Span = p.spanFrom(start)
	return s
}

// parseFieldList parses "{ field; ... }" for structs and interface
// blocks.
func (p *Parser) parseFieldList(production string) []*syntax.StructField {
	p.expect(TokenLBrace, production)
	p.enter()
	defer p.leave()
	var fields []*syntax.StructField
	for !p.check(TokenRBrace) {
		if p.check(TokenEOF) {
			p.failExpected(production, TokenRBrace)
		}
		fields = append(fields, p.parseStructField())
	}
	p.expect(TokenRBrace, production)
	return fields
}

func (p *Parser) parseStructField() *syntax.StructField {
	start := p.start()
	field := &syntax.StructField{}
	if isQualifierStart(p.peek().Kind) {
		field.Qualifier = p.parseTypeQualifier()
	}
	field.Type = p.parseTypeSpecifier()
	for {
		tok := p.expect(TokenIdent, "struct field")
		id := &syntax.ArrayedIdent{Name: tok.Literal}
		if p.check(TokenLBracket) {
			id.Array = p.parseArraySpecifier()
		}
		id.Span = p.spanFrom(tok.Span.Start)
		field.Declarators = append(field.Declarators, id)
		if !p.accept(TokenComma) {
			break
		}
	}
	p.expect(TokenSemicolon, "struct field")
	field.Span = p.spanFrom(start)
	return field
}

func (p *Parser) parseArraySpecifier() *syntax.ArraySpecifier {
	start := p.start()
	arr := &syntax.ArraySpecifier{}
	for p.accept(TokenLBracket) {
		if p.accept(TokenRBracket) {
			arr.Dims = append(arr.Dims, nil)
			continue
		}
		arr.Dims = append(arr.Dims, p.parseConditional())
		p.expect(TokenRBracket, "array specifier")
	}
	arr.Span = p.spanFrom(start)
	return arr
}

func (p *Parser) parseTypeQualifier() *syntax.TypeQualifier {
	start := p.start()
	q := &syntax.TypeQualifier{}
	for isQualifierStart(p.peek().Kind) {
		q.Specs = append(q.Specs, p.parseQualifierSpec())
	}
	q.Span = p.spanFrom(start)
	return q
}

func (p *Parser) parseQualifierSpec() syntax.QualifierSpec {
	tok := p.advance()
	if storage, ok := storageKinds[tok.Kind]; ok {
		sq := &syntax.StorageQualifier{Storage: storage}
		if tok.Kind == TokenSubroutine && p.accept(TokenLParen) {
			for {
				name := p.peek()
				if name.Kind != TokenIdent && name.Kind != TokenTypeName {
					p.failExpected("subroutine qualifier", TokenIdent)
				}
				p.advance()
				sq.TypeNames = append(sq.TypeNames, name.Literal)
				if !p.accept(TokenComma) {
					break
				}
			}
			p.expect(TokenRParen, "subroutine qualifier")
		}
		sq.Span = p.spanFrom(tok.Span.Start)
		return sq
	}
	if prec, ok := precisionKinds[tok.Kind]; ok {
		return &syntax.PrecisionQualifier{Precision: prec, Span: tok.Span}
	}
	if interp, ok := interpolationKinds[tok.Kind]; ok {
		return &syntax.InterpolationQualifier{Interpolation: interp, Span: tok.Span}
	}
	switch tok.Kind {
	case TokenInvariant:
		return &syntax.InvariantQualifier{Span: tok.Span}
	case TokenPrecise:
		return &syntax.PreciseQualifier{Span: tok.Span}
	case TokenLayout:
		return p.parseLayoutRest(tok)
	}
	p.failf(tok, "type qualifier", "unexpected %s", tok.Describe())
	return nil
}

func (p *Parser) parseLayoutRest(layout Token) *syntax.LayoutQualifier {
	p.expect(TokenLParen, "layout qualifier")
	lq := &syntax.LayoutQualifier{}
	for {
		tok := p.peek()
		if tok.Kind != TokenIdent && tok.Kind != TokenShared {
			p.failExpected("layout qualifier", TokenIdent, TokenShared)
		}
		p.advance()
		id := &syntax.LayoutID{Name: tok.Literal}
		if p.accept(TokenAssign) {
			id.Value = p.parseConditional()
		}
		id.Span = p.spanFrom(tok.Span.Start)
		lq.IDs = append(lq.IDs, id)
		if !p.accept(TokenComma) {
			break
		}
	}
	p.expect(TokenRParen, "layout qualifier")
	lq.Span = p.spanFrom(layout.Span.Start)
	return lq
}

func (p *Parser) parseInitializer() syntax.Initializer {
	p.enter()
	defer p.leave()

	start := p.start()
	if !p.accept(TokenLBrace) {
		x := p.parseAssignment()
		return &syntax.ExprInitializer{X: x, Span: p.spanFrom(start)}
	}
	list := &syntax.ListInitializer{}
	for {
		list.Items = append(list.Items, p.parseInitializer())
		if !p.accept(TokenComma) || p.check(TokenRBrace) {
			break
		}
	}
	p.expect(TokenRBrace, "initializer list")
	list.Span = p.spanFrom(start)
	return list
}
