// Package parser turns GLSL source text into a syntax tree.
//
// The lexer splits input into tokens; the parser is a recursive-descent
// parser with precedence climbing for binary operators. Parsing stops at
// the first error, which is returned as a *LexError or *ParseError.
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/glslq/glsl/syntax"
)

// DefaultMaxDepth bounds statement and expression nesting.
const DefaultMaxDepth = 1000

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithComments keeps comment tokens. They are returned by Comments after
// Finish, and yielded by Tokenize.
func WithComments() Option {
	return func(p *Parser) {
		p.includeComments = true
	}
}

// WithMaxDepth sets the nesting depth at which parsing fails instead of
// recursing further.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

type parseFunc func(*Parser) syntax.Node

type Parser struct {
	file            string
	includeComments bool
	maxDepth        int
	reader          io.Reader
	input           []byte
	lexer           *Lexer
	lexErr          *LexError
	tokens          []Token
	comments        []Token
	pos             int
	depth           int
	entry           parseFunc

	// typeNames holds the struct names declared so far. Built-in types
	// are recognised by the lexer.
	typeNames map[string]bool
}

// bailout carries the first error up to Finish.
type bailout struct {
	err error
}

func newParser(r io.Reader, entry parseFunc, opts []Option) *Parser {
	p := &Parser{
		maxDepth: DefaultMaxDepth,
		reader:   r,
		entry:    entry,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseTranslationUnit prepares a parser for a whole shader. Finish
// returns a *syntax.TranslationUnit.
func ParseTranslationUnit(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*Parser).parseTranslationUnit, opts)
}

// ParseExpression prepares a parser for a single expression. Finish
// returns a syntax.Expr.
func ParseExpression(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*Parser).parseExpressionEntry, opts)
}

// ParseStatement prepares a parser for a single statement. Finish
// returns a syntax.Statement.
func ParseStatement(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*Parser).parseStatementEntry, opts)
}

func (p *Parser) Comments() []Token {
	return p.comments
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	p.input = data
	return nil
}

// Finish parses the input. It may be called more than once and always
// starts from the beginning of the input.
func (p *Parser) Finish() (node syntax.Node, err error) {
	if err := p.readAll(); err != nil {
		return nil, err
	}
	p.lexer = NewLexer(p.input, p.file)
	p.lexErr = nil
	p.tokens = nil
	p.comments = nil
	p.pos = 0
	p.depth = 0
	p.typeNames = make(map[string]bool)
	p.tokenize()

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			node, err = nil, b.err
		}
	}()
	return p.entry(p), nil
}

// IsComplete reports whether the input forms a complete unit. Input that
// fails only because it ends too early, such as "x = 1 +" or an open
// block comment, is incomplete; any other outcome is complete.
func (p *Parser) IsComplete() bool {
	_, err := p.Finish()
	var pe *ParseError
	if errors.As(err, &pe) {
		return !pe.AtEOF()
	}
	var le *LexError
	if errors.As(err, &le) {
		return le.Kind != LexUnterminatedComment
	}
	return err == nil
}

func (p *Parser) Reset(r io.Reader) {
	p.reader = r
	p.input = nil
	p.lexer = nil
	p.lexErr = nil
	p.tokens = nil
	p.comments = nil
	p.pos = 0
}

func (p *Parser) tokenize() {
	for {
		tok, err := p.lexer.NextToken()
		if err != nil {
			var le *LexError
			if !errors.As(err, &le) {
				le = &LexError{Kind: LexUnrecognizedChar, Span: tok.Span}
			}
			p.lexErr = le
			tok.Kind = TokenError
			p.tokens = append(p.tokens, tok)
			return
		}
		if tok.Kind == TokenWhitespace {
			continue
		}
		if tok.Kind == TokenComment || tok.Kind == TokenLineComment {
			if p.includeComments {
				p.comments = append(p.comments, tok)
			}
			continue
		}
		p.tokens = append(p.tokens, tok)
		if tok.Kind == TokenEOF {
			return
		}
	}
}

func (p *Parser) peek() Token {
	return p.peekN(0)
}

// peekN looks n tokens ahead. Looking at the position of a lex error
// aborts the parse with that error.
func (p *Parser) peekN(n int) Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	tok := p.tokens[i]
	if tok.Kind == TokenError {
		panic(bailout{p.lexErr})
	}
	return tok
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// accept consumes the next token if it has the given kind.
func (p *Parser) accept(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or aborts with a ParseError
// naming production.
func (p *Parser) expect(kind TokenKind, production string) Token {
	if p.check(kind) {
		return p.advance()
	}
	p.failExpected(production, kind)
	panic("unreachable")
}

func (p *Parser) start() Position {
	return p.peek().Span.Start
}

// spanFrom returns the span from start to the end of the last consumed
// token.
func (p *Parser) spanFrom(start Position) Span {
	end := start
	if p.pos > 0 {
		end = p.tokens[p.pos-1].Span.End
	}
	if end.Offset < start.Offset {
		end = start
	}
	return Span{Start: start, End: end}
}

func (p *Parser) failExpected(production string, expected ...TokenKind) {
	tok := p.peek()
	panic(bailout{&ParseError{
		Production: production,
		Expected:   expected,
		Found:      tok,
		Span:       tok.Span,
	}})
}

func (p *Parser) failf(tok Token, production, format string, args ...any) {
	panic(bailout{&ParseError{
		Message:    fmt.Sprintf(format, args...),
		Production: production,
		Found:      tok,
		Span:       tok.Span,
	}})
}

// enter guards recursion depth; every call must be paired with leave.
func (p *Parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.failf(p.peek(), "", "nesting exceeds maximum depth of %d", p.maxDepth)
	}
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) parseTranslationUnit() syntax.Node {
	start := p.start()
	tu := &syntax.TranslationUnit{}
	for !p.check(TokenEOF) {
		// Stray semicolons at file scope are empty declarations.
		if p.accept(TokenSemicolon) {
			continue
		}
		tu.Decls = append(tu.Decls, p.parseExternalDecl())
	}
	tu.Span = p.spanFrom(start)
	return tu
}

func (p *Parser) parseExpressionEntry() syntax.Node {
	x := p.parseExpression()
	p.expect(TokenEOF, "expression")
	return x
}

func (p *Parser) parseStatementEntry() syntax.Node {
	s := p.parseStatement()
	p.expect(TokenEOF, "statement")
	return s
}
