package parser

import (
	"strings"
)

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int

	// lineStart is true while only blanks and comments have been seen on
	// the current line; a '#' is a directive only then.
	lineStart bool
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:     input,
		file:      file,
		pos:       0,
		line:      1,
		column:    1,
		lineStart: true,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token including whitespace and comments.
// At the end of input it keeps returning TokenEOF. A malformed input
// yields a *LexError and a TokenError token.
func (l *Lexer) NextToken() (Token, error) {
	startPos := l.Position()

	if l.atEOF() {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}, nil
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(startPos), nil
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}

	if isSpace(ch) {
		return l.scanWhitespace(startPos), nil
	}

	if ch == '#' {
		if !l.lineStart {
			l.advance()
			return l.fail(LexMisplacedDirective, startPos)
		}
		return l.scanDirective(startPos), nil
	}

	l.lineStart = false

	if isLetter(ch) {
		return l.scanIdentOrKeyword(startPos), nil
	}

	if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
		return l.scanNumber(startPos)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) fail(kind LexErrorKind, start Position) (Token, error) {
	tok := l.token(TokenError, start)
	return tok, &LexError{Kind: kind, Text: tok.Literal, Span: tok.Span}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isSpace(l.peek()) {
		if l.advance() == '\n' {
			l.lineStart = true
		}
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	tok := l.token(TokenLineComment, start)
	tok.Literal = strings.TrimRight(tok.Literal, "\r")
	return tok
}

func (l *Lexer) scanBlockComment(start Position) (Token, error) {
	l.advanceN(2)
	for {
		if l.atEOF() {
			tok := l.token(TokenError, start)
			return tok, &LexError{Kind: LexUnterminatedComment, Span: Span{Start: start, End: start}}
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		if l.advance() == '\n' {
			l.lineStart = true
		}
	}
	return l.token(TokenComment, start), nil
}

// scanDirective consumes a preprocessor line up to the next newline not
// escaped by a backslash.
func (l *Lexer) scanDirective(start Position) Token {
	for !l.atEOF() {
		ch := l.peek()
		if ch == '\\' && l.peekN(1) == '\n' {
			l.advanceN(2)
			continue
		}
		if ch == '\\' && l.peekN(1) == '\r' && l.peekN(2) == '\n' {
			l.advanceN(3)
			continue
		}
		if ch == '\n' {
			break
		}
		l.advance()
	}
	tok := l.token(TokenDirective, start)
	tok.Literal = strings.TrimRight(tok.Literal, " \t\r")
	return tok
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for isLetterOrDigit(l.peek()) {
		l.advance()
	}
	end := l.Position()
	literal := string(l.input[start.Offset:end.Offset])
	return Token{
		Kind:    LookupKeyword(literal),
		Span:    Span{Start: start, End: end},
		Literal: literal,
	}
}

func (l *Lexer) scanNumber(start Position) (Token, error) {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		return l.scanHexNumber(start)
	}

	isFloat := false
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			return l.malformedNumber(start)
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	switch ch := l.peek(); {
	case ch == 'f' || ch == 'F':
		isFloat = true
		l.advance()
	case (ch == 'l' && l.peekN(1) == 'f') || (ch == 'L' && l.peekN(1) == 'F'):
		isFloat = true
		l.advanceN(2)
	case (ch == 'u' || ch == 'U') && !isFloat:
		l.advance()
	}

	if isLetterOrDigit(l.peek()) {
		return l.malformedNumber(start)
	}

	tok := l.token(TokenIntLiteral, start)
	if isFloat {
		tok.Kind = TokenFloatLiteral
	} else if !validOctal(tok.Literal) {
		tok.Kind = TokenError
		return tok, &LexError{Kind: LexMalformedNumber, Text: tok.Literal, Span: tok.Span}
	}
	return tok, nil
}

func (l *Lexer) scanHexNumber(start Position) (Token, error) {
	l.advanceN(2)
	if !isHexDigit(l.peek()) {
		return l.malformedNumber(start)
	}
	for isHexDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == 'u' || l.peek() == 'U' {
		l.advance()
	}
	if isLetterOrDigit(l.peek()) {
		return l.malformedNumber(start)
	}
	return l.token(TokenIntLiteral, start), nil
}

// malformedNumber swallows the rest of the word so the error covers the
// whole literal.
func (l *Lexer) malformedNumber(start Position) (Token, error) {
	for isLetterOrDigit(l.peek()) || l.peek() == '.' {
		l.advance()
	}
	return l.fail(LexMalformedNumber, start)
}

// validOctal rejects integers with a leading zero and a digit 8 or 9.
func validOctal(lit string) bool {
	lit = strings.TrimRight(lit, "uU")
	if len(lit) < 2 || lit[0] != '0' {
		return true
	}
	return !strings.ContainsAny(lit, "89")
}

func (l *Lexer) scanOperator(start Position) (Token, error) {
	ch := l.peek()

	single := func(kind TokenKind) (Token, error) {
		l.advance()
		return l.token(kind, start), nil
	}
	// pick consumes one or two characters: the two-character form when
	// the next byte is next.
	pick := func(next byte, double, one TokenKind) (Token, error) {
		if l.peekN(1) == next {
			l.advanceN(2)
			return l.token(double, start), nil
		}
		l.advance()
		return l.token(one, start), nil
	}

	switch ch {
	case '(':
		return single(TokenLParen)
	case ')':
		return single(TokenRParen)
	case '[':
		return single(TokenLBracket)
	case ']':
		return single(TokenRBracket)
	case '{':
		return single(TokenLBrace)
	case '}':
		return single(TokenRBrace)
	case '.':
		return single(TokenDot)
	case ',':
		return single(TokenComma)
	case ':':
		return single(TokenColon)
	case ';':
		return single(TokenSemicolon)
	case '?':
		return single(TokenQuestion)
	case '~':
		return single(TokenTilde)

	case '+':
		if l.peekN(1) == '+' {
			l.advanceN(2)
			return l.token(TokenInc, start), nil
		}
		return pick('=', TokenAddAssign, TokenPlus)
	case '-':
		if l.peekN(1) == '-' {
			l.advanceN(2)
			return l.token(TokenDec, start), nil
		}
		return pick('=', TokenSubAssign, TokenMinus)
	case '*':
		return pick('=', TokenMulAssign, TokenStar)
	case '/':
		return pick('=', TokenDivAssign, TokenSlash)
	case '%':
		return pick('=', TokenModAssign, TokenPercent)
	case '!':
		return pick('=', TokenNE, TokenBang)
	case '=':
		return pick('=', TokenEQ, TokenAssign)

	case '<':
		if l.peekN(1) == '<' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.token(TokenShlAssign, start), nil
			}
			l.advanceN(2)
			return l.token(TokenShl, start), nil
		}
		return pick('=', TokenLE, TokenLT)
	case '>':
		if l.peekN(1) == '>' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.token(TokenShrAssign, start), nil
			}
			l.advanceN(2)
			return l.token(TokenShr, start), nil
		}
		return pick('=', TokenGE, TokenGT)

	case '&':
		if l.peekN(1) == '&' {
			l.advanceN(2)
			return l.token(TokenAndAnd, start), nil
		}
		return pick('=', TokenAndAssign, TokenAmp)
	case '|':
		if l.peekN(1) == '|' {
			l.advanceN(2)
			return l.token(TokenOrOr, start), nil
		}
		return pick('=', TokenOrAssign, TokenPipe)
	case '^':
		if l.peekN(1) == '^' {
			l.advanceN(2)
			return l.token(TokenXorXor, start), nil
		}
		return pick('=', TokenXorAssign, TokenCaret)
	}

	l.advanceRune()
	return l.fail(LexUnrecognizedChar, start)
}

// advanceRune consumes one UTF-8 encoded character.
func (l *Lexer) advanceRune() {
	l.advance()
	for !l.atEOF() && l.peek()&0xC0 == 0x80 {
		l.advance()
	}
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
