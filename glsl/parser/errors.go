package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLex indicates a lexer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a parser failure.
	ErrParse = errors.New("parse error")
)

type LexErrorKind int

const (
	LexUnrecognizedChar LexErrorKind = iota
	LexUnterminatedComment
	LexMalformedNumber
	LexMisplacedDirective
)

func (k LexErrorKind) String() string {
	switch k {
	case LexUnrecognizedChar:
		return "unrecognized character"
	case LexUnterminatedComment:
		return "unterminated block comment"
	case LexMalformedNumber:
		return "malformed numeric literal"
	case LexMisplacedDirective:
		return "preprocessor directive must start a line"
	}
	return "lex error"
}

// LexError reports input that cannot be split into tokens. Text is the
// offending input.
type LexError struct {
	Kind LexErrorKind
	Text string
	Span Span
}

func (e *LexError) Error() string {
	msg := e.Kind.String()
	if e.Text != "" {
		msg += " " + quote(e.Text)
	}
	return locate(e.Span, msg)
}

func (e *LexError) Unwrap() error { return ErrLex }

// FormatWithContext renders the error with the offending source line and
// a caret under the error column.
func (e *LexError) FormatWithContext(source string) string {
	return withContext(source, e.Span, e.Error())
}

// ParseError reports the first token the grammar could not accept.
// Production names the rule being parsed and Expected lists the token
// kinds that would have been accepted there, when known.
type ParseError struct {
	Message    string
	Production string
	Expected   []TokenKind
	Found      Token
	Span       Span
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	if e.Message != "" {
		sb.WriteString(e.Message)
	} else {
		sb.WriteString("unexpected ")
		sb.WriteString(e.Found.Describe())
	}
	if len(e.Expected) > 0 {
		sb.WriteString(", expected ")
		for i, k := range e.Expected {
			if i > 0 {
				if i == len(e.Expected)-1 {
					sb.WriteString(" or ")
				} else {
					sb.WriteString(", ")
				}
			}
			sb.WriteString(quote(k.String()))
		}
	}
	if e.Production != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Production)
	}
	return locate(e.Span, sb.String())
}

func (e *ParseError) Unwrap() error { return ErrParse }

// FormatWithContext renders the error with the offending source line and
// a caret under the error column.
func (e *ParseError) FormatWithContext(source string) string {
	return withContext(source, e.Span, e.Error())
}

// AtEOF reports whether the parser ran out of input, which usually means
// the source is incomplete rather than wrong.
func (e *ParseError) AtEOF() bool {
	return e.Found.Kind == TokenEOF
}

func locate(span Span, msg string) string {
	if span.Start.Line == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", span.Start, msg)
}

func withContext(source string, span Span, msg string) string {
	lines := strings.Split(source, "\n")
	lineNum := span.Start.Line
	if lineNum < 1 || lineNum > len(lines) {
		return msg
	}

	line := strings.TrimRight(lines[lineNum-1], "\r")
	col := span.Start.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", msg)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", lineNum, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))
	return sb.String()
}
