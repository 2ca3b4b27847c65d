package parser

import (
	"github.com/dhamidi/glslq/glsl/syntax"
)

type (
	Position = syntax.Position
	Span     = syntax.Span
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment
	TokenLineComment
	TokenDirective

	// Names and literals
	TokenIdent
	TokenTypeName
	TokenIntLiteral
	TokenFloatLiteral
	TokenBoolLiteral

	// Keywords
	TokenAttribute
	TokenBreak
	TokenBuffer
	TokenCase
	TokenCentroid
	TokenCoherent
	TokenConst
	TokenContinue
	TokenDefault
	TokenDiscard
	TokenDo
	TokenElse
	TokenFlat
	TokenFor
	TokenHighp
	TokenIf
	TokenIn
	TokenInOut
	TokenInvariant
	TokenLayout
	TokenLowp
	TokenMediump
	TokenNoPerspective
	TokenOut
	TokenPatch
	TokenPrecise
	TokenPrecision
	TokenReadOnly
	TokenRestrict
	TokenReturn
	TokenSample
	TokenShared
	TokenSmooth
	TokenStruct
	TokenSubroutine
	TokenSwitch
	TokenUniform
	TokenVarying
	TokenVolatile
	TokenWhile
	TokenWriteOnly
	TokenReserved

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenDot
	TokenComma
	TokenColon
	TokenSemicolon
	TokenQuestion

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenInc
	TokenDec
	TokenBang
	TokenTilde
	TokenLT
	TokenGT
	TokenLE
	TokenGE
	TokenEQ
	TokenNE
	TokenAmp
	TokenPipe
	TokenCaret
	TokenAndAnd
	TokenOrOr
	TokenXorXor
	TokenShl
	TokenShr

	// Assignment operators
	TokenAssign
	TokenMulAssign
	TokenDivAssign
	TokenModAssign
	TokenAddAssign
	TokenSubAssign
	TokenShlAssign
	TokenShrAssign
	TokenAndAssign
	TokenXorAssign
	TokenOrAssign
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:          "EOF",
	TokenError:        "Error",
	TokenWhitespace:   "Whitespace",
	TokenComment:      "Comment",
	TokenLineComment:  "LineComment",
	TokenDirective:    "Directive",
	TokenIdent:        "Identifier",
	TokenTypeName:     "TypeName",
	TokenIntLiteral:   "IntLiteral",
	TokenFloatLiteral: "FloatLiteral",
	TokenBoolLiteral:  "BoolLiteral",

	TokenAttribute:     "attribute",
	TokenBreak:         "break",
	TokenBuffer:        "buffer",
	TokenCase:          "case",
	TokenCentroid:      "centroid",
	TokenCoherent:      "coherent",
	TokenConst:         "const",
	TokenContinue:      "continue",
	TokenDefault:       "default",
	TokenDiscard:       "discard",
	TokenDo:            "do",
	TokenElse:          "else",
	TokenFlat:          "flat",
	TokenFor:           "for",
	TokenHighp:         "highp",
	TokenIf:            "if",
	TokenIn:            "in",
	TokenInOut:         "inout",
	TokenInvariant:     "invariant",
	TokenLayout:        "layout",
	TokenLowp:          "lowp",
	TokenMediump:       "mediump",
	TokenNoPerspective: "noperspective",
	TokenOut:           "out",
	TokenPatch:         "patch",
	TokenPrecise:       "precise",
	TokenPrecision:     "precision",
	TokenReadOnly:      "readonly",
	TokenRestrict:      "restrict",
	TokenReturn:        "return",
	TokenSample:        "sample",
	TokenShared:        "shared",
	TokenSmooth:        "smooth",
	TokenStruct:        "struct",
	TokenSubroutine:    "subroutine",
	TokenSwitch:        "switch",
	TokenUniform:       "uniform",
	TokenVarying:       "varying",
	TokenVolatile:      "volatile",
	TokenWhile:         "while",
	TokenWriteOnly:     "writeonly",
	TokenReserved:      "ReservedWord",

	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenDot:       ".",
	TokenComma:     ",",
	TokenColon:     ":",
	TokenSemicolon: ";",
	TokenQuestion:  "?",

	TokenPlus:    "+",
	TokenMinus:   "-",
	TokenStar:    "*",
	TokenSlash:   "/",
	TokenPercent: "%",
	TokenInc:     "++",
	TokenDec:     "--",
	TokenBang:    "!",
	TokenTilde:   "~",
	TokenLT:      "<",
	TokenGT:      ">",
	TokenLE:      "<=",
	TokenGE:      ">=",
	TokenEQ:      "==",
	TokenNE:      "!=",
	TokenAmp:     "&",
	TokenPipe:    "|",
	TokenCaret:   "^",
	TokenAndAnd:  "&&",
	TokenOrOr:    "||",
	TokenXorXor:  "^^",
	TokenShl:     "<<",
	TokenShr:     ">>",

	TokenAssign:    "=",
	TokenMulAssign: "*=",
	TokenDivAssign: "/=",
	TokenModAssign: "%=",
	TokenAddAssign: "+=",
	TokenSubAssign: "-=",
	TokenShlAssign: "<<=",
	TokenShrAssign: ">>=",
	TokenAndAssign: "&=",
	TokenXorAssign: "^=",
	TokenOrAssign:  "|=",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether tokens of kind k carry no grammar meaning.
func (k TokenKind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenComment || k == TokenLineComment
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

// Describe renders t for error messages.
func (t Token) Describe() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier " + quote(t.Literal)
	case TokenTypeName:
		return "type " + quote(t.Literal)
	case TokenIntLiteral, TokenFloatLiteral, TokenBoolLiteral:
		return "literal " + t.Literal
	case TokenDirective:
		return "directive " + quote(t.Literal)
	}
	return quote(t.Literal)
}

func quote(s string) string {
	return "'" + s + "'"
}

var keywords = map[string]TokenKind{
	"attribute":     TokenAttribute,
	"break":         TokenBreak,
	"buffer":        TokenBuffer,
	"case":          TokenCase,
	"centroid":      TokenCentroid,
	"coherent":      TokenCoherent,
	"const":         TokenConst,
	"continue":      TokenContinue,
	"default":       TokenDefault,
	"discard":       TokenDiscard,
	"do":            TokenDo,
	"else":          TokenElse,
	"flat":          TokenFlat,
	"for":           TokenFor,
	"highp":         TokenHighp,
	"if":            TokenIf,
	"in":            TokenIn,
	"inout":         TokenInOut,
	"invariant":     TokenInvariant,
	"layout":        TokenLayout,
	"lowp":          TokenLowp,
	"mediump":       TokenMediump,
	"noperspective": TokenNoPerspective,
	"out":           TokenOut,
	"patch":         TokenPatch,
	"precise":       TokenPrecise,
	"precision":     TokenPrecision,
	"readonly":      TokenReadOnly,
	"restrict":      TokenRestrict,
	"return":        TokenReturn,
	"sample":        TokenSample,
	"shared":        TokenShared,
	"smooth":        TokenSmooth,
	"struct":        TokenStruct,
	"subroutine":    TokenSubroutine,
	"switch":        TokenSwitch,
	"uniform":       TokenUniform,
	"varying":       TokenVarying,
	"volatile":      TokenVolatile,
	"while":         TokenWhile,
	"writeonly":     TokenWriteOnly,
	"true":          TokenBoolLiteral,
	"false":         TokenBoolLiteral,
}

// Words reserved for future use by the GLSL specification. Using one is
// a syntax error.
var reserved = map[string]bool{
	"common": true, "partition": true, "active": true, "asm": true,
	"class": true, "union": true, "enum": true, "typedef": true,
	"template": true, "this": true, "resource": true, "goto": true,
	"inline": true, "noinline": true, "public": true, "static": true,
	"extern": true, "external": true, "interface": true, "long": true,
	"short": true, "half": true, "fixed": true, "unsigned": true,
	"superp": true, "input": true, "output": true, "hvec2": true,
	"hvec3": true, "hvec4": true, "fvec2": true, "fvec3": true,
	"fvec4": true, "filter": true, "sizeof": true, "cast": true,
	"namespace": true, "using": true, "sampler3DRect": true,
}

// LookupKeyword classifies an identifier-shaped word.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	if _, ok := syntax.LookupBasicType(ident); ok {
		return TokenTypeName
	}
	if reserved[ident] {
		return TokenReserved
	}
	return TokenIdent
}
