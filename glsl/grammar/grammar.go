// Package grammar holds a reference EBNF grammar for the GLSL syntax the
// parser accepts. Productions starting with a capital letter are
// syntactic, lowercase ones are lexical.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

const (
	FileName = "glsl.ebnf"
	Start    = "TranslationUnit"
)

//go:embed glsl.ebnf
var source []byte

// Source returns the text of the embedded grammar.
func Source() []byte {
	return bytes.Clone(source)
}

var load = sync.OnceValues(func() (ebnf.Grammar, error) {
	return Check(FileName, bytes.NewReader(source), Start)
})

// Load parses and verifies the embedded grammar.
func Load() (ebnf.Grammar, error) {
	return load()
}

// Check parses a grammar and verifies that every production is defined
// and reachable from start. An empty start only checks the syntax.
func Check(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if start == "" {
		return g, nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// IsLexical reports whether name is a lexical production.
func IsLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// Names returns the production names of g in sorted order.
func Names(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Terminals returns the distinct literal tokens used by the syntactic
// productions of g, sorted.
func Terminals(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for name, prod := range g {
		if IsLexical(name) {
			continue
		}
		collectTokens(prod.Expr, seen)
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	slices.Sort(out)
	return out
}

func collectTokens(expr ebnf.Expression, seen map[string]bool) {
	switch x := expr.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			collectTokens(e, seen)
		}
	case ebnf.Sequence:
		for _, e := range x {
			collectTokens(e, seen)
		}
	case *ebnf.Token:
		seen[x.String] = true
	case *ebnf.Group:
		collectTokens(x.Body, seen)
	case *ebnf.Option:
		collectTokens(x.Body, seen)
	case *ebnf.Repetition:
		collectTokens(x.Body, seen)
	}
}

// Alternatives returns the tokens a production chooses between when its
// body is a plain list of tokens, as for BasicType.
func Alternatives(prod *ebnf.Production) []string {
	alt, ok := prod.Expr.(ebnf.Alternative)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range alt {
		if tok, ok := e.(*ebnf.Token); ok {
			out = append(out, tok.String)
		}
	}
	return out
}

// Write renders prod on a single line.
func Write(w io.Writer, prod *ebnf.Production) error {
	var sb strings.Builder
	sb.WriteString(prod.Name.String)
	sb.WriteString(" =")
	if prod.Expr != nil {
		sb.WriteByte(' ')
		writeExpr(&sb, prod.Expr)
	}
	sb.WriteString(" .\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeExpr(sb *strings.Builder, expr ebnf.Expression) {
	switch x := expr.(type) {
	case ebnf.Alternative:
		for i, e := range x {
			if i > 0 {
				sb.WriteString(" | ")
			}
			writeExpr(sb, e)
		}
	case ebnf.Sequence:
		for i, e := range x {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeExpr(sb, e)
		}
	case *ebnf.Name:
		sb.WriteString(x.String)
	case *ebnf.Token:
		sb.WriteString(strconv.Quote(x.String))
	case *ebnf.Range:
		sb.WriteString(strconv.Quote(x.Begin.String))
		sb.WriteString(" … ")
		sb.WriteString(strconv.Quote(x.End.String))
	case *ebnf.Group:
		sb.WriteString("( ")
		writeExpr(sb, x.Body)
		sb.WriteString(" )")
	case *ebnf.Option:
		sb.WriteString("[ ")
		writeExpr(sb, x.Body)
		sb.WriteString(" ]")
	case *ebnf.Repetition:
		sb.WriteString("{ ")
		writeExpr(sb, x.Body)
		sb.WriteString(" }")
	}
}
