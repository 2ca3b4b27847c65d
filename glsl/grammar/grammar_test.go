package grammar

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/glslq/glsl/parser"
	"github.com/dhamidi/glslq/glsl/syntax"
)

func TestLoad(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)
	assert.Contains(t, g, Start)
	assert.Contains(t, Names(g), "SwitchStatement")
	assert.True(t, slices.IsSorted(Names(g)))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		start   string
		wantErr string
	}{
		{name: "valid", src: `A = "a" B . B = "b" .`, start: "A"},
		{name: "syntax only", src: `A = "a" B .`},
		{name: "missing production", src: `A = "a" B .`, start: "A", wantErr: "missing production B"},
		{name: "unreachable", src: `A = "a" . B = "b" .`, start: "A", wantErr: "B is unreachable"},
		{name: "lexical refers to syntactic", src: `A = b . b = A .`, start: "A", wantErr: "reference to non-lexical production A"},
		{name: "bad syntax", src: `A = "a"`, wantErr: "parse grammar"},
		{name: "no start", src: `A = "a" .`, start: "Z", wantErr: "no start production Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Check("test.ebnf", strings.NewReader(tt.src), tt.start)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWrite(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		want string
	}{
		{"Dimension", `Dimension = "[" [ ConditionalExpression ] "]" .` + "\n"},
		{"EqualityExpression", `EqualityExpression = RelationalExpression { ( "==" | "!=" ) RelationalExpression } .` + "\n"},
		{"digit", `digit = "0" … "9" .` + "\n"},
		{"PrecisionQualifier", `PrecisionQualifier = "highp" | "mediump" | "lowp" .` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, g[tt.name]))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteReparses(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	for _, name := range Names(g) {
		require.NoError(t, Write(&buf, g[name]))
	}
	again, err := Check("rendered.ebnf", bytes.NewReader(buf.Bytes()), Start)
	require.NoError(t, err)

	var rendered bytes.Buffer
	for _, name := range Names(again) {
		require.NoError(t, Write(&rendered, again[name]))
	}
	assert.Equal(t, buf.String(), rendered.String())
}

func TestTerminalsLexAsSingleTokens(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)

	for _, term := range Terminals(g) {
		t.Run(term, func(t *testing.T) {
			tokens, err := parser.Tokens([]byte(term))
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, term, tokens[0].Literal)
			assert.NotEqual(t, parser.TokenIdent, tokens[0].Kind)
			assert.Equal(t, parser.TokenEOF, tokens[1].Kind)
		})
	}
}

func TestBasicTypesMatchSyntax(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)

	assert.ElementsMatch(t, syntax.BasicTypeNames(), Alternatives(g["BasicType"]))
}

func TestIsLexical(t *testing.T) {
	assert.True(t, IsLexical("identifier"))
	assert.False(t, IsLexical("Statement"))
}
