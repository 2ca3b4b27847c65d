package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/glslq/glsl/parser"
	"github.com/dhamidi/glslq/glsl/syntax"
)

func parseExpr(t *testing.T, input string) syntax.Expr {
	t.Helper()
	node, err := parser.ParseExpression(strings.NewReader(input)).Finish()
	require.NoError(t, err, "parse error for input %q", input)
	return node.(syntax.Expr)
}

func parseTU(t *testing.T, input string) *syntax.TranslationUnit {
	t.Helper()
	tu, err := parseSource([]byte(input))
	require.NoError(t, err, "parse error for input %q", input)
	return tu
}

func formatExpr(t *testing.T, input string) string {
	t.Helper()
	return Print(parseExpr(t, input))
}

func TestPrintExpr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"precedence", "a + b * c", "a + b * c"},
		{"grouping kept", "(a + b) * c", "(a + b) * c"},
		{"right operand grouping", "a - (b - c)", "a - (b - c)"},
		{"redundant parens dropped", "(a - b) - c", "a - b - c"},
		{"same precedence on the right", "a * (b / c)", "a * (b / c)"},
		{"logical grouping", "(a || b) && c", "(a || b) && c"},
		{"chained assignment", "a = b = c", "a = b = c"},
		{"assignment operand", "(a = b) + 1", "(a = b) + 1"},
		{"comma in assignment", "a = (b, c)", "a = (b, c)"},
		{"comma argument", "f((a, b))", "f((a, b))"},
		{"comma index", "m[(a, b)]", "m[a, b]"},
		{"nested else ternary", "a ? b : (c ? d : e)", "a ? b : c ? d : e"},
		{"ternary condition", "(a ? b : c) ? d : e", "(a ? b : c) ? d : e"},
		{"comma in then branch", "a ? (b, c) : d", "a ? b, c : d"},
		{"double negation", "- -x", "-(-x)"},
		{"negated decrement", "-(--x)", "-(--x)"},
		{"plus increment", "+(++x)", "+(++x)"},
		{"not of binary", "!(a && b)", "!(a && b)"},
		{"postfix chain", "-a.b[1]++", "-a.b[1]++"},
		{"field of unary", "(-a).b", "(-a).b"},
		{"field of binary", "(a + b).x", "(a + b).x"},
		{"field of int literal", "(1).x", "(1).x"},
		{"field of float literal", "1.0.x", "1.0.x"},
		{"increments", "x++ + ++y", "x++ + ++y"},
		{"swizzle of constructor", "vec4(p, 1.0).xyz", "vec4(p, 1.0).xyz"},
		{"array constructor", "float[2](1.0,2.0)", "float[2](1.0, 2.0)"},
		{"length method", "a.length()", "a.length()"},
		{"compound assignment", "x<<=2", "x <<= 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatExpr(t, tt.input))
		})
	}
}

func TestPrintLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1"},
		{"0x10", "16"},
		{"017", "15"},
		{"3u", "3u"},
		{"0xFFU", "255u"},
		{"1.0", "1.0"},
		{"0.0", "0.0"},
		{"1.", "1.0"},
		{"0.1", "0.1"},
		{"2.5f", "2.5"},
		{"100000.0", "100000.0"},
		{"1000000.0", "1e+06"},
		{"1e10", "1e+10"},
		{"1.5e-7", "1.5e-07"},
		{"2.5lf", "2.5lf"},
		{"4LF", "4.0lf"},
		{"true", "true"},
		{"false", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatExpr(t, tt.input))
		})
	}
}

func TestPrintTranslationUnit(t *testing.T) {
	input := `#version 450 core
layout(location=0) in vec3 pos;
uniform Camera{mat4 view;mat4 proj;}cam;
struct Light{vec3 color;float k[2];};
float f(in float x,float);
void main(){Light l=Light(vec3(1.0),float[2](1.0,2.0));if(pos.x>0.0)l.k[0]=1.0;else{discard;}for(int i=0;i<2;i++){gl_Position+=cam.proj*vec4(pos,1.0);}
switch(int(l.k[0])){case 0:break;default:return;}}`

	expected := `#version 450 core
layout(location = 0) in vec3 pos;
uniform Camera {
    mat4 view;
    mat4 proj;
} cam;
struct Light {
    vec3 color;
    float k[2];
};
float f(in float x, float);

void main() {
    Light l = Light(vec3(1.0), float[2](1.0, 2.0));
    if (pos.x > 0.0)
        l.k[0] = 1.0;
    else {
        discard;
    }
    for (int i = 0; i < 2; i++) {
        gl_Position += cam.proj * vec4(pos, 1.0);
    }
    switch (int(l.k[0])) {
        case 0:
            break;
        default:
            return;
    }
}
`
	assert.Equal(t, expected, Print(parseTU(t, input)))
}

func TestPrintStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty function", "void main(){}", "void main() {}\n"},
		{"else if chain", "void main(){if(a){x();}else if(b){y();}else{z();}}",
			"void main() {\n    if (a) {\n        x();\n    } else if (b) {\n        y();\n    } else {\n        z();\n    }\n}\n"},
		{"while with declaration", "void main(){while(bool more=next())step();}",
			"void main() {\n    while (bool more = next())\n        step();\n}\n"},
		{"do while", "void main(){do x--;while(x>0);}",
			"void main() {\n    do\n        x--;\n    while (x > 0);\n}\n"},
		{"empty for", "void main(){for(;;){break;}}",
			"void main() {\n    for (;;) {\n        break;\n    }\n}\n"},
		{"empty statement", "void main(){;}", "void main() {\n    ;\n}\n"},
		{"list initializer", "float a[2]={1.0,2.0,};", "float a[2] = {1.0, 2.0};\n"},
		{"qualifiers", "layout(local_size_x=8,local_size_y=8)in;invariant gl_Position;precision mediump float;",
			"layout(local_size_x = 8, local_size_y = 8) in;\ninvariant gl_Position;\nprecision mediump float;\n"},
		{"subroutine", "subroutine(a,b)vec4 f();", "subroutine(a, b) vec4 f();\n"},
		{"directive in body", "void main(){\n#ifdef A\nx();\n#endif\n}",
			"void main() {\n    #ifdef A\n    x();\n    #endif\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Print(parseTU(t, tt.input)))
		})
	}
}

func TestPrintRoundTrip(t *testing.T) {
	sources := []string{
		"void main() { gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0); }",
		"float f(float x) { return x > 0.0 ? x * 2.0 : -x; }",
		"void main() { int a = 1, b[2] = int[2](1, 2); a += b[0] << 2 | 1; }",
		"void main() { if (a) if (b) x(); else y(); }",
		"void main() { if (a) { if (b) x(); } else y(); }",
		"void main() { for (int i = 0; i < 10; ++i) { if (i == 5) continue; } }",
		"struct S { float a; vec2 b[3]; }; S s[2]; void main() { s[0].b[1].x = -(-s[1].a); }",
		"void main() { x = a ^^ b ? (c, d) : e = f; }",
		"layout(std430, binding = 1) buffer Data { uint values[]; };",
		"#version 310 es\nprecision highp float;\nout vec4 color;\nvoid main() { color = vec4(0.0); }\n",
		"void main() { switch (x) { case 1: case 2: y(); break; default: discard; } }",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			tu := parseTU(t, src)
			printed := Print(tu)
			reparsed := parseTU(t, printed)
			assert.True(t, syntax.Equal(tu, reparsed), "tree changed:\n%s\n%s", printed, syntax.Diff(tu, reparsed))
			assert.Equal(t, printed, Print(reparsed), "printing is not idempotent")
		})
	}
}

func TestPrintDanglingElse(t *testing.T) {
	call := func(name string) syntax.Statement {
		return &syntax.ExprStmt{X: &syntax.CallExpr{Func: &syntax.Ident{Name: name}}}
	}
	stmt := &syntax.IfStmt{
		Cond: &syntax.Ident{Name: "a"},
		Then: &syntax.IfStmt{Cond: &syntax.Ident{Name: "b"}, Then: call("x")},
		Else: call("y"),
	}

	out := Print(stmt)
	assert.Equal(t, "if (a) {\n    if (b)\n        x();\n} else\n    y();\n", out)

	node, err := parser.ParseStatement(strings.NewReader(out)).Finish()
	require.NoError(t, err)
	reparsed := node.(*syntax.IfStmt)
	require.NotNil(t, reparsed.Else)
	assert.IsType(t, &syntax.CompoundStmt{}, reparsed.Then)
}

func TestPrintWithIndent(t *testing.T) {
	tu := parseTU(t, "void main() { if (a) { x(); } }")
	assert.Equal(t, "void main() {\n\tif (a) {\n\t\tx();\n\t}\n}\n", Print(tu, WithIndent("\t")))
}

func TestSourceKeepsComments(t *testing.T) {
	src := `// header comment
#version 450

/* uniforms */
uniform float t; // time

void main() {
    // body
    float x = t; /* trailing */
    x++;

    // closing
}
`
	out, err := Source([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestSourceMovesInnerComments(t *testing.T) {
	src := "void main() {\n    x = a + // note\n        b;\n    y();\n}\n"
	out, err := Source([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "void main() {\n    x = a + b;\n    // note\n    y();\n}\n", string(out))

	again, err := Source(out)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestSourceCommentOnlyBlock(t *testing.T) {
	out, err := Source([]byte("void main() { /* nothing */ }"))
	require.NoError(t, err)
	assert.Equal(t, "void main() {\n    /* nothing */\n}\n", string(out))
}

func TestSourceCollapsesBlankLines(t *testing.T) {
	out, err := Source([]byte("int a;\n\n\n\nint b;\nint c;\n"))
	require.NoError(t, err)
	assert.Equal(t, "int a;\n\nint b;\nint c;\n", string(out))
}

func TestSourceError(t *testing.T) {
	_, err := SourceFile([]byte("void main() { x = ; }"), "bad.frag")
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "bad.frag:1:19")
}

func TestASTJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewASTJSONEncoder(&buf).Encode(parseExpr(t, "a + 1")))

	var got struct {
		Kind     string `json:"kind"`
		Text     string `json:"text"`
		Children []struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "BinaryExpr", got.Kind)
	assert.Equal(t, "+", got.Text)
	require.Len(t, got.Children, 2)
	assert.Equal(t, "Ident", got.Children[0].Kind)
	assert.Equal(t, "a", got.Children[0].Text)
	assert.Equal(t, "IntLiteral", got.Children[1].Kind)
	assert.Equal(t, "1", got.Children[1].Text)
}

func TestASTYAMLEncoder(t *testing.T) {
	text, err := NewASTYAMLEncoder(nil).MarshalText(parseTU(t, "void main() {}"))
	require.NoError(t, err)
	out := string(text)
	assert.Contains(t, out, "kind: TranslationUnit")
	assert.Contains(t, out, "kind: FunctionDefinition")
	assert.Contains(t, out, "text: main")
}

func TestASTTreeEncoder(t *testing.T) {
	text, err := NewASTTreeEncoder(nil).MarshalText(parseExpr(t, "a + b"))
	require.NoError(t, err)
	expected := "BinaryExpr \"+\" 1:1-1:6\n" +
		"  Ident \"a\" 1:1-1:2\n" +
		"  Ident \"b\" 1:5-1:6\n"
	assert.Equal(t, expected, string(text))
}

func TestNewEncoder(t *testing.T) {
	for _, name := range EncoderNames {
		enc, err := NewEncoder(name, &bytes.Buffer{})
		require.NoError(t, err, name)
		assert.NotNil(t, enc)
	}
	_, err := NewEncoder("xml", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTokenLineEncoder(t *testing.T) {
	tokens, err := parser.Tokens([]byte("x;"))
	require.NoError(t, err)
	text, err := NewTokenLineEncoder(nil).MarshalText(tokens)
	require.NoError(t, err)
	assert.Equal(t, "1:1\tIdentifier\t\"x\"\n1:2\t;\t\";\"\n1:3\tEOF\t-\n", string(text))
}

func TestTokenJSONEncoder(t *testing.T) {
	tokens, err := parser.Tokens([]byte("vec3"))
	require.NoError(t, err)
	text, err := NewTokenJSONEncoder(nil).MarshalText(tokens)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(text, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "TypeName", got[0]["kind"])
	assert.Equal(t, "vec3", got[0]["literal"])
	assert.Equal(t, "EOF", got[1]["kind"])
}
