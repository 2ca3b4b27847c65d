package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/glslq/glsl/syntax"
)

func parseTU(t *testing.T, src string) *syntax.TranslationUnit {
	t.Helper()
	node, err := ParseTranslationUnit(strings.NewReader(src)).Finish()
	require.NoError(t, err)
	tu, ok := node.(*syntax.TranslationUnit)
	require.True(t, ok, "got %T", node)
	return tu
}

func parseExpr(t *testing.T, src string) syntax.Expr {
	t.Helper()
	node, err := ParseExpression(strings.NewReader(src)).Finish()
	require.NoError(t, err)
	return node.(syntax.Expr)
}

func parseErr(t *testing.T, src string) *ParseError {
	t.Helper()
	_, err := ParseTranslationUnit(strings.NewReader(src)).Finish()
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, errors.Is(err, ErrParse))
	return pe
}

func id(name string) *syntax.Ident { return &syntax.Ident{Name: name} }

func bin(op syntax.BinaryOp, x, y syntax.Expr) *syntax.BinaryExpr {
	return &syntax.BinaryExpr{Op: op, X: x, Y: y}
}

func assertExpr(t *testing.T, want, got syntax.Node) {
	t.Helper()
	assert.True(t, syntax.Equal(want, got), "mismatch (-want +got):\n%s", syntax.Diff(want, got))
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		input string
		want  syntax.Expr
	}{
		{"a + b * c", bin(syntax.Add, id("a"), bin(syntax.Mul, id("b"), id("c")))},
		{"(a + b) * c", bin(syntax.Mul, bin(syntax.Add, id("a"), id("b")), id("c"))},
		{"a - b - c", bin(syntax.Sub, bin(syntax.Sub, id("a"), id("b")), id("c"))},
		{"a || b ^^ c && d", bin(syntax.LogicalOr, id("a"), bin(syntax.LogicalXor, id("b"), bin(syntax.LogicalAnd, id("c"), id("d"))))},
		{"a | b ^ c & d", bin(syntax.BitOr, id("a"), bin(syntax.BitXor, id("b"), bin(syntax.BitAnd, id("c"), id("d"))))},
		{"a == b < c", bin(syntax.Eq, id("a"), bin(syntax.Lt, id("b"), id("c")))},
		{"a << 1 + b", bin(syntax.ShiftLeft, id("a"), bin(syntax.Add, &syntax.IntLiteral{Value: 1}, id("b")))},
		{"a = b = c", &syntax.AssignExpr{Op: syntax.Assign, LHS: id("a"), RHS: &syntax.AssignExpr{Op: syntax.Assign, LHS: id("b"), RHS: id("c")}}},
		{"x += 2", &syntax.AssignExpr{Op: syntax.AddAssign, LHS: id("x"), RHS: &syntax.IntLiteral{Value: 2}}},
		{"a ? b : c ? d : e", &syntax.TernaryExpr{Cond: id("a"), Then: id("b"), Else: &syntax.TernaryExpr{Cond: id("c"), Then: id("d"), Else: id("e")}}},
		{"a ? b : c = d", &syntax.TernaryExpr{Cond: id("a"), Then: id("b"), Else: &syntax.AssignExpr{Op: syntax.Assign, LHS: id("c"), RHS: id("d")}}},
		{"a, b, c", &syntax.CommaExpr{X: &syntax.CommaExpr{X: id("a"), Y: id("b")}, Y: id("c")}},
		{"-x++", &syntax.UnaryExpr{Op: syntax.Minus, X: &syntax.PostfixExpr{Op: syntax.PostInc, X: id("x")}}},
		{"!~--y", &syntax.UnaryExpr{Op: syntax.Not, X: &syntax.UnaryExpr{Op: syntax.Complement, X: &syntax.UnaryExpr{Op: syntax.PreDec, X: id("y")}}}},
		{"- -x", &syntax.UnaryExpr{Op: syntax.Minus, X: &syntax.UnaryExpr{Op: syntax.Minus, X: id("x")}}},
		{"texture(tex, uv).rgb[0]", &syntax.IndexExpr{
			X: &syntax.FieldExpr{
				X:     &syntax.CallExpr{Func: id("texture"), Args: []syntax.Expr{id("tex"), id("uv")}},
				Field: "rgb",
			},
			Index: &syntax.IntLiteral{Value: 0},
		}},
		{"vec3(1.0)", &syntax.CallExpr{Func: id("vec3"), Args: []syntax.Expr{&syntax.FloatLiteral{Value: 1}}}},
		{"f(void)", &syntax.CallExpr{Func: id("f")}},
		{"a.length()", &syntax.CallExpr{Func: &syntax.FieldExpr{X: id("a"), Field: "length"}}},
		{"float[2](1.0, 2.0)", &syntax.CallExpr{
			Func: &syntax.TypeExpr{Type: &syntax.TypeSpecifier{
				Base:  &syntax.BuiltinType{Type: syntax.Float},
				Array: &syntax.ArraySpecifier{Dims: []syntax.Expr{&syntax.IntLiteral{Value: 2}}},
			}},
			Args: []syntax.Expr{&syntax.FloatLiteral{Value: 1}, &syntax.FloatLiteral{Value: 2}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertExpr(t, tt.want, parseExpr(t, tt.input))
		})
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  syntax.Expr
	}{
		{"1", &syntax.IntLiteral{Value: 1}},
		{"0x10", &syntax.IntLiteral{Value: 16}},
		{"010", &syntax.IntLiteral{Value: 8}},
		{"4294967295", &syntax.IntLiteral{Value: 4294967295}},
		{"3u", &syntax.UIntLiteral{Value: 3}},
		{"0xFFu", &syntax.UIntLiteral{Value: 255}},
		{"1.0", &syntax.FloatLiteral{Value: 1}},
		{"1.", &syntax.FloatLiteral{Value: 1}},
		{".25", &syntax.FloatLiteral{Value: 0.25}},
		{"1e3", &syntax.FloatLiteral{Value: 1000}},
		{"2.5f", &syntax.FloatLiteral{Value: 2.5}},
		{"1.5lf", &syntax.DoubleLiteral{Value: 1.5}},
		{"true", &syntax.BoolLiteral{Value: true}},
		{"false", &syntax.BoolLiteral{Value: false}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertExpr(t, tt.want, parseExpr(t, tt.input))
		})
	}
}

func TestParseExpressionErrors(t *testing.T) {
	tests := []struct {
		input   string
		col     int
		message string
	}{
		{"a + b = c", 7, "cannot assign"},
		{"4294967296", 1, "out of range"},
		{"1 +", 4, "expected expression"},
		{"f(a,", 5, "expected expression"},
		{"(a", 3, "')'"},
		{"vec3 + 1", 6, "expected '('"},
		{"a b", 3, "'EOF'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseExpression(strings.NewReader(tt.input)).Finish()
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.col, pe.Span.Start.Column)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseMinimalShader(t *testing.T) {
	tu := parseTU(t, "void main() {}")
	require.Len(t, tu.Decls, 1)
	fn, ok := tu.Decls[0].(*syntax.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Prototype.Name)
	assert.Empty(t, fn.Prototype.Params)
	assert.Empty(t, fn.Body.Stmts)
	ret := fn.Prototype.ReturnType.Type.Base.(*syntax.BuiltinType)
	assert.Equal(t, syntax.Void, ret.Type)
}

func TestParseEmptyInput(t *testing.T) {
	tu := parseTU(t, "")
	assert.Empty(t, tu.Decls)

	tu = parseTU(t, "  // nothing here\n;;")
	assert.Empty(t, tu.Decls)
}

func TestParseVersionDirective(t *testing.T) {
	tu := parseTU(t, "#version 330 core\nvoid main() {}")
	require.Len(t, tu.Decls, 2)
	pp, ok := tu.Decls[0].(*syntax.Preprocessor)
	require.True(t, ok)
	assert.Equal(t, "#version 330 core", pp.Text)
	assert.Equal(t, "version", pp.Directive)
	require.NotNil(t, pp.Version)
	assert.Equal(t, 330, pp.Version.Number)
	assert.Equal(t, syntax.ProfileCore, pp.Version.Profile)
}

func TestParseDirectives(t *testing.T) {
	tests := []struct {
		text      string
		directive string
		version   *syntax.VersionDirective
		extension *syntax.ExtensionDirective
	}{
		{"#version 450", "version", &syntax.VersionDirective{Number: 450}, nil},
		{"#version 300 es", "version", &syntax.VersionDirective{Number: 300, Profile: syntax.ProfileES}, nil},
		{"#version abc", "version", nil, nil},
		{"#extension GL_ARB_shading_language_420pack : enable", "extension", nil,
			&syntax.ExtensionDirective{Name: "GL_ARB_shading_language_420pack", Behavior: syntax.BehaviorEnable}},
		{"#extension all : disable", "extension", nil, &syntax.ExtensionDirective{Name: "all", Behavior: syntax.BehaviorDisable}},
		{"# define FOO(x) x", "define", nil, nil},
		{"#", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			pp := NewPreprocessor(tt.text, Span{})
			assert.Equal(t, tt.text, pp.Text)
			assert.Equal(t, tt.directive, pp.Directive)
			assert.Equal(t, tt.version, pp.Version)
			assert.Equal(t, tt.extension, pp.Extension)
		})
	}
}

func TestParseDirectiveInsideFunction(t *testing.T) {
	tu := parseTU(t, "void main() {\n#ifdef FOO\n  x();\n#endif\n}")
	fn := tu.Decls[0].(*syntax.FunctionDefinition)
	require.Len(t, fn.Body.Stmts, 3)
	assert.Equal(t, "#ifdef FOO", fn.Body.Stmts[0].(*syntax.Preprocessor).Text)
	assert.Equal(t, "endif", fn.Body.Stmts[2].(*syntax.Preprocessor).Directive)
}

func TestParseDeclarations(t *testing.T) {
	src := `
precision highp float;
layout(location = 0) in vec3 position;
uniform mat4 mvp, model;
const float weights[3] = float[3](0.25, 0.5, 0.25);
float table[2] = {1.0, 2.0,};
invariant gl_Position;
layout(local_size_x = 8, local_size_y = 8) in;
layout(std140, binding = 0) uniform Camera {
    mat4 view;
    mat4 proj;
} camera[2];
float lighting(in vec3 n, float);
`
	tu := parseTU(t, src)
	require.Len(t, tu.Decls, 9)

	prec := tu.Decls[0].(*syntax.PrecisionDecl)
	assert.Equal(t, syntax.PrecisionHigh, prec.Precision)

	in := tu.Decls[1].(*syntax.InitDeclaratorList)
	require.Len(t, in.Type.Qualifier.Specs, 2)
	layout := in.Type.Qualifier.Specs[0].(*syntax.LayoutQualifier)
	assert.Equal(t, "location", layout.IDs[0].Name)
	assertExpr(t, &syntax.IntLiteral{Value: 0}, layout.IDs[0].Value)
	assert.Equal(t, syntax.StorageIn, in.Type.Qualifier.Specs[1].(*syntax.StorageQualifier).Storage)

	uniforms := tu.Decls[2].(*syntax.InitDeclaratorList)
	require.Len(t, uniforms.Declarators, 2)
	assert.Equal(t, "model", uniforms.Declarators[1].Name)

	weights := tu.Decls[3].(*syntax.InitDeclaratorList)
	require.NotNil(t, weights.Declarators[0].Array)
	call := weights.Declarators[0].Init.(*syntax.ExprInitializer).X.(*syntax.CallExpr)
	assert.IsType(t, &syntax.TypeExpr{}, call.Func)

	table := tu.Decls[4].(*syntax.InitDeclaratorList)
	list := table.Declarators[0].Init.(*syntax.ListInitializer)
	assert.Len(t, list.Items, 2, "trailing comma is allowed")

	inv := tu.Decls[5].(*syntax.QualifierDecl)
	assert.Equal(t, []string{"gl_Position"}, inv.Names)
	assert.IsType(t, &syntax.InvariantQualifier{}, inv.Qualifier.Specs[0])

	local := tu.Decls[6].(*syntax.QualifierDecl)
	assert.Empty(t, local.Names)
	assert.Len(t, local.Qualifier.Specs, 2)

	block := tu.Decls[7].(*syntax.BlockDecl)
	assert.Equal(t, "Camera", block.Name)
	assert.Len(t, block.Fields, 2)
	require.NotNil(t, block.Instance)
	assert.Equal(t, "camera", block.Instance.Name)
	assert.NotNil(t, block.Instance.Array)

	proto := tu.Decls[8].(*syntax.FunctionPrototype)
	require.Len(t, proto.Params, 2)
	assert.Equal(t, "n", proto.Params[0].Name)
	assert.Equal(t, "", proto.Params[1].Name)
}

func TestParseStructTypeNames(t *testing.T) {
	tu := parseTU(t, `
struct Light { vec3 color; float intensity; };
Light key;
Light fill = Light(vec3(1.0), 0.5);
`)
	require.Len(t, tu.Decls, 3)
	def := tu.Decls[0].(*syntax.InitDeclaratorList)
	assert.Empty(t, def.Declarators)
	st := def.Type.Type.Base.(*syntax.StructSpecifier)
	assert.Equal(t, "Light", st.Name)
	assert.Len(t, st.Fields, 2)

	key := tu.Decls[1].(*syntax.InitDeclaratorList)
	assertExpr(t, &syntax.TypeName{Name: "Light"}, key.Type.Type.Base)

	fill := tu.Decls[2].(*syntax.InitDeclaratorList)
	call := fill.Declarators[0].Init.(*syntax.ExprInitializer).X.(*syntax.CallExpr)
	assertExpr(t, id("Light"), call.Func)
}

func TestParseStructUsedBeforeDeclaration(t *testing.T) {
	pe := parseErr(t, "Light key;\nstruct Light { vec3 color; };")
	assert.Equal(t, 1, pe.Span.Start.Line)
	assert.Contains(t, pe.Error(), "unknown type name 'Light'")
}

func TestParseStatements(t *testing.T) {
	src := `
void main() {
    int sum = 0;
    for (int i = 0; i < 10; i++) sum += i;
    for (;;) { break; }
    while (bool more = next()) { continue; }
    do { sum--; } while (sum > 0);
    if (a) if (b) x(); else y();
    switch (mode) {
    case 0:
        discard;
    default:
        break;
    }
    ;
    return;
}
`
	tu := parseTU(t, src)
	body := tu.Decls[0].(*syntax.FunctionDefinition).Body.Stmts
	require.Len(t, body, 9)

	assert.IsType(t, &syntax.DeclarationStmt{}, body[0])

	loop := body[1].(*syntax.ForStmt)
	assert.IsType(t, &syntax.DeclarationStmt{}, loop.Init)
	assert.IsType(t, &syntax.ExprCondition{}, loop.Cond)
	assert.IsType(t, &syntax.PostfixExpr{}, loop.Post)

	forever := body[2].(*syntax.ForStmt)
	assert.Nil(t, forever.Init.(*syntax.ExprStmt).X)
	assert.Nil(t, forever.Cond)
	assert.Nil(t, forever.Post)

	while := body[3].(*syntax.WhileStmt)
	cond := while.Cond.(*syntax.DeclCondition)
	assert.Equal(t, "more", cond.Name)

	assert.IsType(t, &syntax.DoWhileStmt{}, body[4])

	outer := body[5].(*syntax.IfStmt)
	assert.Nil(t, outer.Else, "else binds to the nearest if")
	assert.NotNil(t, outer.Then.(*syntax.IfStmt).Else)

	sw := body[6].(*syntax.SwitchStmt)
	require.Len(t, sw.Body, 4)
	assert.NotNil(t, sw.Body[0].(*syntax.CaseLabel).Value)
	assert.Nil(t, sw.Body[2].(*syntax.CaseLabel).Value)
	assert.Equal(t, syntax.JumpDiscard, sw.Body[1].(*syntax.JumpStmt).Kind)

	assert.Nil(t, body[7].(*syntax.ExprStmt).X)
	ret := body[8].(*syntax.JumpStmt)
	assert.Equal(t, syntax.JumpReturn, ret.Kind)
	assert.Nil(t, ret.Value)
}

func TestParseConstructorStatement(t *testing.T) {
	tu := parseTU(t, "void main() { vec3(1.0); float[2](1.0, 2.0); float[2] a; }")
	body := tu.Decls[0].(*syntax.FunctionDefinition).Body.Stmts
	require.Len(t, body, 3)
	assert.IsType(t, &syntax.ExprStmt{}, body[0])
	assert.IsType(t, &syntax.ExprStmt{}, body[1])
	assert.IsType(t, &syntax.DeclarationStmt{}, body[2])
}

func TestParseSubroutines(t *testing.T) {
	tu := parseTU(t, `
subroutine vec4 colorFn(vec3 n);
subroutine(colorFn) vec4 red(vec3 n) { return vec4(1.0, 0.0, 0.0, 1.0); }
subroutine uniform colorFn shade;
`)
	require.Len(t, tu.Decls, 3)
	def := tu.Decls[1].(*syntax.FunctionDefinition)
	sq := def.Prototype.ReturnType.Qualifier.Specs[0].(*syntax.StorageQualifier)
	assert.Equal(t, syntax.StorageSubroutine, sq.Storage)
	assert.Equal(t, []string{"colorFn"}, sq.TypeNames)

	uniform := tu.Decls[2].(*syntax.InitDeclaratorList)
	assertExpr(t, &syntax.TypeName{Name: "colorFn"}, uniform.Type.Type.Base)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		col     int
		found   TokenKind
		message string
	}{
		{"missing initializer", "void main() { int x = ; }", 1, 23, TokenSemicolon, "expected expression"},
		{"missing semicolon", "void main() { float x = 1.0 }", 1, 29, TokenRBrace, "';'"},
		{"unclosed body", "void main() {\n  x = 1;\n", 3, 1, TokenEOF, "'}'"},
		{"nested function", "void main() { void f() {} }", 1, 24, TokenLBrace, "';'"},
		{"missing paren", "void main() { if (a { } }", 1, 21, TokenLBrace, "')'"},
		{"reserved word", "void main() { goto end; }", 1, 15, TokenReserved, "expected expression"},
		{"bad precision", "precision float;", 1, 11, TokenTypeName, "'highp'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := parseErr(t, tt.input)
			assert.Equal(t, tt.line, pe.Span.Start.Line)
			assert.Equal(t, tt.col, pe.Span.Start.Column)
			assert.Equal(t, tt.found, pe.Found.Kind)
			assert.Contains(t, pe.Error(), tt.message)
		})
	}
}

func TestParseLexErrorSurfaces(t *testing.T) {
	_, err := ParseTranslationUnit(strings.NewReader("void main() { int x = 1 @ 2; }")).Finish()
	var le *LexError
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, ErrLex))
	assert.Equal(t, LexUnrecognizedChar, le.Kind)
	assert.Equal(t, 25, le.Span.Start.Column)
}

func TestParseErrorBeforeLexError(t *testing.T) {
	pe := parseErr(t, "int = 1; $")
	assert.Equal(t, TokenAssign, pe.Found.Kind)
}

func TestParseMaxDepth(t *testing.T) {
	src := "void main() { x = " + strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200) + "; }"
	_, err := ParseTranslationUnit(strings.NewReader(src), WithMaxDepth(50)).Finish()
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Error(), "maximum depth")

	_, err = ParseTranslationUnit(strings.NewReader(src)).Finish()
	assert.NoError(t, err)
}

func TestParseIsComplete(t *testing.T) {
	tests := []struct {
		input    string
		complete bool
	}{
		{"void main() {}", true},
		{"void main() {", false},
		{"float x = 1.0 +", false},
		{"/* open", false},
		{"void main() { ) }", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := ParseTranslationUnit(strings.NewReader(tt.input))
			assert.Equal(t, tt.complete, p.IsComplete())
		})
	}
}

func TestParseComments(t *testing.T) {
	p := ParseTranslationUnit(strings.NewReader("// header\nvoid main() { /* body */ }"), WithComments())
	_, err := p.Finish()
	require.NoError(t, err)
	require.Len(t, p.Comments(), 2)
	assert.Equal(t, "// header", p.Comments()[0].Literal)
	assert.Equal(t, "/* body */", p.Comments()[1].Literal)
}

func TestParseStatementEntry(t *testing.T) {
	node, err := ParseStatement(strings.NewReader("if (x) { y = 1; } else discard;")).Finish()
	require.NoError(t, err)
	stmt := node.(*syntax.IfStmt)
	assert.IsType(t, &syntax.CompoundStmt{}, stmt.Then)
	assert.IsType(t, &syntax.JumpStmt{}, stmt.Else)
}

func TestParseCommentsDoNotChangeTree(t *testing.T) {
	plain := parseTU(t, "void main() { float x = a + b; }")
	commented := parseTU(t, "void /* c */ main() {\n // line\n float x = a /* d */ + b; }")
	assert.True(t, syntax.Equal(plain, commented), syntax.Diff(plain, commented))
}

func TestParseSpansArePreorderMonotonic(t *testing.T) {
	src := `#version 450
layout(location = 0) out vec4 color;
struct S { float a[2]; };
void main() {
    S s = S(float[2](1.0, 2.0));
    for (int i = 0; i < 2; i++) {
        color += vec4(s.a[i] * (1.0 + 2.0), 0.0, 0.0, 1.0);
    }
}
`
	tu := parseTU(t, src)
	last := 0
	for _, n := range syntax.Preorder(tu) {
		off := n.Pos().Start.Offset
		assert.GreaterOrEqual(t, off, last, "%T at %s starts before its predecessor", n, n.Pos())
		last = off
	}
}

func TestParseFileOption(t *testing.T) {
	_, err := ParseTranslationUnit(strings.NewReader("void main() { x = ; }"), WithFile("a.frag")).Finish()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "a.frag:1:19: "), err.Error())
}

func TestFormatWithContext(t *testing.T) {
	src := "void main() {\n  int x = ;\n}"
	pe := parseErr(t, src)
	out := pe.FormatWithContext(src)
	assert.Contains(t, out, "  2|   int x = ;")
	assert.Contains(t, out, "   | "+strings.Repeat(" ", 10)+"^\n")
}
