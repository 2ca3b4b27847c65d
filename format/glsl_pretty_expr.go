package format

import (
	"strconv"
	"strings"

	"github.com/dhamidi/glslq/glsl/syntax"
)

// printExpr writes x, parenthesized when it binds more loosely than the
// context requires. The tree has no parenthesis nodes, so these are the
// only parentheses in the output.
func (p *GLSLPrettyPrinter) printExpr(x syntax.Expr, prec int) {
	if syntax.Precedence(x) < prec {
		p.write("(")
		p.printExprNoParen(x)
		p.write(")")
		return
	}
	p.printExprNoParen(x)
}

func (p *GLSLPrettyPrinter) printExprNoParen(x syntax.Expr) {
	switch e := x.(type) {
	case *syntax.Ident:
		p.write(e.Name)
	case *syntax.IntLiteral, *syntax.UIntLiteral, *syntax.FloatLiteral, *syntax.DoubleLiteral, *syntax.BoolLiteral:
		p.write(FormatLiteral(e.(syntax.Literal)))
	case *syntax.CommaExpr:
		p.printExpr(e.X, syntax.PrecComma)
		p.write(", ")
		p.printExpr(e.Y, syntax.PrecAssign)
	case *syntax.AssignExpr:
		p.printExpr(e.LHS, syntax.PrecUnary)
		p.write(" ")
		p.write(e.Op.String())
		p.write(" ")
		p.printExpr(e.RHS, syntax.PrecAssign)
	case *syntax.TernaryExpr:
		p.printExpr(e.Cond, syntax.PrecLogicalOr)
		p.write(" ? ")
		p.printExpr(e.Then, syntax.PrecComma)
		p.write(" : ")
		p.printExpr(e.Else, syntax.PrecAssign)
	case *syntax.BinaryExpr:
		prec := e.Op.Precedence()
		p.printExpr(e.X, prec)
		p.write(" ")
		p.write(e.Op.String())
		p.write(" ")
		p.printExpr(e.Y, prec+1)
	case *syntax.UnaryExpr:
		p.write(e.Op.String())
		if fusesWith(e.Op, e.X) {
			p.write("(")
			p.printExprNoParen(e.X)
			p.write(")")
			return
		}
		p.printExpr(e.X, syntax.PrecUnary)
	case *syntax.PostfixExpr:
		p.printExpr(e.X, syntax.PrecPostfix)
		p.write(e.Op.String())
	case *syntax.FieldExpr:
		// "1.x" would lex as a float.
		if _, ok := e.X.(*syntax.IntLiteral); ok {
			p.write("(")
			p.printExprNoParen(e.X)
			p.write(")")
		} else {
			p.printExpr(e.X, syntax.PrecPostfix)
		}
		p.write(".")
		p.write(e.Field)
	case *syntax.IndexExpr:
		p.printExpr(e.X, syntax.PrecPostfix)
		p.write("[")
		p.printExpr(e.Index, syntax.PrecComma)
		p.write("]")
	case *syntax.CallExpr:
		p.printExpr(e.Func, syntax.PrecPostfix)
		p.write("(")
		for i, arg := range e.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(arg, syntax.PrecAssign)
		}
		p.write(")")
	case *syntax.TypeExpr:
		p.printTypeSpecifier(e.Type)
	}
}

// fusesWith reports whether writing op directly before x would merge two
// sign characters into one token, as in "-" followed by "-x".
func fusesWith(op syntax.UnaryOp, x syntax.Expr) bool {
	inner, ok := x.(*syntax.UnaryExpr)
	if !ok {
		return false
	}
	switch op {
	case syntax.Minus:
		return inner.Op == syntax.Minus || inner.Op == syntax.PreDec
	case syntax.Plus:
		return inner.Op == syntax.Plus || inner.Op == syntax.PreInc
	}
	return false
}

// FormatLiteral renders a literal so that it lexes back to the same value
// and kind: floats always carry a '.' or exponent, doubles the "lf"
// suffix and unsigned integers the "u" suffix.
func FormatLiteral(lit syntax.Literal) string {
	switch l := lit.(type) {
	case *syntax.IntLiteral:
		return strconv.FormatInt(l.Value, 10)
	case *syntax.UIntLiteral:
		return strconv.FormatUint(l.Value, 10) + "u"
	case *syntax.FloatLiteral:
		return floatText(strconv.FormatFloat(float64(l.Value), 'g', -1, 32))
	case *syntax.DoubleLiteral:
		return floatText(strconv.FormatFloat(l.Value, 'g', -1, 64)) + "lf"
	case *syntax.BoolLiteral:
		return strconv.FormatBool(l.Value)
	}
	return ""
}

func floatText(s string) string {
	if strings.ContainsAny(s, ".eEn") {
		return s
	}
	return s + ".0"
}
