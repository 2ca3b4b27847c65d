package syntax

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	PreInc     UnaryOp = iota // ++x
	PreDec                    // --x
	Plus                      // +x
	Minus                     // -x
	Not                       // !x
	Complement                // ~x
)

var unaryOpNames = [...]string{
	PreInc:     "++",
	PreDec:     "--",
	Plus:       "+",
	Minus:      "-",
	Not:        "!",
	Complement: "~",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return "?"
}

// PostfixOp is a postfix increment or decrement.
type PostfixOp int

const (
	PostInc PostfixOp = iota
	PostDec
)

func (op PostfixOp) String() string {
	if op == PostDec {
		return "--"
	}
	return "++"
}

// BinaryOp is an infix operator of the precedence-climbing table.
type BinaryOp int

const (
	LogicalOr BinaryOp = iota
	LogicalXor
	LogicalAnd
	BitOr
	BitXor
	BitAnd
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	ShiftLeft
	ShiftRight
	Add
	Sub
	Mul
	Div
	Mod
)

var binaryOpNames = [...]string{
	LogicalOr:  "||",
	LogicalXor: "^^",
	LogicalAnd: "&&",
	BitOr:      "|",
	BitXor:     "^",
	BitAnd:     "&",
	Eq:         "==",
	Ne:         "!=",
	Lt:         "<",
	Gt:         ">",
	Le:         "<=",
	Ge:         ">=",
	ShiftLeft:  "<<",
	ShiftRight: ">>",
	Add:        "+",
	Sub:        "-",
	Mul:        "*",
	Div:        "/",
	Mod:        "%",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// Expression precedence levels, lowest binding first.
const (
	PrecComma = iota + 1
	PrecAssign
	PrecTernary
	PrecLogicalOr
	PrecLogicalXor
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecUnary
	PrecPostfix
)

// Precedence returns the binding strength of op. All binary operators
// are left-associative.
func (op BinaryOp) Precedence() int {
	switch op {
	case LogicalOr:
		return PrecLogicalOr
	case LogicalXor:
		return PrecLogicalXor
	case LogicalAnd:
		return PrecLogicalAnd
	case BitOr:
		return PrecBitOr
	case BitXor:
		return PrecBitXor
	case BitAnd:
		return PrecBitAnd
	case Eq, Ne:
		return PrecEquality
	case Lt, Gt, Le, Ge:
		return PrecRelational
	case ShiftLeft, ShiftRight:
		return PrecShift
	case Add, Sub:
		return PrecAdditive
	default:
		return PrecMultiplicative
	}
}

// AssignOp is a simple or compound assignment operator.
type AssignOp int

const (
	Assign AssignOp = iota
	MulAssign
	DivAssign
	ModAssign
	AddAssign
	SubAssign
	ShlAssign
	ShrAssign
	AndAssign
	XorAssign
	OrAssign
)

var assignOpNames = [...]string{
	Assign:    "=",
	MulAssign: "*=",
	DivAssign: "/=",
	ModAssign: "%=",
	AddAssign: "+=",
	SubAssign: "-=",
	ShlAssign: "<<=",
	ShrAssign: ">>=",
	AndAssign: "&=",
	XorAssign: "^=",
	OrAssign:  "|=",
}

func (op AssignOp) String() string {
	if int(op) < len(assignOpNames) {
		return assignOpNames[op]
	}
	return "?"
}

// Precedence returns the binding level of e as it would be printed.
func Precedence(e Expr) int {
	switch e := e.(type) {
	case *CommaExpr:
		return PrecComma
	case *AssignExpr:
		return PrecAssign
	case *TernaryExpr:
		return PrecTernary
	case *BinaryExpr:
		return e.Op.Precedence()
	case *UnaryExpr:
		return PrecUnary
	default:
		return PrecPostfix
	}
}
