// Package syntax defines the typed abstract syntax tree of a GLSL
// translation unit.
//
// Trees are built bottom-up by the parser and are never mutated by this
// module afterwards. Every node exclusively owns its children; sharing a
// node between two parents is not supported.
package syntax

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() Span
}

// ExternalDecl is a top-level item of a translation unit.
type ExternalDecl interface {
	Node
	externalDeclNode()
}

// Declaration is a declaration that may appear at file scope or as a
// statement.
type Declaration interface {
	ExternalDecl
	declNode()
}

// Statement is the interface for statements.
type Statement interface {
	Node
	stmtNode()
}

// Expr is the interface for expressions.
type Expr interface {
	Node
	exprNode()
}

// Literal is a constant expression spelled directly in the source.
type Literal interface {
	Expr
	literalNode()
}

// TypeBase is the non-array part of a type specifier.
type TypeBase interface {
	Node
	typeBaseNode()
}

// Initializer is the right-hand side of a declarator.
type Initializer interface {
	Node
	initializerNode()
}

// Condition is the controlling clause of a while or for loop.
type Condition interface {
	Node
	conditionNode()
}

// TranslationUnit is the root of a parsed shader.
type TranslationUnit struct {
	Decls []ExternalDecl
	Span  Span
}

func (t *TranslationUnit) Pos() Span { return t.Span }

// FunctionDefinition is a prototype followed by a body.
type FunctionDefinition struct {
	Prototype *FunctionPrototype
	Body      *CompoundStmt
	Span      Span
}

func (f *FunctionDefinition) Pos() Span         { return f.Span }
func (f *FunctionDefinition) externalDeclNode() {}

// FunctionPrototype declares a function without defining it.
type FunctionPrototype struct {
	ReturnType *FullySpecifiedType
	Name       string
	Params     []*ParamDecl
	Span       Span
}

func (f *FunctionPrototype) Pos() Span         { return f.Span }
func (f *FunctionPrototype) externalDeclNode() {}
func (f *FunctionPrototype) declNode()         {}

// ParamDecl is one function parameter. Name is empty for unnamed
// parameters.
type ParamDecl struct {
	Qualifier *TypeQualifier
	Type      *TypeSpecifier
	Name      string
	Array     *ArraySpecifier
	Span      Span
}

func (p *ParamDecl) Pos() Span { return p.Span }

// InitDeclaratorList declares zero or more variables sharing one type.
// A list with no declarators declares only its type, as in
// "struct Light { vec3 color; };".
type InitDeclaratorList struct {
	Type        *FullySpecifiedType
	Declarators []*Declarator
	Span        Span
}

func (d *InitDeclaratorList) Pos() Span         { return d.Span }
func (d *InitDeclaratorList) externalDeclNode() {}
func (d *InitDeclaratorList) declNode()         {}

// Declarator names one variable of an InitDeclaratorList.
type Declarator struct {
	Name  string
	Array *ArraySpecifier
	Init  Initializer
	Span  Span
}

func (d *Declarator) Pos() Span { return d.Span }

// PrecisionDecl sets the default precision of a type.
type PrecisionDecl struct {
	Precision Precision
	Type      *TypeSpecifier
	Span      Span
}

func (d *PrecisionDecl) Pos() Span         { return d.Span }
func (d *PrecisionDecl) externalDeclNode() {}
func (d *PrecisionDecl) declNode()         {}

// BlockDecl is an interface block such as a uniform or buffer block.
type BlockDecl struct {
	Qualifier *TypeQualifier
	Name      string
	Fields    []*StructField
	Instance  *ArrayedIdent
	Span      Span
}

func (d *BlockDecl) Pos() Span         { return d.Span }
func (d *BlockDecl) externalDeclNode() {}
func (d *BlockDecl) declNode()         {}

// QualifierDecl applies a qualifier to already declared names, as in
// "invariant gl_Position;" or "layout(local_size_x = 8) in;".
type QualifierDecl struct {
	Qualifier *TypeQualifier
	Names     []string
	Span      Span
}

func (d *QualifierDecl) Pos() Span         { return d.Span }
func (d *QualifierDecl) externalDeclNode() {}
func (d *QualifierDecl) declNode()         {}

// Profile is the optional profile of a #version directive.
type Profile int

const (
	ProfileNone Profile = iota
	ProfileCore
	ProfileCompatibility
	ProfileES
)

func (p Profile) String() string {
	switch p {
	case ProfileCore:
		return "core"
	case ProfileCompatibility:
		return "compatibility"
	case ProfileES:
		return "es"
	}
	return ""
}

// Behavior is the requested behavior of an #extension directive.
type Behavior int

const (
	BehaviorNone Behavior = iota
	BehaviorRequire
	BehaviorEnable
	BehaviorWarn
	BehaviorDisable
)

func (b Behavior) String() string {
	switch b {
	case BehaviorRequire:
		return "require"
	case BehaviorEnable:
		return "enable"
	case BehaviorWarn:
		return "warn"
	case BehaviorDisable:
		return "disable"
	}
	return ""
}

// VersionDirective is the structured view of "#version N [profile]".
type VersionDirective struct {
	Number  int
	Profile Profile
}

// ExtensionDirective is the structured view of "#extension name : behavior".
type ExtensionDirective struct {
	Name     string
	Behavior Behavior
}

// Preprocessor is an opaque pragma line. Text holds the whole line
// starting at '#'; Directive is the word after it. Version and Extension
// are set when the line is a well-formed #version or #extension.
type Preprocessor struct {
	Text      string
	Directive string
	Version   *VersionDirective
	Extension *ExtensionDirective
	Span      Span
}

func (p *Preprocessor) Pos() Span         { return p.Span }
func (p *Preprocessor) externalDeclNode() {}
func (p *Preprocessor) stmtNode()         {}

// FullySpecifiedType is a type specifier with an optional qualifier.
type FullySpecifiedType struct {
	Qualifier *TypeQualifier
	Type      *TypeSpecifier
	Span      Span
}

func (t *FullySpecifiedType) Pos() Span { return t.Span }

// TypeSpecifier is a base type optionally followed by array dimensions.
type TypeSpecifier struct {
	Base  TypeBase
	Array *ArraySpecifier
	Span  Span
}

func (t *TypeSpecifier) Pos() Span { return t.Span }

// BuiltinType names a built-in type such as vec3 or sampler2D.
type BuiltinType struct {
	Type BasicType
	Span Span
}

func (t *BuiltinType) Pos() Span     { return t.Span }
func (t *BuiltinType) typeBaseNode() {}

// TypeName refers to a struct declared earlier in the translation unit.
type TypeName struct {
	Name string
	Span Span
}

func (t *TypeName) Pos() Span     { return t.Span }
func (t *TypeName) typeBaseNode() {}

// StructSpecifier is an inline struct definition. Name is empty for
// anonymous structs.
type StructSpecifier struct {
	Name   string
	Fields []*StructField
	Span   Span
}

func (s *StructSpecifier) Pos() Span     { return s.Span }
func (s *StructSpecifier) typeBaseNode() {}

// StructField is one member line of a struct or interface block.
type StructField struct {
	Qualifier   *TypeQualifier
	Type        *TypeSpecifier
	Declarators []*ArrayedIdent
	Span        Span
}

func (f *StructField) Pos() Span { return f.Span }

// ArrayedIdent is an identifier with optional array dimensions.
type ArrayedIdent struct {
	Name  string
	Array *ArraySpecifier
	Span  Span
}

func (a *ArrayedIdent) Pos() Span { return a.Span }

// ArraySpecifier is one or more bracketed dimensions. A nil entry in
// Dims is an unsized dimension.
type ArraySpecifier struct {
	Dims []Expr
	Span Span
}

func (a *ArraySpecifier) Pos() Span { return a.Span }

// ExprInitializer initializes a variable from a single expression.
type ExprInitializer struct {
	X    Expr
	Span Span
}

func (i *ExprInitializer) Pos() Span        { return i.Span }
func (i *ExprInitializer) initializerNode() {}

// ListInitializer is a brace-enclosed initializer list.
type ListInitializer struct {
	Items []Initializer
	Span  Span
}

func (i *ListInitializer) Pos() Span        { return i.Span }
func (i *ListInitializer) initializerNode() {}

// CompoundStmt is a brace-enclosed statement list.
type CompoundStmt struct {
	Stmts []Statement
	Span  Span
}

func (s *CompoundStmt) Pos() Span { return s.Span }
func (s *CompoundStmt) stmtNode() {}

// DeclarationStmt is a declaration inside a function body.
type DeclarationStmt struct {
	Decl Declaration
	Span Span
}

func (s *DeclarationStmt) Pos() Span { return s.Span }
func (s *DeclarationStmt) stmtNode() {}

// ExprStmt is an expression followed by ';'. X is nil for the empty
// statement.
type ExprStmt struct {
	X    Expr
	Span Span
}

func (s *ExprStmt) Pos() Span { return s.Span }
func (s *ExprStmt) stmtNode() {}

// IfStmt is an if statement with an optional else branch.
type IfStmt struct {
	Cond Expr
	Then Statement
	Else Statement
	Span Span
}

func (s *IfStmt) Pos() Span { return s.Span }
func (s *IfStmt) stmtNode() {}

// SwitchStmt is a switch over Tag. Case labels appear in Body as
// ordinary statements.
type SwitchStmt struct {
	Tag  Expr
	Body []Statement
	Span Span
}

func (s *SwitchStmt) Pos() Span { return s.Span }
func (s *SwitchStmt) stmtNode() {}

// CaseLabel is "case Value:" or, when Value is nil, "default:".
type CaseLabel struct {
	Value Expr
	Span  Span
}

func (s *CaseLabel) Pos() Span { return s.Span }
func (s *CaseLabel) stmtNode() {}

// WhileStmt is a while loop.
type WhileStmt struct {
	Cond Condition
	Body Statement
	Span Span
}

func (s *WhileStmt) Pos() Span { return s.Span }
func (s *WhileStmt) stmtNode() {}

// DoWhileStmt is a do-while loop.
type DoWhileStmt struct {
	Body Statement
	Cond Expr
	Span Span
}

func (s *DoWhileStmt) Pos() Span { return s.Span }
func (s *DoWhileStmt) stmtNode() {}

// ForStmt is a for loop. Init is an *ExprStmt or a *DeclarationStmt;
// Cond and Post may be nil.
type ForStmt struct {
	Init Statement
	Cond Condition
	Post Expr
	Body Statement
	Span Span
}

func (s *ForStmt) Pos() Span { return s.Span }
func (s *ForStmt) stmtNode() {}

// JumpKind selects the jump statement.
type JumpKind int

const (
	JumpContinue JumpKind = iota
	JumpBreak
	JumpReturn
	JumpDiscard
)

func (k JumpKind) String() string {
	switch k {
	case JumpContinue:
		return "continue"
	case JumpBreak:
		return "break"
	case JumpReturn:
		return "return"
	case JumpDiscard:
		return "discard"
	}
	return "?"
}

// JumpStmt is continue, break, discard or return. Value is only set for
// a return with an operand.
type JumpStmt struct {
	Kind  JumpKind
	Value Expr
	Span  Span
}

func (s *JumpStmt) Pos() Span { return s.Span }
func (s *JumpStmt) stmtNode() {}

// ExprCondition is a plain loop condition.
type ExprCondition struct {
	X    Expr
	Span Span
}

func (c *ExprCondition) Pos() Span      { return c.Span }
func (c *ExprCondition) conditionNode() {}

// DeclCondition declares and initializes a variable as the condition,
// as in "while (bool more = next())".
type DeclCondition struct {
	Type *FullySpecifiedType
	Name string
	Init Initializer
	Span Span
}

func (c *DeclCondition) Pos() Span      { return c.Span }
func (c *DeclCondition) conditionNode() {}

// Ident is a variable reference.
type Ident struct {
	Name string
	Span Span
}

func (e *Ident) Pos() Span { return e.Span }
func (e *Ident) exprNode() {}

// IntLiteral is a signed integer constant.
type IntLiteral struct {
	Value int64
	Span  Span
}

func (e *IntLiteral) Pos() Span    { return e.Span }
func (e *IntLiteral) exprNode()    {}
func (e *IntLiteral) literalNode() {}

// UIntLiteral is an unsigned integer constant ("3u").
type UIntLiteral struct {
	Value uint64
	Span  Span
}

func (e *UIntLiteral) Pos() Span    { return e.Span }
func (e *UIntLiteral) exprNode()    {}
func (e *UIntLiteral) literalNode() {}

// FloatLiteral is a single-precision constant.
type FloatLiteral struct {
	Value float32
	Span  Span
}

func (e *FloatLiteral) Pos() Span    { return e.Span }
func (e *FloatLiteral) exprNode()    {}
func (e *FloatLiteral) literalNode() {}

// DoubleLiteral is a double-precision constant ("1.0lf").
type DoubleLiteral struct {
	Value float64
	Span  Span
}

func (e *DoubleLiteral) Pos() Span    { return e.Span }
func (e *DoubleLiteral) exprNode()    {}
func (e *DoubleLiteral) literalNode() {}

// BoolLiteral is true or false.
type BoolLiteral struct {
	Value bool
	Span  Span
}

func (e *BoolLiteral) Pos() Span    { return e.Span }
func (e *BoolLiteral) exprNode()    {}
func (e *BoolLiteral) literalNode() {}

// UnaryExpr is a prefix operator applied to X.
type UnaryExpr struct {
	Op   UnaryOp
	X    Expr
	Span Span
}

func (e *UnaryExpr) Pos() Span { return e.Span }
func (e *UnaryExpr) exprNode() {}

// PostfixExpr is X++ or X--.
type PostfixExpr struct {
	Op   PostfixOp
	X    Expr
	Span Span
}

func (e *PostfixExpr) Pos() Span { return e.Span }
func (e *PostfixExpr) exprNode() {}

// BinaryExpr is X Op Y.
type BinaryExpr struct {
	Op   BinaryOp
	X    Expr
	Y    Expr
	Span Span
}

func (e *BinaryExpr) Pos() Span { return e.Span }
func (e *BinaryExpr) exprNode() {}

// TernaryExpr is Cond ? Then : Else.
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	Span Span
}

func (e *TernaryExpr) Pos() Span { return e.Span }
func (e *TernaryExpr) exprNode() {}

// AssignExpr is LHS Op RHS.
type AssignExpr struct {
	Op   AssignOp
	LHS  Expr
	RHS  Expr
	Span Span
}

func (e *AssignExpr) Pos() Span { return e.Span }
func (e *AssignExpr) exprNode() {}

// CallExpr is a function call, constructor or method call. Func is an
// *Ident for named functions and constructors, a *TypeExpr for array
// constructors, and a *FieldExpr for methods such as a.length().
type CallExpr struct {
	Func Expr
	Args []Expr
	Span Span
}

func (e *CallExpr) Pos() Span { return e.Span }
func (e *CallExpr) exprNode() {}

// FieldExpr selects a struct field or swizzle.
type FieldExpr struct {
	X     Expr
	Field string
	Span  Span
}

func (e *FieldExpr) Pos() Span { return e.Span }
func (e *FieldExpr) exprNode() {}

// IndexExpr is X[Index].
type IndexExpr struct {
	X     Expr
	Index Expr
	Span  Span
}

func (e *IndexExpr) Pos() Span { return e.Span }
func (e *IndexExpr) exprNode() {}

// CommaExpr evaluates X then Y.
type CommaExpr struct {
	X    Expr
	Y    Expr
	Span Span
}

func (e *CommaExpr) Pos() Span { return e.Span }
func (e *CommaExpr) exprNode() {}

// TypeExpr is an array type used as a constructor, as in float[3](...).
type TypeExpr struct {
	Type *TypeSpecifier
	Span Span
}

func (e *TypeExpr) Pos() Span { return e.Span }
func (e *TypeExpr) exprNode() {}
