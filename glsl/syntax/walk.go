package syntax

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first pre-order, visiting children in
// declaration order. Unset optional children are skipped.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *TranslationUnit:
		for _, d := range n.Decls {
			Walk(v, d)
		}

	// Declarations
	case *FunctionDefinition:
		Walk(v, n.Prototype)
		Walk(v, n.Body)
	case *FunctionPrototype:
		Walk(v, n.ReturnType)
		for _, p := range n.Params {
			Walk(v, p)
		}
	case *ParamDecl:
		walkQualifier(v, n.Qualifier)
		Walk(v, n.Type)
		walkArray(v, n.Array)
	case *InitDeclaratorList:
		Walk(v, n.Type)
		for _, d := range n.Declarators {
			Walk(v, d)
		}
	case *Declarator:
		walkArray(v, n.Array)
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *PrecisionDecl:
		Walk(v, n.Type)
	case *BlockDecl:
		walkQualifier(v, n.Qualifier)
		for _, f := range n.Fields {
			Walk(v, f)
		}
		if n.Instance != nil {
			Walk(v, n.Instance)
		}
	case *QualifierDecl:
		walkQualifier(v, n.Qualifier)
	case *Preprocessor:
		// leaf

	// Types
	case *FullySpecifiedType:
		walkQualifier(v, n.Qualifier)
		Walk(v, n.Type)
	case *TypeSpecifier:
		Walk(v, n.Base)
		walkArray(v, n.Array)
	case *BuiltinType, *TypeName:
		// leaves
	case *StructSpecifier:
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *StructField:
		walkQualifier(v, n.Qualifier)
		Walk(v, n.Type)
		for _, d := range n.Declarators {
			Walk(v, d)
		}
	case *ArrayedIdent:
		walkArray(v, n.Array)
	case *ArraySpecifier:
		for _, d := range n.Dims {
			if d != nil {
				Walk(v, d)
			}
		}

	// Qualifiers
	case *TypeQualifier:
		for _, s := range n.Specs {
			Walk(v, s)
		}
	case *LayoutQualifier:
		for _, id := range n.IDs {
			Walk(v, id)
		}
	case *LayoutID:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *StorageQualifier, *PrecisionQualifier, *InterpolationQualifier,
		*InvariantQualifier, *PreciseQualifier:
		// leaves

	// Initializers and conditions
	case *ExprInitializer:
		Walk(v, n.X)
	case *ListInitializer:
		for _, it := range n.Items {
			Walk(v, it)
		}
	case *ExprCondition:
		Walk(v, n.X)
	case *DeclCondition:
		Walk(v, n.Type)
		Walk(v, n.Init)

	// Statements
	case *CompoundStmt:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *DeclarationStmt:
		Walk(v, n.Decl)
	case *ExprStmt:
		if n.X != nil {
			Walk(v, n.X)
		}
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *SwitchStmt:
		Walk(v, n.Tag)
		for _, s := range n.Body {
			Walk(v, s)
		}
	case *CaseLabel:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *DoWhileStmt:
		Walk(v, n.Body)
		Walk(v, n.Cond)
	case *ForStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Post != nil {
			Walk(v, n.Post)
		}
		Walk(v, n.Body)
	case *JumpStmt:
		if n.Value != nil {
			Walk(v, n.Value)
		}

	// Expressions
	case *Ident, *IntLiteral, *UIntLiteral, *FloatLiteral, *DoubleLiteral, *BoolLiteral:
		// leaves
	case *UnaryExpr:
		Walk(v, n.X)
	case *PostfixExpr:
		Walk(v, n.X)
	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *TernaryExpr:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *AssignExpr:
		Walk(v, n.LHS)
		Walk(v, n.RHS)
	case *CallExpr:
		Walk(v, n.Func)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *FieldExpr:
		Walk(v, n.X)
	case *IndexExpr:
		Walk(v, n.X)
		Walk(v, n.Index)
	case *CommaExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *TypeExpr:
		Walk(v, n.Type)

	default:
		panic(fmt.Sprintf("syntax.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

func walkQualifier(v Visitor, q *TypeQualifier) {
	if q != nil {
		Walk(v, q)
	}
}

func walkArray(v Visitor, a *ArraySpecifier) {
	if a != nil {
		Walk(v, a)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in pre-order: it starts by calling f(node);
// if f returns true, Inspect invokes f recursively for each of the
// children of node, followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Preorder returns every node of the tree rooted at root in the order
// Walk visits them.
func Preorder(root Node) []Node {
	var nodes []Node
	Inspect(root, func(n Node) bool {
		if n != nil {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}
