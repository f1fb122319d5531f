package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children of
// node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a syntax tree in depth-first order. Elisions and absent
// optional children are skipped.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStmts(v, n.Body)

	case *Identifier, *ThisExpression, *NullLiteral, *BooleanLiteral,
		*NumberLiteral, *StringLiteral, *RegExpLiteral, *PropertyKey,
		*EmptyStatement, *DebuggerStatement:
		// leaves

	case *ArrayLiteral:
		walkExprs(v, n.Value)
	case *ObjectLiteral:
		for _, prop := range n.Value {
			Walk(v, prop)
		}
	case *Property:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *FunctionLiteral:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		for _, param := range n.ParameterList {
			Walk(v, param)
		}
		Walk(v, n.Body)
	case *UnaryExpression:
		Walk(v, n.Operand)
	case *UpdateExpression:
		Walk(v, n.Operand)
	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *AssignExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *SequenceExpression:
		walkExprs(v, n.Sequence)
	case *DotExpression:
		Walk(v, n.Left)
		Walk(v, n.Identifier)
	case *BracketExpression:
		Walk(v, n.Left)
		Walk(v, n.Member)
	case *CallExpression:
		Walk(v, n.Callee)
		walkExprs(v, n.ArgumentList)
	case *NewExpression:
		Walk(v, n.Callee)
		walkExprs(v, n.ArgumentList)

	case *BlockStatement:
		walkStmts(v, n.List)
	case *VariableStatement:
		for _, decl := range n.List {
			Walk(v, decl)
		}
	case *VariableDeclarator:
		Walk(v, n.Name)
		if n.Initializer != nil {
			Walk(v, n.Initializer)
		}
	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}
	case *DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *ForStatement:
		if n.Initializer != nil {
			Walk(v, n.Initializer)
		}
		if n.Test != nil {
			Walk(v, n.Test)
		}
		if n.Update != nil {
			Walk(v, n.Update)
		}
		Walk(v, n.Body)
	case *ForInStatement:
		Walk(v, n.Into)
		Walk(v, n.Source)
		Walk(v, n.Body)
	case *ForVarInit:
		for _, decl := range n.List {
			Walk(v, decl)
		}
	case *ForExprInit:
		Walk(v, n.Expression)
	case *ContinueStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *BreakStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *ReturnStatement:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *ThrowStatement:
		Walk(v, n.Argument)
	case *WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)
	case *LabelledStatement:
		Walk(v, n.Label)
		Walk(v, n.Statement)
	case *SwitchStatement:
		Walk(v, n.Discriminant)
		for _, clause := range n.Body {
			Walk(v, clause)
		}
	case *CaseClause:
		if n.Test != nil {
			Walk(v, n.Test)
		}
		walkStmts(v, n.Consequent)
	case *TryStatement:
		Walk(v, n.Body)
		if n.Catch != nil {
			Walk(v, n.Catch)
		}
		if n.Finally != nil {
			Walk(v, n.Finally)
		}
	case *CatchClause:
		Walk(v, n.Parameter)
		Walk(v, n.Body)
	case *FunctionDeclaration:
		Walk(v, n.Function)

	default:
		panic("ast.Walk: unexpected node type")
	}

	v.Visit(nil)
}

func walkExprs(v Visitor, list []Expr) {
	for _, e := range list {
		if e != nil {
			Walk(v, e)
		}
	}
}

func walkStmts(v Visitor, list []Stmt) {
	for _, s := range list {
		Walk(v, s)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a syntax tree in depth-first order: It starts by
// calling f(node); node must not be nil. If f returns true, Inspect invokes
// f recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
