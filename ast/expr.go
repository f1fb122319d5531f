package ast

// Expr is an expression node. The set of implementations is closed.
type Expr interface {
	Node
	_expr()
}

type (
	// ArrayLiteral holds its elements in source order. A nil element is an
	// elision, e.g. the hole in [1,,2].
	ArrayLiteral struct {
		Span
		Value []Expr
	}

	ObjectLiteral struct {
		Span
		Value []*Property
	}

	UnaryExpression struct {
		Span
		Operator PrefixOp
		Operand  Expr
	}

	UpdateExpression struct {
		Span
		Operator UnaryAssignOp
		Operand  Expr
	}

	BinaryExpression struct {
		Span
		Operator InfixOp
		Left     Expr
		Right    Expr
	}

	AssignExpression struct {
		Span
		Operator AssignOp
		Left     Expr
		Right    Expr
	}

	ConditionalExpression struct {
		Span
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	SequenceExpression struct {
		Span
		Sequence []Expr
	}

	DotExpression struct {
		Span
		Left       Expr
		Identifier *Identifier
	}

	BracketExpression struct {
		Span
		Left   Expr
		Member Expr
	}

	CallExpression struct {
		Span
		Callee       Expr
		ArgumentList []Expr
	}

	// NewExpression has a nil ArgumentList when written without
	// parentheses, as in `new Foo`.
	NewExpression struct {
		Span
		Callee       Expr
		ArgumentList []Expr
	}
)

func (*ArrayLiteral) _expr()          {}
func (*ObjectLiteral) _expr()         {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*BinaryExpression) _expr()      {}
func (*AssignExpression) _expr()      {}
func (*ConditionalExpression) _expr() {}
func (*SequenceExpression) _expr()    {}
func (*DotExpression) _expr()         {}
func (*BracketExpression) _expr()     {}
func (*CallExpression) _expr()        {}
func (*NewExpression) _expr()         {}

// IsAssignmentTarget reports whether e may appear on the left of an
// assignment, as the operand of ++/--, or before `in` in a for-in header.
func IsAssignmentTarget(e Expr) bool {
	switch e.(type) {
	case *Identifier, *DotExpression, *BracketExpression:
		return true
	}
	return false
}
