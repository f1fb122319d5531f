package ast

type (
	VariableStatement struct {
		Span
		List []*VariableDeclarator
	}

	VariableDeclarator struct {
		Span
		Name        *Identifier
		Initializer Expr
	}
)

func (*VariableStatement) _stmt() {}
