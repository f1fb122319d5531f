package ast

type (
	Identifier struct {
		Span
		Name string
	}

	ThisExpression struct {
		Span
	}
)

func (*Identifier) _expr()     {}
func (*ThisExpression) _expr() {}
