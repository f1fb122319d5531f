package ast

type (
	NullLiteral struct {
		Span
	}

	BooleanLiteral struct {
		Span
		Value bool
	}

	NumberLiteral struct {
		Span
		Value float64
		Raw   string
	}

	StringLiteral struct {
		Span
		Value string
		Raw   string
	}

	RegExpLiteral struct {
		Span
		Pattern string
		Flags   string
	}
)

func (*NullLiteral) _expr()    {}
func (*BooleanLiteral) _expr() {}
func (*NumberLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}
func (*RegExpLiteral) _expr()  {}
