package ast

type (
	// FunctionLiteral is a function expression, or the function of a
	// FunctionDeclaration. Name is nil for anonymous function expressions.
	FunctionLiteral struct {
		Span
		Name          *Identifier
		ParameterList []*Identifier
		Body          *BlockStatement
	}

	FunctionDeclaration struct {
		Span
		Function *FunctionLiteral
	}
)

func (*FunctionLiteral) _expr()     {}
func (*FunctionDeclaration) _stmt() {}
