package generator

import (
	"strings"

	"github.com/domenkozar/language-ecmascript/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int

	// prec is the lowest expression precedence that may appear here
	// without parentheses.
	prec int
	// parens forces parentheses around the expression.
	parens bool
	// noIn is set inside the head of a for statement, where a bare `in`
	// would be read as the for-in keyword.
	noIn bool
	// full parenthesizes every operator expression.
	full bool
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		noIn:   s.noIn,
		full:   s.full,
	}
}

// expr wraps an expression that must bind at least as tightly as prec.
func (s *state) expr(node ast.Expr, prec int) *state {
	c := s.wrap(node)
	c.prec = prec
	return c
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}
