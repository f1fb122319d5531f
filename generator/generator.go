// Package generator prints an ES5 syntax tree back to source text.
package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/domenkozar/language-ecmascript/ast"
)

// Generate prints node using the fewest parentheses that keep its
// grouping intact.
func Generate(node ast.Node) string {
	return generate(node, false)
}

// Parenthesize prints node with every operator expression wrapped in
// parentheses, so `1 + 2 * 3` becomes `(1 + (2 * 3))`.
func Parenthesize(node ast.Node) string {
	return generate(node, true)
}

func generate(node ast.Node, full bool) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
		full:   full,
	}
	gen(s)
	return s.out.String()
}

func (s *state) needsParens(e ast.Expr) bool {
	if s.parens || precedence(e) < s.prec {
		return true
	}
	if s.full && compound(e) {
		return true
	}
	if b, ok := e.(*ast.BinaryExpression); ok && s.noIn && b.Operator == ast.OpIn {
		return true
	}
	return false
}

// delimited wraps an expression printed between brackets, parentheses or
// braces, where `in` is always allowed.
func (s *state) delimited(node ast.Expr, prec int) *state {
	c := s.expr(node, prec)
	c.noIn = false
	return c
}

func gen(s *state) {
	if e, ok := s.node.(ast.Expr); ok && s.needsParens(e) {
		s.out.WriteString("(")
		defer s.out.WriteString(")")
		s.noIn = false
	}

	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		for _, st := range n.Body {
			gen(s.wrap(st))
			s.line()
		}

	// Expressions
	case *ast.Identifier:
		s.out.WriteString(n.Name)
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))
	case *ast.NumberLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(formatNumber(n.Value))
		}
	case *ast.StringLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(quote(n.Value))
		}
	case *ast.RegExpLiteral:
		s.out.WriteString("/" + n.Pattern + "/" + n.Flags)
	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		for i, ex := range n.Value {
			if i > 0 {
				s.out.WriteString(", ")
			}
			if ex != nil {
				gen(s.delimited(ex, precAssign))
			}
		}
		if l := len(n.Value); l > 0 && n.Value[l-1] == nil {
			s.out.WriteString(",")
		}
		s.out.WriteString("]")
	case *ast.ObjectLiteral:
		s.out.WriteString("{")
		for i, prop := range n.Value {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(prop))
		}
		s.out.WriteString("}")
	case *ast.Property:
		switch n.Kind {
		case ast.PropertyKindGet, ast.PropertyKindSet:
			s.out.WriteString(string(n.Kind) + " ")
			gen(s.wrap(n.Key))
			fn := n.Value.(*ast.FunctionLiteral)
			s.params(fn.ParameterList)
			s.out.WriteString(" ")
			gen(s.wrap(fn.Body))
		default:
			gen(s.wrap(n.Key))
			s.out.WriteString(": ")
			gen(s.delimited(n.Value, precAssign))
		}
	case *ast.PropertyKey:
		if n.Kind == ast.PropertyKeyString {
			s.out.WriteString(quote(n.Name))
		} else {
			s.out.WriteString(n.Name)
		}
	case *ast.FunctionLiteral:
		s.out.WriteString("function")
		if n.Name != nil {
			s.out.WriteString(" " + n.Name.Name)
		}
		s.params(n.ParameterList)
		s.out.WriteString(" ")
		c := s.wrap(n.Body)
		c.noIn = false
		gen(c)
	case *ast.DotExpression:
		left := s.expr(n.Left, precMember)
		if _, ok := n.Left.(*ast.NumberLiteral); ok {
			left.parens = true
		}
		gen(left)
		s.out.WriteString("." + n.Identifier.Name)
	case *ast.BracketExpression:
		gen(s.expr(n.Left, precMember))
		s.out.WriteString("[")
		gen(s.delimited(n.Member, precSequence))
		s.out.WriteString("]")
	case *ast.CallExpression:
		gen(s.expr(n.Callee, precMember))
		s.arguments(n.ArgumentList)
	case *ast.NewExpression:
		s.out.WriteString("new ")
		prec := precNew
		if n.ArgumentList != nil {
			prec = precMember
		}
		callee := s.expr(n.Callee, prec)
		if containsCall(n.Callee) {
			callee.parens = true
		}
		gen(callee)
		if n.ArgumentList != nil {
			s.arguments(n.ArgumentList)
		}
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.out.WriteString(op)
		if n.Operator.Keyword() || !s.full && startsWithSign(n.Operand, op[0]) {
			s.out.WriteString(" ")
		}
		gen(s.expr(n.Operand, precUnary))
	case *ast.UpdateExpression:
		if n.Operator.Postfix() {
			gen(s.expr(n.Operand, precNew))
			s.out.WriteString(n.Operator.String())
		} else {
			s.out.WriteString(n.Operator.String())
			if !s.full && startsWithSign(n.Operand, n.Operator.String()[0]) {
				s.out.WriteString(" ")
			}
			gen(s.expr(n.Operand, precUnary))
		}
	case *ast.BinaryExpression:
		p := precBinary + n.Operator.Precedence()
		gen(s.expr(n.Left, p))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.expr(n.Right, p+1))
	case *ast.AssignExpression:
		gen(s.expr(n.Left, precNew))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.expr(n.Right, precAssign))
	case *ast.ConditionalExpression:
		gen(s.expr(n.Test, precConditional+1))
		s.out.WriteString(" ? ")
		gen(s.delimited(n.Consequent, precAssign))
		s.out.WriteString(" : ")
		gen(s.expr(n.Alternate, precAssign))
	case *ast.SequenceExpression:
		for i, e := range n.Sequence {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.expr(e, precAssign))
		}

	// Statements
	case *ast.BlockStatement:
		if len(n.List) == 0 {
			s.out.WriteString("{}")
			return
		}
		s.out.WriteString("{")
		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		c := s.expr(n.Expression, precSequence)
		switch leftmost(n.Expression).(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral:
			c.parens = true
		}
		gen(c)
		s.out.WriteString(";")
	case *ast.VariableStatement:
		s.out.WriteString("var ")
		s.declarators(n.List)
		s.out.WriteString(";")
	case *ast.VariableDeclarator:
		s.out.WriteString(n.Name.Name)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.expr(n.Initializer, precAssign))
		}
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.IfStatement:
		s.out.WriteString("if (")
		gen(s.expr(n.Test, precSequence))
		s.out.WriteString(") ")
		if n.Alternate != nil && danglingIf(n.Consequent) {
			gen(s.wrap(&ast.BlockStatement{List: []ast.Stmt{n.Consequent}}))
		} else {
			gen(s.wrap(n.Consequent))
		}
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			gen(s.wrap(n.Alternate))
		}
	case *ast.DoWhileStatement:
		s.out.WriteString("do ")
		gen(s.wrap(n.Body))
		s.out.WriteString(" while (")
		gen(s.expr(n.Test, precSequence))
		s.out.WriteString(");")
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		gen(s.expr(n.Test, precSequence))
		s.out.WriteString(") ")
		gen(s.wrap(n.Body))
	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Initializer != nil {
			c := s.wrap(n.Initializer)
			c.noIn = true
			gen(c)
		}
		s.out.WriteString(";")
		if n.Test != nil {
			s.out.WriteString(" ")
			gen(s.expr(n.Test, precSequence))
		}
		s.out.WriteString(";")
		if n.Update != nil {
			s.out.WriteString(" ")
			gen(s.expr(n.Update, precSequence))
		}
		s.out.WriteString(") ")
		gen(s.wrap(n.Body))
	case *ast.ForInStatement:
		s.out.WriteString("for (")
		c := s.wrap(n.Into)
		c.noIn = true
		c.prec = precNew
		gen(c)
		s.out.WriteString(" in ")
		gen(s.expr(n.Source, precSequence))
		s.out.WriteString(") ")
		gen(s.wrap(n.Body))
	case *ast.ForVarInit:
		s.out.WriteString("var ")
		s.declarators(n.List)
	case *ast.ForExprInit:
		gen(s.expr(n.Expression, s.prec))
	case *ast.ContinueStatement:
		s.out.WriteString("continue")
		s.label(n.Label)
		s.out.WriteString(";")
	case *ast.BreakStatement:
		s.out.WriteString("break")
		s.label(n.Label)
		s.out.WriteString(";")
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.expr(n.Argument, precSequence))
		}
		s.out.WriteString(";")
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		gen(s.expr(n.Argument, precSequence))
		s.out.WriteString(";")
	case *ast.WithStatement:
		s.out.WriteString("with (")
		gen(s.expr(n.Object, precSequence))
		s.out.WriteString(") ")
		gen(s.wrap(n.Body))
	case *ast.LabelledStatement:
		s.out.WriteString(n.Label.Name + ": ")
		gen(s.wrap(n.Statement))
	case *ast.SwitchStatement:
		s.out.WriteString("switch (")
		gen(s.expr(n.Discriminant, precSequence))
		s.out.WriteString(") {")
		s.indent++
		for _, cc := range n.Body {
			s.lineAndPad()
			gen(s.wrap(cc))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.CaseClause:
		if n.Test != nil {
			s.out.WriteString("case ")
			gen(s.expr(n.Test, precSequence))
			s.out.WriteString(":")
		} else {
			s.out.WriteString("default:")
		}
		s.indent++
		for _, st := range n.Consequent {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--
	case *ast.TryStatement:
		s.out.WriteString("try ")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Catch))
		}
		if n.Finally != nil {
			s.out.WriteString(" finally ")
			gen(s.wrap(n.Finally))
		}
	case *ast.CatchClause:
		s.out.WriteString("catch (" + n.Parameter.Name + ") ")
		gen(s.wrap(n.Body))
	case *ast.DebuggerStatement:
		s.out.WriteString("debugger;")
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func (s *state) params(list []*ast.Identifier) {
	s.out.WriteString("(")
	for i, id := range list {
		if i > 0 {
			s.out.WriteString(", ")
		}
		s.out.WriteString(id.Name)
	}
	s.out.WriteString(")")
}

func (s *state) arguments(list []ast.Expr) {
	s.out.WriteString("(")
	for i, a := range list {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.delimited(a, precAssign))
	}
	s.out.WriteString(")")
}

func (s *state) declarators(list []*ast.VariableDeclarator) {
	for i, d := range list {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.wrap(d))
	}
}

func (s *state) label(id *ast.Identifier) {
	if id != nil {
		s.out.WriteString(" " + id.Name)
	}
}

// startsWithSign reports whether operand prints starting with sign, so
// that `- -a` is not glued into `--a`.
func startsWithSign(operand ast.Expr, sign byte) bool {
	switch n := operand.(type) {
	case *ast.UnaryExpression:
		return !n.Operator.Keyword() && n.Operator.String()[0] == sign
	case *ast.UpdateExpression:
		return !n.Operator.Postfix() && n.Operator.String()[0] == sign
	}
	return false
}

// danglingIf reports whether st ends in an if statement without an else,
// which would capture a following else.
func danglingIf(st ast.Stmt) bool {
	for {
		switch n := st.(type) {
		case *ast.IfStatement:
			if n.Alternate == nil {
				return true
			}
			st = n.Alternate
		case *ast.WhileStatement:
			st = n.Body
		case *ast.ForStatement:
			st = n.Body
		case *ast.ForInStatement:
			st = n.Body
		case *ast.WithStatement:
			st = n.Body
		case *ast.LabelledStatement:
			st = n.Statement
		default:
			return false
		}
	}
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// quote renders v as a double-quoted string literal.
func quote(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case 0x2028, 0x2029:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
