package generator

import "github.com/domenkozar/language-ecmascript/ast"

// Expression precedence, loosest first. Binary operators occupy the range
// between precConditional and precUnary.
const (
	precSequence    = 0
	precAssign      = 1
	precConditional = 2
	precBinary      = 2 // plus InfixOp.Precedence, 3 (||) through 12 (* / %)
	precUnary       = 13
	precPostfix     = 14
	precNew         = 15 // new without arguments
	precMember      = 16
	precPrimary     = 17
)

func precedence(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignExpression:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.BinaryExpression:
		return precBinary + n.Operator.Precedence()
	case *ast.UnaryExpression:
		return precUnary
	case *ast.UpdateExpression:
		if n.Operator.Postfix() {
			return precPostfix
		}
		return precUnary
	case *ast.NewExpression:
		if n.ArgumentList == nil {
			return precNew
		}
		return precMember
	case *ast.CallExpression, *ast.DotExpression, *ast.BracketExpression:
		return precMember
	}
	return precPrimary
}

// compound reports whether e is an operator expression.
func compound(e ast.Expr) bool {
	switch e.(type) {
	case *ast.SequenceExpression, *ast.AssignExpression, *ast.ConditionalExpression,
		*ast.BinaryExpression, *ast.UnaryExpression, *ast.UpdateExpression:
		return true
	}
	return false
}

// containsCall reports whether a call appears in the member chain of e,
// which would end the callee of a new expression early.
func containsCall(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.DotExpression:
			e = n.Left
		case *ast.BracketExpression:
			e = n.Left
		default:
			return false
		}
	}
}

// leftmost returns the expression whose first token starts e when printed
// without added parentheses.
func leftmost(e ast.Expr) ast.Expr {
	for {
		switch n := e.(type) {
		case *ast.SequenceExpression:
			e = n.Sequence[0]
		case *ast.AssignExpression:
			e = n.Left
		case *ast.ConditionalExpression:
			e = n.Test
		case *ast.BinaryExpression:
			e = n.Left
		case *ast.UpdateExpression:
			if !n.Operator.Postfix() {
				return e
			}
			e = n.Operand
		case *ast.CallExpression:
			e = n.Callee
		case *ast.DotExpression:
			e = n.Left
		case *ast.BracketExpression:
			e = n.Left
		default:
			return e
		}
	}
}
