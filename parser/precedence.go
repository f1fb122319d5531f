package parser

import (
	"github.com/domenkozar/language-ecmascript/ast"
	"github.com/domenkozar/language-ecmascript/token"
)

// Precedence represents operator binding power for Pratt parsing.
//
// Values use a binding-power encoding where even values represent
// left-associative operators and odd values represent right-associative
// operators. The Pratt loop uses a single comparison (lbp <= minBP)
// and the recursive call passes lbp ^ 1 as the new minimum, so an even
// lbp forbids an operator of the same level on the right and an odd lbp
// allows it. Every ES5 binary operator is left-associative; assignment
// and the conditional operator are right-associative and handled above
// the Pratt loop.
//
// See: https://matklad.github.io/2020/04/13/simple-but-powerful-pratt-parsing.html
type Precedence uint8

const (
	PrecedenceLowest     Precedence = 0
	PrecedenceLogicalOr  Precedence = 2  // ||
	PrecedenceLogicalAnd Precedence = 4  // &&
	PrecedenceBitwiseOr  Precedence = 6  // |
	PrecedenceBitwiseXor Precedence = 8  // ^
	PrecedenceBitwiseAnd Precedence = 10 // &
	PrecedenceEquals     Precedence = 12 // == != === !==
	PrecedenceCompare    Precedence = 14 // < > <= >= instanceof in
	PrecedenceShift      Precedence = 16 // << >> >>>
	PrecedenceAdd        Precedence = 18 // + -
	PrecedenceMultiply   Precedence = 20 // * / %
)

type binaryOperator struct {
	lbp Precedence
	op  ast.InfixOp
}

// binaryOperators maps each token kind to its left binding power and the
// operator it builds. A zero lbp means the token is not a binary operator.
var binaryOperators [256]binaryOperator

func init() {
	for kind, op := range map[token.Token]ast.InfixOp{
		token.LogicalOr:          ast.OpLogicalOr,
		token.LogicalAnd:         ast.OpLogicalAnd,
		token.Or:                 ast.OpBitOr,
		token.ExclusiveOr:        ast.OpBitXor,
		token.And:                ast.OpBitAnd,
		token.Equal:              ast.OpEq,
		token.NotEqual:           ast.OpNotEq,
		token.StrictEqual:        ast.OpStrictEq,
		token.StrictNotEqual:     ast.OpStrictNotEq,
		token.Less:               ast.OpLess,
		token.Greater:            ast.OpGreater,
		token.LessOrEqual:        ast.OpLessEq,
		token.GreaterOrEqual:     ast.OpGreaterEq,
		token.InstanceOf:         ast.OpInstanceof,
		token.In:                 ast.OpIn,
		token.ShiftLeft:          ast.OpShl,
		token.ShiftRight:         ast.OpShr,
		token.UnsignedShiftRight: ast.OpUShr,
		token.Plus:               ast.OpAdd,
		token.Minus:              ast.OpSub,
		token.Multiply:           ast.OpMul,
		token.Slash:              ast.OpDiv,
		token.Remainder:          ast.OpMod,
	} {
		binaryOperators[kind] = binaryOperator{lbp: precedenceOf(op), op: op}
	}
}

// precedenceOf lifts the operator ranking of the syntax tree onto the
// binding-power scale.
func precedenceOf(op ast.InfixOp) Precedence {
	return Precedence(op.Precedence() * 2)
}

var assignOperators = map[token.Token]ast.AssignOp{
	token.Assign:                   ast.OpAssign,
	token.AddAssign:                ast.OpAssignAdd,
	token.SubtractAssign:           ast.OpAssignSub,
	token.MultiplyAssign:           ast.OpAssignMul,
	token.QuotientAssign:           ast.OpAssignDiv,
	token.RemainderAssign:          ast.OpAssignMod,
	token.ShiftLeftAssign:          ast.OpAssignShl,
	token.ShiftRightAssign:         ast.OpAssignShr,
	token.UnsignedShiftRightAssign: ast.OpAssignUShr,
	token.AndAssign:                ast.OpAssignBitAnd,
	token.ExclusiveOrAssign:        ast.OpAssignBitXor,
	token.OrAssign:                 ast.OpAssignBitOr,
}

var prefixOperators = map[token.Token]ast.PrefixOp{
	token.Not:        ast.OpNot,
	token.BitwiseNot: ast.OpBitNot,
	token.Plus:       ast.OpPlus,
	token.Minus:      ast.OpMinus,
	token.Typeof:     ast.OpTypeof,
	token.Void:       ast.OpVoid,
	token.Delete:     ast.OpDelete,
}
