package ast

type (
	AssignOp      int
	InfixOp       int
	PrefixOp      int
	UnaryAssignOp int
)

const (
	OpAssign AssignOp = iota + 1
	OpAssignAdd
	OpAssignSub
	OpAssignMul
	OpAssignDiv
	OpAssignMod
	OpAssignShl
	OpAssignShr
	OpAssignUShr
	OpAssignBitAnd
	OpAssignBitXor
	OpAssignBitOr
)

const (
	OpLogicalOr InfixOp = iota + 1
	OpLogicalAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEq
	OpNotEq
	OpStrictEq
	OpStrictNotEq
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
	OpInstanceof
	OpIn
	OpShl
	OpShr
	OpUShr
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

const (
	OpNot PrefixOp = iota + 1
	OpBitNot
	OpPlus
	OpMinus
	OpTypeof
	OpVoid
	OpDelete
)

const (
	OpPreInc UnaryAssignOp = iota + 1
	OpPreDec
	OpPostInc
	OpPostDec
)

var assignOpStrings = [...]string{
	OpAssign:       "=",
	OpAssignAdd:    "+=",
	OpAssignSub:    "-=",
	OpAssignMul:    "*=",
	OpAssignDiv:    "/=",
	OpAssignMod:    "%=",
	OpAssignShl:    "<<=",
	OpAssignShr:    ">>=",
	OpAssignUShr:   ">>>=",
	OpAssignBitAnd: "&=",
	OpAssignBitXor: "^=",
	OpAssignBitOr:  "|=",
}

var infixOpStrings = [...]string{
	OpLogicalOr:   "||",
	OpLogicalAnd:  "&&",
	OpBitOr:       "|",
	OpBitXor:      "^",
	OpBitAnd:      "&",
	OpEq:          "==",
	OpNotEq:       "!=",
	OpStrictEq:    "===",
	OpStrictNotEq: "!==",
	OpLess:        "<",
	OpGreater:     ">",
	OpLessEq:      "<=",
	OpGreaterEq:   ">=",
	OpInstanceof:  "instanceof",
	OpIn:          "in",
	OpShl:         "<<",
	OpShr:         ">>",
	OpUShr:        ">>>",
	OpAdd:         "+",
	OpSub:         "-",
	OpMul:         "*",
	OpDiv:         "/",
	OpMod:         "%",
}

var prefixOpStrings = [...]string{
	OpNot:    "!",
	OpBitNot: "~",
	OpPlus:   "+",
	OpMinus:  "-",
	OpTypeof: "typeof",
	OpVoid:   "void",
	OpDelete: "delete",
}

var unaryAssignOpStrings = [...]string{
	OpPreInc:  "++",
	OpPreDec:  "--",
	OpPostInc: "++",
	OpPostDec: "--",
}

func (op AssignOp) String() string {
	if op > 0 && int(op) < len(assignOpStrings) {
		return assignOpStrings[op]
	}
	return ""
}

// Binary returns the infix operator a compound assignment applies, and
// false for plain =.
func (op AssignOp) Binary() (InfixOp, bool) {
	switch op {
	case OpAssignAdd:
		return OpAdd, true
	case OpAssignSub:
		return OpSub, true
	case OpAssignMul:
		return OpMul, true
	case OpAssignDiv:
		return OpDiv, true
	case OpAssignMod:
		return OpMod, true
	case OpAssignShl:
		return OpShl, true
	case OpAssignShr:
		return OpShr, true
	case OpAssignUShr:
		return OpUShr, true
	case OpAssignBitAnd:
		return OpBitAnd, true
	case OpAssignBitXor:
		return OpBitXor, true
	case OpAssignBitOr:
		return OpBitOr, true
	}
	return 0, false
}

func (op InfixOp) String() string {
	if op > 0 && int(op) < len(infixOpStrings) {
		return infixOpStrings[op]
	}
	return ""
}

// Precedence ranks binary operators from 1 (||) to 10 (* / %). Higher
// binds tighter; operators of equal precedence associate to the left.
func (op InfixOp) Precedence() int {
	switch op {
	case OpLogicalOr:
		return 1
	case OpLogicalAnd:
		return 2
	case OpBitOr:
		return 3
	case OpBitXor:
		return 4
	case OpBitAnd:
		return 5
	case OpEq, OpNotEq, OpStrictEq, OpStrictNotEq:
		return 6
	case OpLess, OpGreater, OpLessEq, OpGreaterEq, OpInstanceof, OpIn:
		return 7
	case OpShl, OpShr, OpUShr:
		return 8
	case OpAdd, OpSub:
		return 9
	case OpMul, OpDiv, OpMod:
		return 10
	}
	return 0
}

func (op PrefixOp) String() string {
	if op > 0 && int(op) < len(prefixOpStrings) {
		return prefixOpStrings[op]
	}
	return ""
}

// Keyword reports whether the operator is spelled as a word.
func (op PrefixOp) Keyword() bool {
	return op == OpTypeof || op == OpVoid || op == OpDelete
}

func (op UnaryAssignOp) String() string {
	if op > 0 && int(op) < len(unaryAssignOpStrings) {
		return unaryAssignOpStrings[op]
	}
	return ""
}

func (op UnaryAssignOp) Postfix() bool {
	return op == OpPostInc || op == OpPostDec
}
