package ast

// Stmt is a statement node. The set of implementations is closed.
type Stmt interface {
	Node
	_stmt()
}

// ForInit is the initializer of a for statement or the left side of a
// for-in statement: a *ForVarInit or a *ForExprInit. A nil ForInit means
// the slot was left empty.
type ForInit interface {
	Node
	_forInit()
}

type (
	BlockStatement struct {
		Span
		List []Stmt
	}

	EmptyStatement struct {
		Span
	}

	ExpressionStatement struct {
		Span
		Expression Expr
	}

	IfStatement struct {
		Span
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	DoWhileStatement struct {
		Span
		Body Stmt
		Test Expr
	}

	WhileStatement struct {
		Span
		Test Expr
		Body Stmt
	}

	ForStatement struct {
		Span
		Initializer ForInit
		Test        Expr
		Update      Expr
		Body        Stmt
	}

	ForInStatement struct {
		Span
		Into   ForInit
		Source Expr
		Body   Stmt
	}

	ForVarInit struct {
		Span
		List []*VariableDeclarator
	}

	ForExprInit struct {
		Span
		Expression Expr
	}

	ContinueStatement struct {
		Span
		Label *Identifier
	}

	BreakStatement struct {
		Span
		Label *Identifier
	}

	ReturnStatement struct {
		Span
		Argument Expr
	}

	ThrowStatement struct {
		Span
		Argument Expr
	}

	WithStatement struct {
		Span
		Object Expr
		Body   Stmt
	}

	LabelledStatement struct {
		Span
		Label     *Identifier
		Statement Stmt
	}

	SwitchStatement struct {
		Span
		Discriminant Expr
		Body         []*CaseClause
	}

	// CaseClause is a case of a switch statement; Test is nil for default.
	CaseClause struct {
		Span
		Test       Expr
		Consequent []Stmt
	}

	TryStatement struct {
		Span
		Body    *BlockStatement
		Catch   *CatchClause
		Finally *BlockStatement
	}

	CatchClause struct {
		Span
		Parameter *Identifier
		Body      *BlockStatement
	}

	DebuggerStatement struct {
		Span
	}
)

func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*DoWhileStatement) _stmt()    {}
func (*WhileStatement) _stmt()      {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*BreakStatement) _stmt()      {}
func (*ReturnStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*WithStatement) _stmt()       {}
func (*LabelledStatement) _stmt()   {}
func (*SwitchStatement) _stmt()     {}
func (*TryStatement) _stmt()        {}
func (*DebuggerStatement) _stmt()   {}

func (*ForVarInit) _forInit()  {}
func (*ForExprInit) _forInit() {}
