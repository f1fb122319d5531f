package parser

import (
	"go.uber.org/zap"

	"github.com/domenkozar/language-ecmascript/ast"
	"github.com/domenkozar/language-ecmascript/file"
	"github.com/domenkozar/language-ecmascript/token"
)

func (p *parser) parseProgram() *ast.Program {
	body := p.parseSourceElements(token.Eof)
	return &ast.Program{
		Span: ast.Span{From: 0, To: len(p.file.Source())},
		File: p.file,
		Body: body,
	}
}

// parseSourceElements parses statements and function declarations up to
// the end token, which is left unconsumed.
func (p *parser) parseSourceElements(end token.Token) (body []ast.Stmt) {
	for p.token.Kind != end && p.token.Kind != token.Eof {
		body = append(body, p.parseSourceElement())
	}
	return body
}

// parseSourceElement parses a statement or function declaration.
// parseStatement accepts declarations in nested blocks too, as browsers do.
func (p *parser) parseSourceElement() ast.Stmt {
	return p.parseStatement()
}

func (p *parser) parseFunctionDeclaration() ast.Stmt {
	idx := p.token.Idx0
	fn := p.parseFunction(true)
	return &ast.FunctionDeclaration{Span: p.span(idx), Function: fn}
}

func (p *parser) parseStatementList() (list []ast.Stmt) {
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
		list = append(list, p.parseStatement())
	}
	return list
}

func (p *parser) parseStatement() ast.Stmt {
	p.enter()
	defer p.leave()

	switch p.token.Kind {
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Var:
		return p.parseVariableStatement()
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForOrForInStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Debugger:
		return p.parseDebuggerStatement()
	case token.Identifier:
		if p.peek().Kind == token.Colon {
			return p.parseLabelledStatement()
		}
	case token.Function:
		return p.parseFunctionDeclaration()
	}

	return p.parseExpressionStatement()
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	idx := p.expect(token.LeftBrace)
	list := p.parseStatementList()
	p.expect(token.RightBrace)
	return &ast.BlockStatement{Span: p.span(idx), List: list}
}

func (p *parser) parseEmptyStatement() ast.Stmt {
	idx := p.expect(token.Semicolon)
	return &ast.EmptyStatement{Span: p.span(idx)}
}

func (p *parser) parseVariableStatement() ast.Stmt {
	idx := p.expect(token.Var)
	list := p.parseVariableDeclarationList()
	p.semicolon()
	return &ast.VariableStatement{Span: p.span(idx), List: list}
}

// parseVariableDeclarationList honors the ambient allowIn flag, so inside a
// for header the initializers are parsed NoIn.
func (p *parser) parseVariableDeclarationList() (list []*ast.VariableDeclarator) {
	for {
		list = append(list, p.parseVariableDeclaration())
		if p.token.Kind != token.Comma {
			return list
		}
		p.next()
	}
}

func (p *parser) parseVariableDeclaration() *ast.VariableDeclarator {
	idx := p.token.Idx0
	node := &ast.VariableDeclarator{Name: p.parseIdentifier()}
	if p.token.Kind == token.Assign {
		p.next()
		node.Initializer = p.parseAssignmentExpression()
	}
	node.Span = p.span(idx)
	return node
}

func (p *parser) parseExpressionStatement() ast.Stmt {
	idx := p.token.Idx0
	expr := p.parseExpression()
	p.semicolon()
	return &ast.ExpressionStatement{Span: p.span(idx), Expression: expr}
}

func (p *parser) parseLabelledStatement() ast.Stmt {
	idx := p.token.Idx0
	label := p.parseIdentifier()
	p.expect(token.Colon)
	statement := p.parseStatement()
	return &ast.LabelledStatement{Span: p.span(idx), Label: label, Statement: statement}
}

func (p *parser) parseIfStatement() ast.Stmt {
	idx := p.expect(token.If)
	p.expect(token.LeftParenthesis)
	node := &ast.IfStatement{Test: p.parseExpression()}
	p.expect(token.RightParenthesis)
	node.Consequent = p.parseStatement()
	if p.token.Kind == token.Else {
		p.next()
		node.Alternate = p.parseStatement()
	}
	node.Span = p.span(idx)
	return node
}

func (p *parser) parseDoWhileStatement() ast.Stmt {
	idx := p.expect(token.Do)
	body := p.parseStatement()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	p.semicolon()
	return &ast.DoWhileStatement{Span: p.span(idx), Body: body, Test: test}
}

func (p *parser) parseWhileStatement() ast.Stmt {
	idx := p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	return &ast.WhileStatement{Span: p.span(idx), Test: test, Body: body}
}

// parseForOrForInStatement first reads the head as `init; test; update`.
// When no semicolon follows the initializer, the head is read again as
// `lhs in expr`.
func (p *parser) parseForOrForInStatement() ast.Stmt {
	idx := p.expect(token.For)
	p.expect(token.LeftParenthesis)

	saved := p.err
	var initializer ast.ForInit
	if p.try(func() {
		initializer = p.parseForInit()
		p.expect(token.Semicolon)
	}) {
		return p.parseFor(idx, initializer)
	}

	p.log.Debug("for head is not init; test; update, retrying as for-in",
		zap.Stringer("position", p.file.Position(idx)))
	node := p.parseForIn(idx, p.parseForInInto())
	p.err = saved
	return node
}

func (p *parser) parseForInit() ast.ForInit {
	idx := p.token.Idx0
	switch p.token.Kind {
	case token.Semicolon:
		return nil
	case token.Var:
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = false
		list := p.parseVariableDeclarationList()
		p.scope.allowIn = allowIn
		return &ast.ForVarInit{Span: p.span(idx), List: list}
	}
	expr := p.parseExpressionNoIn()
	return &ast.ForExprInit{Span: p.span(idx), Expression: expr}
}

func (p *parser) parseForInInto() ast.ForInit {
	idx := p.token.Idx0
	if p.token.Kind == token.Var {
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = false
		decl := p.parseVariableDeclaration()
		p.scope.allowIn = allowIn
		return &ast.ForVarInit{Span: p.span(idx), List: []*ast.VariableDeclarator{decl}}
	}

	expr := p.parseLeftHandSideExpressionAllowCall()
	if !ast.IsAssignmentTarget(expr) {
		p.errorAt(p.token.Idx0, errInvalidLeftHandSide)
	}
	return &ast.ForExprInit{Span: p.span(idx), Expression: expr}
}

func (p *parser) parseFor(idx file.Idx, initializer ast.ForInit) ast.Stmt {
	node := &ast.ForStatement{Initializer: initializer}
	if p.token.Kind != token.Semicolon {
		node.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.token.Kind != token.RightParenthesis {
		node.Update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseStatement()
	node.Span = p.span(idx)
	return node
}

func (p *parser) parseForIn(idx file.Idx, into ast.ForInit) ast.Stmt {
	p.expect(token.In)
	source := p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	return &ast.ForInStatement{Span: p.span(idx), Into: into, Source: source, Body: body}
}

func (p *parser) parseContinueStatement() ast.Stmt {
	idx := p.expect(token.Continue)
	node := &ast.ContinueStatement{}
	if p.token.Kind == token.Identifier && !p.token.OnNewLine {
		node.Label = p.parseIdentifier()
	}
	p.semicolon()
	node.Span = p.span(idx)
	return node
}

func (p *parser) parseBreakStatement() ast.Stmt {
	idx := p.expect(token.Break)
	node := &ast.BreakStatement{}
	if p.token.Kind == token.Identifier && !p.token.OnNewLine {
		node.Label = p.parseIdentifier()
	}
	p.semicolon()
	node.Span = p.span(idx)
	return node
}

func (p *parser) parseReturnStatement() ast.Stmt {
	idx := p.expect(token.Return)
	node := &ast.ReturnStatement{}
	if !p.canInsertSemicolon() && p.token.Kind != token.Semicolon {
		node.Argument = p.parseExpression()
	}
	p.semicolon()
	node.Span = p.span(idx)
	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	idx := p.expect(token.Throw)
	if p.token.OnNewLine {
		p.errorAt(p.token.Idx0, errNewlineAfterThrow)
	}
	argument := p.parseExpression()
	p.semicolon()
	return &ast.ThrowStatement{Span: p.span(idx), Argument: argument}
}

func (p *parser) parseWithStatement() ast.Stmt {
	idx := p.expect(token.With)
	p.expect(token.LeftParenthesis)
	object := p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	return &ast.WithStatement{Span: p.span(idx), Object: object, Body: body}
}

// parseSwitchStatement accepts at most one default clause, in any position.
func (p *parser) parseSwitchStatement() ast.Stmt {
	idx := p.expect(token.Switch)
	p.expect(token.LeftParenthesis)
	node := &ast.SwitchStatement{Discriminant: p.parseExpression()}
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	hasDefault := false
	for p.token.Kind != token.RightBrace {
		if p.token.Kind == token.Default {
			if hasDefault {
				p.errorAt(p.token.Idx0, errDuplicateDefault)
			}
			hasDefault = true
		}
		node.Body = append(node.Body, p.parseCaseClause())
	}

	p.expect(token.RightBrace)
	node.Span = p.span(idx)
	return node
}

func (p *parser) parseCaseClause() *ast.CaseClause {
	idx := p.token.Idx0
	node := &ast.CaseClause{}
	switch p.token.Kind {
	case token.Case:
		p.next()
		node.Test = p.parseExpression()
	case token.Default:
		p.next()
	default:
		p.errorUnexpected(token.Case.String(), token.Default.String(), token.RightBrace.String())
	}
	p.expect(token.Colon)

	for {
		switch p.token.Kind {
		case token.Case, token.Default, token.RightBrace, token.Eof:
			node.Span = p.span(idx)
			return node
		}
		node.Consequent = append(node.Consequent, p.parseStatement())
	}
}

// parseTryStatement leaves both catch and finally optional.
func (p *parser) parseTryStatement() ast.Stmt {
	idx := p.expect(token.Try)
	node := &ast.TryStatement{Body: p.parseBlockStatement()}

	if p.token.Kind == token.Catch {
		catchIdx := p.token.Idx0
		p.next()
		p.expect(token.LeftParenthesis)
		parameter := p.parseIdentifier()
		p.expect(token.RightParenthesis)
		body := p.parseBlockStatement()
		node.Catch = &ast.CatchClause{Span: p.span(catchIdx), Parameter: parameter, Body: body}
	}

	if p.token.Kind == token.Finally {
		p.next()
		node.Finally = p.parseBlockStatement()
	}

	node.Span = p.span(idx)
	return node
}

func (p *parser) parseDebuggerStatement() ast.Stmt {
	idx := p.expect(token.Debugger)
	p.semicolon()
	return &ast.DebuggerStatement{Span: p.span(idx)}
}

func (p *parser) parseFunction(declaration bool) *ast.FunctionLiteral {
	p.enter()
	defer p.leave()

	idx := p.expect(token.Function)
	node := &ast.FunctionLiteral{}
	if declaration || p.token.Kind == token.Identifier {
		node.Name = p.parseIdentifier()
	}
	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseFunctionBody()
	node.Span = p.span(idx)
	return node
}

func (p *parser) parseFunctionParameterList() (list []*ast.Identifier) {
	p.expect(token.LeftParenthesis)
	if p.token.Kind != token.RightParenthesis {
		for {
			list = append(list, p.parseIdentifier())
			if p.token.Kind != token.Comma {
				break
			}
			p.next()
		}
	}
	p.expect(token.RightParenthesis)
	return list
}

// parseFunctionBody parses the braces and source elements of a function in
// a fresh scope, where `in` is always an operator.
func (p *parser) parseFunctionBody() *ast.BlockStatement {
	p.openScope()
	idx := p.expect(token.LeftBrace)
	list := p.parseSourceElements(token.RightBrace)
	p.expect(token.RightBrace)
	p.closeScope()
	return &ast.BlockStatement{Span: p.span(idx), List: list}
}
