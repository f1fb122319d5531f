package parser

import (
	"github.com/domenkozar/language-ecmascript/ast"
	"github.com/domenkozar/language-ecmascript/file"
	"github.com/domenkozar/language-ecmascript/parser/scanner"
	"github.com/domenkozar/language-ecmascript/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	idx := p.token.Idx0
	if p.token.Kind != token.Identifier {
		p.errorUnexpected(token.Identifier.String())
	}
	name := p.token.Value
	p.next()
	return &ast.Identifier{Span: p.span(idx), Name: name}
}

// parseIdentifierName accepts any IdentifierName, reserved words included,
// as used after a dot.
func (p *parser) parseIdentifierName() *ast.Identifier {
	idx := p.token.Idx0
	if !token.IdentifierName(p.token.Kind) {
		p.errorUnexpected(token.Identifier.String())
	}
	name := p.token.Value
	p.next()
	return &ast.Identifier{Span: p.span(idx), Name: name}
}

func (p *parser) parsePrimaryExpression() ast.Expr {
	idx := p.token.Idx0
	switch p.token.Kind {
	case token.This:
		p.next()
		return &ast.ThisExpression{Span: p.span(idx)}
	case token.Identifier:
		return p.parseIdentifier()
	case token.Null:
		p.next()
		return &ast.NullLiteral{Span: p.span(idx)}
	case token.Boolean:
		value := p.token.Value == "true"
		p.next()
		return &ast.BooleanLiteral{Span: p.span(idx), Value: value}
	case token.Number:
		raw := p.raw()
		value, err := scanner.ParseNumber(raw)
		if err != nil {
			p.errorAt(idx, err.Error())
		}
		p.next()
		return &ast.NumberLiteral{Span: p.span(idx), Value: value, Raw: raw}
	case token.String:
		value, raw := p.token.Value, p.raw()
		p.next()
		return &ast.StringLiteral{Span: p.span(idx), Value: value, Raw: raw}
	case token.Slash, token.QuotientAssign:
		return p.parseRegExpLiteral()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.Function:
		return p.parseFunction(false)
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression()
	}

	p.errorUnexpected("expression")
	return nil
}

func (p *parser) parseRegExpLiteral() ast.Expr {
	idx := p.token.Idx0
	pattern, flags := p.scanner.ScanRegExp()
	p.token = p.scanner.Token
	if p.token.Kind == token.Illegal {
		p.errorLexical(p.scanner.Err())
	}
	p.next()
	return &ast.RegExpLiteral{Span: p.span(idx), Pattern: pattern, Flags: flags}
}

func (p *parser) parseParenthesisedExpression() ast.Expr {
	p.expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	expr := p.parseExpression()
	p.scope.allowIn = allowIn
	p.expect(token.RightParenthesis)
	return expr
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	idx0 := p.expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true

	var value []ast.Expr
	for p.token.Kind != token.RightBracket {
		if p.token.Kind == token.Comma {
			p.next()
			value = append(value, nil)
			continue
		}
		value = append(value, p.parseAssignmentExpression())
		if p.token.Kind != token.RightBracket {
			p.expect(token.Comma)
		}
	}

	p.scope.allowIn = allowIn
	p.expect(token.RightBracket)
	return &ast.ArrayLiteral{Span: p.span(idx0), Value: value}
}

func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	idx0 := p.expect(token.LeftBrace)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true

	var value []*ast.Property
	for p.token.Kind != token.RightBrace {
		value = append(value, p.parseObjectProperty())
		if p.token.Kind != token.RightBrace {
			p.expect(token.Comma)
		}
	}

	p.scope.allowIn = allowIn
	p.expect(token.RightBrace)
	return &ast.ObjectLiteral{Span: p.span(idx0), Value: value}
}

func (p *parser) parseObjectProperty() *ast.Property {
	start := p.token.Idx0

	if p.token.Kind == token.Identifier && (p.token.Value == "get" || p.token.Value == "set") {
		switch p.peek().Kind {
		case token.Colon, token.Comma, token.RightBrace:
			// a plain property named get or set
		default:
			kind := ast.PropertyKindGet
			if p.token.Value == "set" {
				kind = ast.PropertyKindSet
			}
			p.next()
			key := p.parsePropertyKey()
			fn := p.parseAccessor(kind)
			return &ast.Property{Span: p.span(start), Key: key, Kind: kind, Value: fn}
		}
	}

	key := p.parsePropertyKey()
	p.expect(token.Colon)
	value := p.parseAssignmentExpression()
	return &ast.Property{Span: p.span(start), Key: key, Kind: ast.PropertyKindValue, Value: value}
}

func (p *parser) parsePropertyKey() *ast.PropertyKey {
	idx := p.token.Idx0
	key := &ast.PropertyKey{}
	switch kind := p.token.Kind; {
	case kind == token.String:
		key.Kind = ast.PropertyKeyString
		key.Name = p.token.Value
	case kind == token.Number:
		key.Kind = ast.PropertyKeyNumber
		key.Name = p.token.Value
		value, err := scanner.ParseNumber(key.Name)
		if err != nil {
			p.errorAt(idx, err.Error())
		}
		key.Number = value
	case token.IdentifierName(kind):
		key.Kind = ast.PropertyKeyIdentifier
		key.Name = p.token.Value
	default:
		p.errorUnexpected("property name")
	}
	p.next()
	key.Span = p.span(idx)
	return key
}

func (p *parser) parseAccessor(kind ast.PropertyKind) *ast.FunctionLiteral {
	idx := p.token.Idx0
	params := p.parseFunctionParameterList()
	switch {
	case kind == ast.PropertyKindGet && len(params) != 0:
		p.errorAt(idx, errGetterParameters)
	case kind == ast.PropertyKindSet && len(params) != 1:
		p.errorAt(idx, errSetterParameters)
	}
	body := p.parseFunctionBody()
	return &ast.FunctionLiteral{Span: p.span(idx), ParameterList: params, Body: body}
}

// parseArgumentList never returns nil, so `new Foo()` can be told apart
// from `new Foo`.
func (p *parser) parseArgumentList() []ast.Expr {
	argumentList := []ast.Expr{}
	p.expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	if p.token.Kind != token.RightParenthesis {
		for {
			argumentList = append(argumentList, p.parseAssignmentExpression())
			if p.token.Kind != token.Comma {
				break
			}
			p.next()
		}
	}
	p.scope.allowIn = allowIn
	p.expect(token.RightParenthesis)
	return argumentList
}

func (p *parser) parseDotMember(left ast.Expr, start file.Idx) ast.Expr {
	p.expect(token.Period)
	identifier := p.parseIdentifierName()
	return &ast.DotExpression{Span: p.span(start), Left: left, Identifier: identifier}
}

func (p *parser) parseBracketMember(left ast.Expr, start file.Idx) ast.Expr {
	p.expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	member := p.parseExpression()
	p.scope.allowIn = allowIn
	p.expect(token.RightBracket)
	return &ast.BracketExpression{Span: p.span(start), Left: left, Member: member}
}

// parseNewExpression parses `new` followed by a member or new expression
// and an optional argument list; new new Foo()() nests.
func (p *parser) parseNewExpression() ast.Expr {
	p.enter()
	defer p.leave()

	idx := p.expect(token.New)
	calleeStart := p.token.Idx0
	var callee ast.Expr
	if p.token.Kind == token.New {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
	callee = p.parseMemberTail(callee, calleeStart, false)

	node := &ast.NewExpression{Callee: callee}
	if p.token.Kind == token.LeftParenthesis {
		node.ArgumentList = p.parseArgumentList()
	}
	node.Span = p.span(idx)
	return node
}

// parseMemberTail applies the property accesses, and calls if allowCall is
// set, that follow left.
func (p *parser) parseMemberTail(left ast.Expr, start file.Idx, allowCall bool) ast.Expr {
	for {
		switch p.token.Kind {
		case token.Period:
			left = p.parseDotMember(left, start)
		case token.LeftBracket:
			left = p.parseBracketMember(left, start)
		case token.LeftParenthesis:
			if !allowCall {
				return left
			}
			args := p.parseArgumentList()
			left = &ast.CallExpression{Span: p.span(start), Callee: left, ArgumentList: args}
		default:
			return left
		}
	}
}

func (p *parser) parseLeftHandSideExpressionAllowCall() ast.Expr {
	start := p.token.Idx0
	var left ast.Expr
	if p.token.Kind == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}
	return p.parseMemberTail(left, start, true)
}

func (p *parser) parsePostfixExpression() ast.Expr {
	start := p.token.Idx0
	operand := p.parseLeftHandSideExpressionAllowCall()

	// A line terminator before ++ or -- ends the expression; ASI applies.
	kind := p.token.Kind
	if (kind == token.Increment || kind == token.Decrement) && !p.token.OnNewLine {
		if !ast.IsAssignmentTarget(operand) {
			p.errorAt(p.token.Idx0, errInvalidLeftHandSide)
		}
		p.next()
		op := ast.OpPostInc
		if kind == token.Decrement {
			op = ast.OpPostDec
		}
		return &ast.UpdateExpression{Span: p.span(start), Operator: op, Operand: operand}
	}
	return operand
}

func (p *parser) parseUnaryExpression() ast.Expr {
	start := p.token.Idx0
	kind := p.token.Kind

	switch kind {
	case token.Increment, token.Decrement:
		p.enter()
		defer p.leave()

		p.next()
		operandIdx := p.token.Idx0
		operand := p.parseUnaryExpression()
		if !ast.IsAssignmentTarget(operand) {
			p.errorAt(operandIdx, errInvalidLeftHandSide)
		}
		op := ast.OpPreInc
		if kind == token.Decrement {
			op = ast.OpPreDec
		}
		return &ast.UpdateExpression{Span: p.span(start), Operator: op, Operand: operand}
	}

	if op, ok := prefixOperators[kind]; ok {
		p.enter()
		defer p.leave()

		p.next()
		operand := p.parseUnaryExpression()
		return &ast.UnaryExpression{Span: p.span(start), Operator: op, Operand: operand}
	}

	return p.parsePostfixExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) ast.Expr {
	start := p.token.Idx0
	left := p.parseUnaryExpression()

	for {
		kind := p.token.Kind
		bin := binaryOperators[kind]
		if bin.lbp <= minPrecedence {
			break
		}
		if kind == token.In && !p.scope.allowIn {
			break
		}

		p.next()
		right := p.parseBinaryExpressionOrHigher(bin.lbp ^ 1)
		left = &ast.BinaryExpression{Span: p.span(start), Operator: bin.op, Left: left, Right: right}
	}

	return left
}

func (p *parser) parseConditionalExpression() ast.Expr {
	start := p.token.Idx0
	test := p.parseBinaryExpressionOrHigher(PrecedenceLowest)

	if p.token.Kind != token.QuestionMark {
		return test
	}
	p.next()
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	consequent := p.parseAssignmentExpression()
	p.scope.allowIn = allowIn
	p.expect(token.Colon)
	alternate := p.parseAssignmentExpression()
	return &ast.ConditionalExpression{
		Span:       p.span(start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

func (p *parser) parseAssignmentExpression() ast.Expr {
	p.enter()
	defer p.leave()

	start := p.token.Idx0
	left := p.parseConditionalExpression()

	op, ok := assignOperators[p.token.Kind]
	if !ok {
		return left
	}
	if !ast.IsAssignmentTarget(left) {
		p.errorAt(p.token.Idx0, errInvalidLeftHandSide)
	}
	p.next()
	right := p.parseAssignmentExpression()
	return &ast.AssignExpression{Span: p.span(start), Operator: op, Left: left, Right: right}
}

// parseAssignmentExpressionNoIn parses an assignment expression in which a
// bare `in` is not an operator.
func (p *parser) parseAssignmentExpressionNoIn() ast.Expr {
	allowIn := p.scope.allowIn
	p.scope.allowIn = false
	expr := p.parseAssignmentExpression()
	p.scope.allowIn = allowIn
	return expr
}

func (p *parser) parseExpression() ast.Expr {
	start := p.token.Idx0
	left := p.parseAssignmentExpression()

	if p.token.Kind != token.Comma {
		return left
	}
	sequence := []ast.Expr{left}
	for p.token.Kind == token.Comma {
		p.next()
		sequence = append(sequence, p.parseAssignmentExpression())
	}
	return &ast.SequenceExpression{Span: p.span(start), Sequence: sequence}
}

func (p *parser) parseExpressionNoIn() ast.Expr {
	allowIn := p.scope.allowIn
	p.scope.allowIn = false
	expr := p.parseExpression()
	p.scope.allowIn = allowIn
	return expr
}
