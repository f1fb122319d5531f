package parser

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/domenkozar/language-ecmascript/ast"
	"github.com/domenkozar/language-ecmascript/generator"
	"github.com/domenkozar/language-ecmascript/token"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := ParseProgram("test.js", src)
	require.NoError(t, err, src)
	return program
}

func parseError(t *testing.T, src string) *Error {
	t.Helper()
	_, err := ParseProgram("test.js", src)
	require.Error(t, err, src)
	var syntaxErr *Error
	require.True(t, errors.As(err, &syntaxErr), "%s: %v", src, err)
	return syntaxErr
}

func firstExpression(t *testing.T, src string) ast.Expr {
	t.Helper()
	program := parse(t, src)
	require.NotEmpty(t, program.Body)
	stmt, ok := program.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok, "%T", program.Body[0])
	return stmt.Expression
}

func TestBinaryOperatorTable(t *testing.T) {
	assert.Equal(t, binaryOperator{lbp: PrecedenceAdd, op: ast.OpAdd}, binaryOperators[token.Plus])
	assert.Equal(t, binaryOperator{lbp: PrecedenceMultiply, op: ast.OpDiv}, binaryOperators[token.Slash])
	assert.Equal(t, binaryOperator{lbp: PrecedenceCompare, op: ast.OpIn}, binaryOperators[token.In])
	assert.Equal(t, binaryOperator{lbp: PrecedenceLogicalOr, op: ast.OpLogicalOr}, binaryOperators[token.LogicalOr])
	assert.Zero(t, binaryOperators[token.Assign].lbp)
	assert.Zero(t, binaryOperators[token.QuestionMark].lbp)

	for kind, bin := range binaryOperators {
		if bin.lbp == 0 {
			continue
		}
		assert.Zero(t, bin.lbp%2, "%v is left-associative", token.Token(kind))
		assert.Equal(t, precedenceOf(bin.op), bin.lbp)
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a || b && c", "(a || (b && c))"},
		{"a && b || c", "((a && b) || c)"},
		{"a | b ^ c & d", "(a | (b ^ (c & d)))"},
		{"a == b < c", "(a == (b < c))"},
		{"a << b + c", "(a << (b + c))"},
		{"a + b * c % d", "(a + ((b * c) % d))"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b * c", "((a / b) * c)"},
		{"a instanceof b in c", "((a instanceof b) in c)"},
		{"a = b = c", "(a = (b = c))"},
		{"a += b * c", "(a += (b * c))"},
		{"a ? b : c ? d : e", "(a ? b : (c ? d : e))"},
		{"a || b ? c : d", "((a || b) ? c : d)"},
		{"a, b = c", "(a, (b = c))"},
		{"-a * b", "((-a) * b)"},
		{"!a++", "(!(a++))"},
		{"typeof a.b", "(typeof a.b)"},
		{"delete a[b] || c", "((delete a[b]) || c)"},
		{"- -a", "(-(-a))"},
		{"a.b(c)[d]", "a.b(c)[d]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := ParseExpression("test.js", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, generator.Parenthesize(expr))
		})
	}
}

func TestForIn(t *testing.T) {
	program := parse(t, "for (x in y) ;")
	forIn, ok := program.Body[0].(*ast.ForInStatement)
	require.True(t, ok, "%T", program.Body[0])
	assert.Equal(t, &ast.Identifier{Span: ast.Span{From: 5, To: 6}, Name: "x"}, forIn.Into.(*ast.ForExprInit).Expression)

	program = parse(t, "for (var x = 1 in y) ;")
	forIn, ok = program.Body[0].(*ast.ForInStatement)
	require.True(t, ok, "%T", program.Body[0])
	decls := forIn.Into.(*ast.ForVarInit).List
	require.Len(t, decls, 1)
	assert.Equal(t, "x", decls[0].Name.Name)
	assert.IsType(t, &ast.NumberLiteral{}, decls[0].Initializer)

	program = parse(t, "for (a.b[c] in d) {}")
	assert.IsType(t, &ast.ForInStatement{}, program.Body[0])
}

func TestInOperatorInForHead(t *testing.T) {
	program := parse(t, "for (a; a in b; a++) ;")
	loop, ok := program.Body[0].(*ast.ForStatement)
	require.True(t, ok, "%T", program.Body[0])
	test, ok := loop.Test.(*ast.BinaryExpression)
	require.True(t, ok, "%T", loop.Test)
	assert.Equal(t, ast.OpIn, test.Operator)

	program = parse(t, "for (var i = (a in b); i; ) ;")
	loop, ok = program.Body[0].(*ast.ForStatement)
	require.True(t, ok, "%T", program.Body[0])
	init := loop.Initializer.(*ast.ForVarInit)
	assert.IsType(t, &ast.BinaryExpression{}, init.List[0].Initializer)
	assert.Nil(t, loop.Update)

	program = parse(t, "for (;;) break;")
	loop = program.Body[0].(*ast.ForStatement)
	assert.Nil(t, loop.Initializer)
	assert.Nil(t, loop.Test)
	assert.Nil(t, loop.Update)

	program = parse(t, "for (var f = function () { return a in b; }; f(); ) ;")
	assert.IsType(t, &ast.ForStatement{}, program.Body[0])

	// `a in b` as an initializer reads as a for-in head.
	program = parse(t, "for (a in b) ;")
	assert.IsType(t, &ast.ForInStatement{}, program.Body[0])

	parseError(t, "for (var a, b in c) ;")
	parseError(t, "for (a in b; c; d) ;")
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	program := parse(t, "function f() { return\n1 }")
	fn := program.Body[0].(*ast.FunctionDeclaration)
	require.Len(t, fn.Function.Body.List, 2)
	assert.Nil(t, fn.Function.Body.List[0].(*ast.ReturnStatement).Argument)

	program = parse(t, "a\n++b")
	require.Len(t, program.Body, 2)
	update := program.Body[1].(*ast.ExpressionStatement).Expression.(*ast.UpdateExpression)
	assert.Equal(t, ast.OpPreInc, update.Operator)

	program = parse(t, "a++\nb")
	require.Len(t, program.Body, 2)

	program = parse(t, "{ a } b")
	require.Len(t, program.Body, 2)

	program = parse(t, "x: while (1) { continue\nx; break\nx }")
	loop := program.Body[0].(*ast.LabelledStatement).Statement.(*ast.WhileStatement)
	body := loop.Body.(*ast.BlockStatement).List
	require.Len(t, body, 4)
	assert.Nil(t, body[0].(*ast.ContinueStatement).Label)

	err := parseError(t, "throw\n1")
	assert.Equal(t, errNewlineAfterThrow, err.Message)
	assert.Equal(t, 2, err.Position.Line)

	err = parseError(t, "a b")
	assert.Equal(t, "test.js:1:3: Unexpected identifier (expected ;)", err.Error())
}

func TestInvalidAssignmentTarget(t *testing.T) {
	for _, src := range []string{
		"1 = 2",
		"a + b = c",
		"f() = 1",
		"this += 1",
		"++1",
		"(a, b)++",
		"for (f() in x) ;",
	} {
		err := parseError(t, src)
		assert.Equal(t, errInvalidLeftHandSide, err.Message, src)
	}

	for _, src := range []string{"a = 1", "a.b = 1", "a[0] += 1", "(a) = 1", "a.b++", "--a[b]"} {
		parse(t, src)
	}
}

func TestSwitch(t *testing.T) {
	program := parse(t, "switch (x) { case 1: case 2: a; break; default: b; case 3: }")
	sw := program.Body[0].(*ast.SwitchStatement)
	require.Len(t, sw.Body, 4)
	assert.Empty(t, sw.Body[0].Consequent)
	assert.Len(t, sw.Body[1].Consequent, 2)
	assert.Nil(t, sw.Body[2].Test)
	assert.Empty(t, sw.Body[3].Consequent)

	err := parseError(t, "switch (x) { default: case 1: default: }")
	assert.Equal(t, errDuplicateDefault, err.Message)
	assert.Equal(t, 30, err.Position.Offset)

	parseError(t, "switch (x) { a; }")
}

func TestElisions(t *testing.T) {
	array := firstExpression(t, "[,,a,,];").(*ast.ArrayLiteral)
	require.Len(t, array.Value, 4)
	assert.Nil(t, array.Value[0])
	assert.Nil(t, array.Value[1])
	assert.NotNil(t, array.Value[2])
	assert.Nil(t, array.Value[3])

	array = firstExpression(t, "[a,];").(*ast.ArrayLiteral)
	assert.Len(t, array.Value, 1)

	array = firstExpression(t, "[];").(*ast.ArrayLiteral)
	assert.Empty(t, array.Value)
}

func TestNewExpression(t *testing.T) {
	outer := firstExpression(t, "new new Foo()()").(*ast.NewExpression)
	assert.NotNil(t, outer.ArgumentList)
	inner := outer.Callee.(*ast.NewExpression)
	assert.NotNil(t, inner.ArgumentList)
	assert.Equal(t, "Foo", inner.Callee.(*ast.Identifier).Name)

	bare := firstExpression(t, "new Foo").(*ast.NewExpression)
	assert.Nil(t, bare.ArgumentList)

	call := firstExpression(t, "new Foo.bar(1)(2)").(*ast.CallExpression)
	created := call.Callee.(*ast.NewExpression)
	assert.IsType(t, &ast.DotExpression{}, created.Callee)
	assert.Len(t, created.ArgumentList, 1)

	member := firstExpression(t, "new Foo().bar").(*ast.DotExpression)
	assert.IsType(t, &ast.NewExpression{}, member.Left)
}

func TestObjectLiteral(t *testing.T) {
	object := firstExpression(t, "({get: 1, set: function () {}, get a() { return 1; }, set 'b'(v) {}, 3: c, if: d})").(*ast.ObjectLiteral)
	require.Len(t, object.Value, 6)

	kinds := make([]ast.PropertyKind, 0, len(object.Value))
	names := make([]string, 0, len(object.Value))
	for _, prop := range object.Value {
		kinds = append(kinds, prop.Kind)
		names = append(names, prop.Key.Name)
	}
	assert.Equal(t, []ast.PropertyKind{
		ast.PropertyKindValue, ast.PropertyKindValue, ast.PropertyKindGet,
		ast.PropertyKindSet, ast.PropertyKindValue, ast.PropertyKindValue,
	}, kinds)
	assert.Equal(t, []string{"get", "set", "a", "b", "3", "if"}, names)
	assert.Equal(t, ast.PropertyKeyString, object.Value[3].Key.Kind)
	assert.Equal(t, 3.0, object.Value[4].Key.Number)

	assert.Equal(t, errGetterParameters, parseError(t, "({get a(b) {}})").Message)
	assert.Equal(t, errSetterParameters, parseError(t, "({set a() {}})").Message)
}

func TestRegExpOrDivision(t *testing.T) {
	div := firstExpression(t, "a / b / c").(*ast.BinaryExpression)
	assert.Equal(t, ast.OpDiv, div.Operator)

	call := firstExpression(t, "x = /a/g.test(y)").(*ast.AssignExpression).Right.(*ast.CallExpression)
	re := call.Callee.(*ast.DotExpression).Left.(*ast.RegExpLiteral)
	assert.Equal(t, "a", re.Pattern)
	assert.Equal(t, "g", re.Flags)

	assign := firstExpression(t, "a /= 2").(*ast.AssignExpression)
	assert.Equal(t, ast.OpAssignDiv, assign.Operator)

	re = firstExpression(t, "f(/=/)").(*ast.CallExpression).ArgumentList[0].(*ast.RegExpLiteral)
	assert.Equal(t, "=", re.Pattern)

	err := parseError(t, "a = /x/gg")
	assert.Equal(t, 1, err.Position.Line)
}

func TestLexicalErrors(t *testing.T) {
	err := parseError(t, `var s = "abc`)
	assert.Equal(t, "Unterminated string", err.Message)
	assert.Equal(t, 9, err.Position.Column)

	err = parseError(t, "a;\n  @")
	assert.Equal(t, "test.js:2:3: Invalid character '@'", err.Error())

	err = parseError(t, "a /* b")
	assert.Equal(t, "Unterminated multiline comment", err.Message)

	err = parseError(t, "3in x")
	assert.Equal(t, "Invalid characters after number", err.Message)
}

func TestFurthestError(t *testing.T) {
	at := func(offset int, expected ...string) *Error {
		e := &Error{Message: "m", Expected: expected}
		e.Position.Offset = offset
		e.Position.Line = 1
		return e
	}

	assert.Equal(t, at(5, "b"), furthest(at(3, "a"), at(5, "b")))
	assert.Equal(t, at(5, "b"), furthest(at(5, "b"), at(3, "a")))
	assert.Equal(t, at(4), furthest(at(4, "a"), at(4)))
	assert.Equal(t, at(4, "a", "b", "c"), furthest(at(4, "c", "a"), at(4, "b", "a")))

	err := parseError(t, "a = ;")
	assert.Equal(t, "test.js:1:5: Unexpected token ; (expected expression)", err.Error())
}

func TestTooDeep(t *testing.T) {
	src := strings.Repeat("(", 20) + "a" + strings.Repeat(")", 20)
	_, err := Parse("test.js", src, Options{MaxDepth: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooDeep))
	var syntaxErr *Error
	assert.False(t, errors.As(err, &syntaxErr))

	_, err = Parse("test.js", src, Options{MaxDepth: 100})
	assert.NoError(t, err)

	src = strings.Repeat("[", 5000) + strings.Repeat("]", 5000)
	_, err = ParseProgram("test.js", src)
	assert.True(t, errors.Is(err, ErrTooDeep))

	src = "for (" + strings.Repeat("(", 50) + "a" + strings.Repeat(")", 50) + " in b) ;"
	_, err = Parse("test.js", src, Options{MaxDepth: 20})
	assert.True(t, errors.Is(err, ErrTooDeep))

	src = strings.Repeat("function a(){", 5000) + strings.Repeat("}", 5000)
	_, err = Parse("test.js", src, Options{MaxDepth: 1000})
	assert.True(t, errors.Is(err, ErrTooDeep))

	src = strings.Repeat("function a(){", 10) + strings.Repeat("}", 10)
	_, err = Parse("test.js", src, Options{MaxDepth: 100})
	assert.NoError(t, err)
}

func TestSpansNest(t *testing.T) {
	src := `function f(a, b) { return a + b * (c - 1); }
var o = {get x() { return this._x; }, y: [1, , f(2)]};
for (var k in o) if (k) { o[k]++; } else delete o[k];
try { throw new Error("x"); } catch (e) { lbl: do ; while (false) } finally { debugger; }
switch (a) { case 1: b = c ? d : e; default: }`
	program := parse(t, src)

	var stack []ast.Node
	ast.Inspect(program, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		assert.LessOrEqual(t, n.Idx0(), n.Idx1(), "%T", n)
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			assert.LessOrEqual(t, parent.Idx0(), n.Idx0(), "%T in %T", n, parent)
			assert.LessOrEqual(t, n.Idx1(), parent.Idx1(), "%T in %T", n, parent)
		}
		stack = append(stack, n)
		return true
	})
	assert.Empty(t, stack)

	ret := program.Body[0].(*ast.FunctionDeclaration).Function.Body.List[0]
	assert.Equal(t, "return a + b * (c - 1);", src[ret.Idx0():ret.Idx1()])
	assert.Equal(t, 5, program.Position(program.Body[4]).Line)
}

func TestDeterministic(t *testing.T) {
	src := "for (var i = 0, j; i < 10; i++) { if (a in b) c(); } for (x in y) ; z = {get a() {}, a: 1};"
	first := parse(t, src)
	second := parse(t, src)
	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(ast.Program{}, "File")); diff != "" {
		t.Errorf("parses differ (-first +second):\n%s", diff)
	}

	regenerated := parse(t, generator.Generate(first))
	assert.Equal(t, generator.Generate(first), generator.Generate(regenerated))
}

func TestFullConsumption(t *testing.T) {
	_, err := ParseExpression("test.js", "a b")
	assert.Error(t, err)
	_, err = ParseExpression("test.js", "a)")
	assert.Error(t, err)
	_, err = ParseStatement("test.js", "a; b;")
	assert.Error(t, err)
	parseError(t, "a; }")

	stmt, err := ParseStatement("test.js", "function f() {}")
	require.NoError(t, err)
	assert.IsType(t, &ast.FunctionDeclaration{}, stmt)

	_, err = ParseExpression("test.js", "a\n++b")
	assert.EqualError(t, err, "test.js:2:1: Unexpected token ++ (expected end of input)")
}

func TestNestedFunctionDeclaration(t *testing.T) {
	for _, src := range []string{
		"{ function f() {} }",
		"if (a) { function f() {} }",
		"try { function f() {} } catch (e) {}",
		"lbl: function f() {}",
		"if (a) function f() {} else b;",
	} {
		program := parse(t, src)
		var found bool
		ast.Inspect(program, func(n ast.Node) bool {
			if decl, ok := n.(*ast.FunctionDeclaration); ok {
				found = true
				assert.Equal(t, "f", decl.Function.Name.Name, src)
			}
			return true
		})
		assert.True(t, found, src)
	}

	block := parse(t, "{ function f() {} }").Body[0].(*ast.BlockStatement)
	assert.IsType(t, &ast.FunctionDeclaration{}, block.List[0])
	assert.Equal(t, "{\n    function f() {}\n}\n", generator.Generate(parse(t, "{ function f() {} }")))

	parseError(t, "{ function () {} }")
}

func TestParseFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
	var syntaxErr *Error
	assert.False(t, errors.As(err, &syntaxErr))

	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("var a = 'b';"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "utf16.js")
	require.NoError(t, os.WriteFile(path, encoded, 0o644))

	program, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, program.Body, 1)
	decl := program.Body[0].(*ast.VariableStatement).List[0]
	assert.Equal(t, "b", decl.Initializer.(*ast.StringLiteral).Value)
	assert.Equal(t, 4, decl.Idx0())
}
