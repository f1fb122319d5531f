// Package parser implements a parser for ECMAScript 5 source text.
//
// The parser is a recursive descent parser for statements and a Pratt
// parser for binary expressions. Where the grammar needs unbounded
// lookahead (the head of a for statement) it backtracks by restoring a
// snapshot of the scanner.
//
//	program, err := parser.ParseProgram("main.js", src)
//	if err != nil {
//		var syntaxErr *parser.Error
//		if errors.As(err, &syntaxErr) {
//			// syntaxErr.Position points at the offending token.
//		}
//	}
package parser

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/domenkozar/language-ecmascript/ast"
	"github.com/domenkozar/language-ecmascript/file"
	"github.com/domenkozar/language-ecmascript/parser/scanner"
	"github.com/domenkozar/language-ecmascript/token"
)

// Options configures a parse.
type Options struct {
	// MaxDepth bounds the nesting of expressions and statements. Zero
	// disables the limit.
	MaxDepth int
	// Logger receives debug output about backtracking. Nil discards it.
	Logger *zap.Logger
}

// DefaultOptions are used by ParseProgram, ParseExpression, ParseStatement
// and ParseFile.
var DefaultOptions = Options{
	MaxDepth: 1000,
}

type parser struct {
	token   scanner.Token
	prevEnd file.Idx // end of the last consumed token

	scanner *scanner.Scanner
	file    *file.File

	scope *scope

	depth    int
	maxDepth int

	// err is the failure that got furthest into the input so far.
	err *Error

	log *zap.Logger
}

func newParser(name, src string, opts Options) *parser {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	p := &parser{
		scanner:  scanner.New(src),
		file:     file.New(name, src),
		maxDepth: opts.MaxDepth,
		log:      log,
	}
	p.openScope()
	return p
}

// ParseProgram parses a complete script.
func ParseProgram(name, src string) (*ast.Program, error) {
	return Parse(name, src, DefaultOptions)
}

// Parse parses a complete script with the given options.
func Parse(name, src string, opts Options) (*ast.Program, error) {
	p := newParser(name, src, opts)
	var program *ast.Program
	if err := p.run(func() { program = p.parseProgram() }); err != nil {
		p.log.Debug("parse failed", zap.String("file", name), zap.Error(err))
		return nil, err
	}
	return program, nil
}

// ParseExpression parses src as a single expression, commas included.
func ParseExpression(name, src string) (ast.Expr, error) {
	p := newParser(name, src, DefaultOptions)
	var expr ast.Expr
	err := p.run(func() {
		expr = p.parseExpression()
		p.expectEnd()
	})
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseStatement parses src as a single statement or function declaration.
func ParseStatement(name, src string) (ast.Stmt, error) {
	p := newParser(name, src, DefaultOptions)
	var stmt ast.Stmt
	err := p.run(func() {
		stmt = p.parseSourceElement()
		p.expectEnd()
	})
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// ParseFile reads, decodes and parses the script at path. Failures to read
// the file are returned wrapped and are never of type *Error.
func ParseFile(path string) (*ast.Program, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return ParseProgram(path, src)
}

// ReadSource reads the script at path as UTF-8 text. The file may be
// UTF-8, or UTF-16 with a byte order mark.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	src, err := decodeSource(data)
	if err != nil {
		return "", errors.Wrapf(err, "decode %s", path)
	}
	return src, nil
}

// decodeSource strips a byte order mark and converts the text to UTF-8.
func decodeSource(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// bailout unwinds the parser to the nearest backtracking point or entry
// point.
type bailout struct {
	err error
}

// run primes the first token and calls fn, converting a bailout into an
// error.
func (p *parser) run(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			err = b.err
		}
	}()
	p.next()
	fn()
	return nil
}

func (p *parser) next() {
	p.prevEnd = p.token.Idx1
	p.scanner.Next()
	p.token = p.scanner.Token
	if p.token.Kind == token.Illegal {
		p.errorLexical(p.scanner.Err())
	}
}

type parserState struct {
	c scanner.Checkpoint

	tok     scanner.Token
	prevEnd file.Idx
	scope   *scope
	allowIn bool
	depth   int

	err *Error
}

func (p *parser) mark() parserState {
	return parserState{
		c:       p.scanner.Checkpoint(),
		tok:     p.token,
		prevEnd: p.prevEnd,
		scope:   p.scope,
		allowIn: p.scope.allowIn,
		depth:   p.depth,
		err:     p.err,
	}
}

// restore rewinds to a snapshot. The furthest error is kept so that a
// failure of the last alternative can be compared against earlier ones.
func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	p.prevEnd = state.prevEnd
	p.scope = state.scope
	p.scope.allowIn = state.allowIn
	p.depth = state.depth
}

// try runs fn speculatively. If fn fails with a syntax error, the parser is
// rewound and try reports false. A depth overflow is never absorbed.
func (p *parser) try(fn func()) (ok bool) {
	state := p.mark()
	defer func() {
		if r := recover(); r != nil {
			b, isBailout := r.(bailout)
			if !isBailout || errors.Is(b.err, ErrTooDeep) {
				panic(r)
			}
			p.restore(state)
			ok = false
		}
	}()
	fn()
	p.err = state.err
	return true
}

func (p *parser) peek() scanner.Token {
	state := p.mark()
	p.scanner.Next()
	tok := p.scanner.Token
	p.restore(state)
	return tok
}

func (p *parser) enter() {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		panic(bailout{errors.Wrapf(ErrTooDeep, "%s", p.file.Position(p.token.Idx0))})
	}
}

func (p *parser) leave() {
	p.depth--
}

// span closes a node that began at start and ends with the last consumed
// token.
func (p *parser) span(start file.Idx) ast.Span {
	return ast.Span{From: start, To: p.prevEnd}
}

func (p *parser) raw() string {
	return p.scanner.Slice(p.token.Idx0, p.token.Idx1)
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.token.Kind
	return p.token.OnNewLine || kind == token.RightBrace || kind == token.Eof
}

// semicolon consumes an explicit semicolon or accepts an inserted one.
func (p *parser) semicolon() {
	if p.token.Kind == token.Semicolon {
		p.next()
		return
	}
	if !p.canInsertSemicolon() {
		p.errorUnexpected(token.Semicolon.String())
	}
}

// expectEnd requires that the whole input has been consumed.
func (p *parser) expectEnd() {
	if p.token.Kind != token.Eof {
		p.errorUnexpected("end of input")
	}
}

func (p *parser) expect(value token.Token) file.Idx {
	idx := p.token.Idx0
	if p.token.Kind != value {
		p.errorUnexpected(value.String())
	}
	p.next()
	return idx
}
