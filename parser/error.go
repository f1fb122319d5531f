package parser

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/domenkozar/language-ecmascript/file"
	"github.com/domenkozar/language-ecmascript/parser/scanner"
	"github.com/domenkozar/language-ecmascript/token"
)

const (
	errUnexpectedToken      = "Unexpected token "
	errUnexpectedEndOfInput = "Unexpected end of input"
	errInvalidLeftHandSide  = "Invalid left-hand side in assignment"
	errNewlineAfterThrow    = "Illegal newline after throw"
	errDuplicateDefault     = "More than one default clause in switch statement"
	errGetterParameters     = "Getter must not have any formal parameters."
	errSetterParameters     = "Setter must have exactly one formal parameter."
)

// ErrTooDeep is returned when the input nests deeper than Options.MaxDepth.
var ErrTooDeep = errors.New("maximum nesting depth exceeded")

// Error is a syntax error. Expected lists what the grammar would have
// accepted at Position, when that is known.
type Error struct {
	Position file.Position
	Message  string
	Expected []string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Position.IsValid() {
		b.WriteString(e.Position.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	switch len(e.Expected) {
	case 0:
	case 1:
		b.WriteString(" (expected ")
		b.WriteString(e.Expected[0])
		b.WriteString(")")
	default:
		b.WriteString(" (expected one of ")
		b.WriteString(strings.Join(e.Expected, " "))
		b.WriteString(")")
	}
	return b.String()
}

// fail records err and unwinds. Of all failures seen since the last
// successful alternative, the one furthest into the input is reported.
func (p *parser) fail(err *Error) {
	p.err = furthest(p.err, err)
	panic(bailout{p.err})
}

func furthest(cur, next *Error) *Error {
	switch {
	case cur == nil || next.Position.Offset > cur.Position.Offset:
		return next
	case next.Position.Offset < cur.Position.Offset:
		return cur
	case len(cur.Expected) == 0:
		return cur
	case len(next.Expected) == 0:
		return next
	}
	expected := append(slices.Clone(cur.Expected), next.Expected...)
	slices.Sort(expected)
	return &Error{
		Position: cur.Position,
		Message:  cur.Message,
		Expected: slices.Compact(expected),
	}
}

func (p *parser) errorAt(idx file.Idx, msg string) {
	p.fail(&Error{
		Position: p.file.Position(idx),
		Message:  msg,
	})
}

// errorUnexpected reports the current token as unexpected.
func (p *parser) errorUnexpected(expected ...string) {
	slices.Sort(expected)
	p.fail(&Error{
		Position: p.file.Position(p.token.Idx0),
		Message:  p.unexpectedMessage(),
		Expected: expected,
	})
}

func (p *parser) unexpectedMessage() string {
	switch p.token.Kind {
	case token.Eof:
		return errUnexpectedEndOfInput
	case token.Identifier:
		return "Unexpected identifier"
	case token.Keyword:
		return "Unexpected reserved word"
	case token.Number:
		return "Unexpected number"
	case token.String:
		return "Unexpected string"
	}
	return errUnexpectedToken + p.raw()
}

func (p *parser) errorLexical(err *scanner.Error) {
	p.errorAt(err.Start, err.Message)
}
