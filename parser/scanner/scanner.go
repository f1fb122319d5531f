// Package scanner implements the lexical grammar of ECMAScript 5.
//
// A Scanner produces one significant token at a time. Whitespace and
// comments are skipped, but a line terminator among them is recorded on the
// following token so the parser can apply automatic semicolon insertion.
package scanner

import (
	"unicode/utf8"

	"github.com/domenkozar/language-ecmascript/file"
	"github.com/domenkozar/language-ecmascript/token"
)

type Scanner struct {
	Token Token

	src Source
	err *Error
}

func New(src string) *Scanner {
	return &Scanner{
		src: NewSource(src),
	}
}

// Next advances to the next token. On a lexical error the token kind is
// token.Illegal and Err describes the problem.
func (s *Scanner) Next() {
	s.Token.OnNewLine = false
	s.Token.Value = ""
	s.err = nil

	for {
		s.Token.Idx0 = s.src.Offset()

		b, ok := s.src.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		switch b {
		case ' ', '\t', 0x0B, 0x0C:
			s.src.NextByte()
			continue

		case '\n', '\r':
			s.src.NextByte()
			s.Token.OnNewLine = true
			continue

		case '/':
			if next, _ := s.src.PeekByteAt(1); next == '/' {
				s.skipSingleLineComment()
				continue
			} else if next == '*' {
				if !s.skipMultiLineComment() {
					s.Token.Kind = token.Illegal
					break
				}
				continue
			}
			s.src.NextByte()
			s.Token.Kind = s.assignOr(token.Slash, token.QuotientAssign)

		case '(':
			s.src.NextByte()
			s.Token.Kind = token.LeftParenthesis
		case ')':
			s.src.NextByte()
			s.Token.Kind = token.RightParenthesis
		case '[':
			s.src.NextByte()
			s.Token.Kind = token.LeftBracket
		case ']':
			s.src.NextByte()
			s.Token.Kind = token.RightBracket
		case '{':
			s.src.NextByte()
			s.Token.Kind = token.LeftBrace
		case '}':
			s.src.NextByte()
			s.Token.Kind = token.RightBrace
		case ',':
			s.src.NextByte()
			s.Token.Kind = token.Comma
		case ';':
			s.src.NextByte()
			s.Token.Kind = token.Semicolon
		case ':':
			s.src.NextByte()
			s.Token.Kind = token.Colon
		case '?':
			s.src.NextByte()
			s.Token.Kind = token.QuestionMark
		case '~':
			s.src.NextByte()
			s.Token.Kind = token.BitwiseNot

		case '.':
			if next, ok := s.src.PeekByteAt(1); ok && isDecimalDigit(next) {
				s.Token.Kind = s.scanNumber()
				break
			}
			s.src.NextByte()
			s.Token.Kind = token.Period

		case '<':
			s.src.NextByte()
			if s.src.AdvanceIfByteEquals('<') {
				s.Token.Kind = s.assignOr(token.ShiftLeft, token.ShiftLeftAssign)
			} else {
				s.Token.Kind = s.assignOr(token.Less, token.LessOrEqual)
			}
		case '>':
			s.src.NextByte()
			switch {
			case s.src.AdvanceIfByteEquals('>'):
				if s.src.AdvanceIfByteEquals('>') {
					s.Token.Kind = s.assignOr(token.UnsignedShiftRight, token.UnsignedShiftRightAssign)
				} else {
					s.Token.Kind = s.assignOr(token.ShiftRight, token.ShiftRightAssign)
				}
			default:
				s.Token.Kind = s.assignOr(token.Greater, token.GreaterOrEqual)
			}
		case '=':
			s.src.NextByte()
			if s.src.AdvanceIfByteEquals('=') {
				s.Token.Kind = s.assignOr(token.Equal, token.StrictEqual)
			} else {
				s.Token.Kind = token.Assign
			}
		case '!':
			s.src.NextByte()
			if s.src.AdvanceIfByteEquals('=') {
				s.Token.Kind = s.assignOr(token.NotEqual, token.StrictNotEqual)
			} else {
				s.Token.Kind = token.Not
			}
		case '+':
			s.src.NextByte()
			if s.src.AdvanceIfByteEquals('+') {
				s.Token.Kind = token.Increment
			} else {
				s.Token.Kind = s.assignOr(token.Plus, token.AddAssign)
			}
		case '-':
			s.src.NextByte()
			if s.src.AdvanceIfByteEquals('-') {
				s.Token.Kind = token.Decrement
			} else {
				s.Token.Kind = s.assignOr(token.Minus, token.SubtractAssign)
			}
		case '*':
			s.src.NextByte()
			s.Token.Kind = s.assignOr(token.Multiply, token.MultiplyAssign)
		case '%':
			s.src.NextByte()
			s.Token.Kind = s.assignOr(token.Remainder, token.RemainderAssign)
		case '^':
			s.src.NextByte()
			s.Token.Kind = s.assignOr(token.ExclusiveOr, token.ExclusiveOrAssign)
		case '&':
			s.src.NextByte()
			if s.src.AdvanceIfByteEquals('&') {
				s.Token.Kind = token.LogicalAnd
			} else {
				s.Token.Kind = s.assignOr(token.And, token.AndAssign)
			}
		case '|':
			s.src.NextByte()
			if s.src.AdvanceIfByteEquals('|') {
				s.Token.Kind = token.LogicalOr
			} else {
				s.Token.Kind = s.assignOr(token.Or, token.OrAssign)
			}

		case '"', '\'':
			s.Token.Kind = s.scanString()

		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			s.Token.Kind = s.scanNumber()

		case '\\':
			s.Token.Kind = s.scanIdentifier()

		default:
			if b < utf8.RuneSelf {
				if asciiStart[b] {
					s.Token.Kind = s.scanIdentifier()
					break
				}
				s.src.NextByte()
				s.Token.Kind = s.fail(invalidCharacter(rune(b), s.Token.Idx0, s.src.Offset()))
				break
			}

			r, _ := s.src.PeekRune()
			switch {
			case r == '\u2028' || r == '\u2029':
				s.src.NextRune()
				s.Token.OnNewLine = true
				continue
			case isWhiteSpace(r):
				s.src.NextRune()
				continue
			case isIdentifierStart(r):
				s.Token.Kind = s.scanIdentifier()
			default:
				s.src.NextRune()
				s.Token.Kind = s.fail(invalidCharacter(r, s.Token.Idx0, s.src.Offset()))
			}
		}
		break
	}
	s.Token.Idx1 = s.src.Offset()
}

// assignOr returns assign when the next byte is '=' (consuming it), and
// plain otherwise.
func (s *Scanner) assignOr(plain, assign token.Token) token.Token {
	if s.src.AdvanceIfByteEquals('=') {
		return assign
	}
	return plain
}

func (s *Scanner) fail(err *Error) token.Token {
	s.err = err
	return token.Illegal
}

// Err returns the lexical error behind the current token.Illegal token.
func (s *Scanner) Err() *Error {
	return s.err
}

func (s *Scanner) Offset() file.Idx {
	return s.src.Offset()
}

// Slice returns the source text in [from, to).
func (s *Scanner) Slice(from, to file.Idx) string {
	return s.src.Slice(from, to)
}

// Raw returns the source text of the current token.
func (s *Scanner) Raw() string {
	return s.src.Slice(s.Token.Idx0, s.Token.Idx1)
}

// Checkpoint captures the scanner state so a speculative parse can be undone.
type Checkpoint struct {
	pos file.Idx
	tok Token
	err *Error
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos: s.src.Offset(),
		tok: s.Token,
		err: s.err,
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.SetPosition(c.pos)
	s.Token = c.tok
	s.err = c.err
}
