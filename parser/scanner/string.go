package scanner

import (
	"strings"

	"github.com/domenkozar/language-ecmascript/token"
)

// scanString scans a single or double quoted string literal and stores its
// decoded value in the token.
func (s *Scanner) scanString() token.Token {
	start := s.src.Offset()
	delim, _ := s.src.NextByte()

	str := &strings.Builder{}
	chunkStart := s.src.Offset()
	for {
		b, ok := s.src.PeekByte()
		if !ok {
			return s.fail(unterminatedString(start, s.src.Offset()))
		}

		switch {
		case b == delim:
			str.WriteString(s.src.FromPositionToCurrent(chunkStart))
			s.src.NextByte()
			s.Token.Value = str.String()
			return token.String

		case b == '\\':
			str.WriteString(s.src.FromPositionToCurrent(chunkStart))
			s.src.NextByte()
			if !s.readStringEscapeSequence(str) {
				return token.Illegal
			}
			chunkStart = s.src.Offset()

		case b == '\n' || b == '\r':
			return s.fail(unterminatedString(start, s.src.Offset()))

		default:
			if c, _ := s.src.NextRune(); c == '\u2028' || c == '\u2029' {
				return s.fail(unterminatedString(start, s.src.Offset()))
			}
		}
	}
}

// readStringEscapeSequence decodes the escape following a backslash.
func (s *Scanner) readStringEscapeSequence(str *strings.Builder) bool {
	escStart := s.src.Offset() - 1

	chr, ok := s.src.NextRune()
	if !ok {
		s.fail(unterminatedString(escStart, s.src.Offset()))
		return false
	}

	switch chr {
	case '\u000a', '\u2028', '\u2029':
		// line continuation
	case '\u000d':
		s.src.AdvanceIfByteEquals('\n')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'n':
		str.WriteByte('\n')
	case 'r':
		str.WriteByte('\r')
	case 't':
		str.WriteByte('\t')
	case 'v':
		str.WriteByte('\v')
	case 'x':
		hi, ok := s.hexDigit()
		if !ok {
			s.fail(invalidEscapeSequence(escStart, s.src.Offset()))
			return false
		}
		lo, ok := s.hexDigit()
		if !ok {
			s.fail(invalidEscapeSequence(escStart, s.src.Offset()))
			return false
		}
		str.WriteRune(hi<<4 | lo)
	case 'u':
		value := s.surrogatePair()
		if value < 0 {
			s.fail(invalidUnicodeEscapeSequence(escStart, s.src.Offset()))
			return false
		}
		str.WriteRune(value)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		// Legacy octal escape, at most \377.
		value := chr - '0'
		more := 1
		if chr <= '3' {
			more = 2
		}
		for ; more > 0; more-- {
			b, ok := s.src.PeekByte()
			if !ok || b < '0' || b > '7' {
				break
			}
			s.src.NextByte()
			value = value*8 + rune(b-'0')
		}
		str.WriteRune(value)
	default:
		str.WriteRune(chr)
	}
	return true
}
