package scanner

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/domenkozar/language-ecmascript/token"
)

// scanNumber scans a NumericLiteral: decimal with optional fraction and
// exponent, 0x hexadecimal, or legacy octal such as 017.
func (s *Scanner) scanNumber() token.Token {
	start := s.src.Offset()

	switch {
	case s.src.AdvanceIfByteEquals('.'):
		s.decimalDigits()
		if !s.optionalExp(start) {
			return token.Illegal
		}

	case s.src.AdvanceIfByteEquals('0'):
		if s.src.AdvanceIfByteEquals('x') || s.src.AdvanceIfByteEquals('X') {
			if s.hexDigits() == 0 {
				return s.fail(invalidNumber(start, s.src.Offset()))
			}
			return s.checkAfterNumericLiteral(start)
		}
		if b, ok := s.src.PeekByte(); ok && isDecimalDigit(b) {
			digits := s.src.Offset()
			s.decimalDigits()
			if isLegacyOctal(s.src.FromPositionToCurrent(digits)) {
				return s.checkAfterNumericLiteral(start)
			}
		}
		if !s.fraction(start) {
			return token.Illegal
		}

	default:
		s.decimalDigits()
		if !s.fraction(start) {
			return token.Illegal
		}
	}

	return s.checkAfterNumericLiteral(start)
}

func (s *Scanner) fraction(start int) bool {
	if s.src.AdvanceIfByteEquals('.') {
		s.decimalDigits()
	}
	return s.optionalExp(start)
}

func (s *Scanner) optionalExp(start int) bool {
	b, ok := s.src.PeekByte()
	if !ok || (b != 'e' && b != 'E') {
		return true
	}
	s.src.NextByte()
	if b, ok := s.src.PeekByte(); ok && (b == '+' || b == '-') {
		s.src.NextByte()
	}
	if s.decimalDigits() == 0 {
		s.fail(invalidNumber(start, s.src.Offset()))
		return false
	}
	return true
}

func (s *Scanner) decimalDigits() (n int) {
	for {
		b, ok := s.src.PeekByte()
		if !ok || !isDecimalDigit(b) {
			return n
		}
		s.src.NextByte()
		n++
	}
}

func (s *Scanner) hexDigits() (n int) {
	for {
		b, ok := s.src.PeekByte()
		if !ok || digitValue(b) >= 16 {
			return n
		}
		s.src.NextByte()
		n++
	}
}

// checkAfterNumericLiteral rejects an identifier start or digit directly
// after a number, as in 3in or 0x1g.
func (s *Scanner) checkAfterNumericLiteral(start int) token.Token {
	if c, ok := s.src.PeekRune(); ok && (isIdentifierStart(c) || c == '\\' || c < 128 && isDecimalDigit(byte(c))) {
		for {
			c, ok := s.src.PeekRune()
			if !ok || !isIdentifierPart(c) {
				break
			}
			s.src.NextRune()
		}
		return s.fail(invalidNumberEnd(start, s.src.Offset()))
	}
	s.Token.Value = s.src.FromPositionToCurrent(start)
	return token.Number
}

func isLegacyOctal(digits string) bool {
	return strings.Trim(digits, "01234567") == ""
}

func isDecimalDigit(chr byte) bool {
	return '0' <= chr && chr <= '9'
}

func digitValue(chr byte) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

// ParseNumber returns the value of a numeric literal as scanned by Next.
// Literals too large for a float64 evaluate to +Inf.
func ParseNumber(raw string) (float64, error) {
	switch {
	case len(raw) > 2 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X'):
		return parseInteger(raw[2:], 16)
	case len(raw) > 1 && raw[0] == '0' && isLegacyOctal(raw[1:]):
		return parseInteger(raw[1:], 8)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return value, nil
		}
		return 0, errors.Wrapf(err, "invalid number %q", raw)
	}
	return value, nil
}

func parseInteger(digits string, base int) (float64, error) {
	if value, err := strconv.ParseUint(digits, base, 64); err == nil {
		return float64(value), nil
	}
	value, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, errors.Errorf("invalid base %d digits %q", base, digits)
	}
	f, _ := new(big.Float).SetInt(value).Float64()
	return f, nil
}
