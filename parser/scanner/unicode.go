package scanner

import (
	"unicode"
	"unicode/utf16"
)

func (s *Scanner) hexFourDigits() (val rune) {
	for i := 0; i < 4; i++ {
		next, ok := s.hexDigit()
		if !ok {
			return -1
		}
		val = (val << 4) | next
	}
	return val
}

func (s *Scanner) hexDigit() (rune, bool) {
	b, ok := s.src.PeekByte()
	if !ok || digitValue(b) >= 16 {
		return 0, false
	}
	s.src.NextByte()
	return rune(digitValue(b)), true
}

// surrogatePair reads the four hex digits of a \u escape and, when they
// form a high surrogate followed by a \u escaped low surrogate, combines
// the pair into one code point.
func (s *Scanner) surrogatePair() rune {
	high := s.hexFourDigits()
	if high < 0 || !utf16.IsSurrogate(high) {
		return high
	}
	if a, _ := s.src.PeekByteAt(0); a != '\\' {
		return high
	}
	if b, _ := s.src.PeekByteAt(1); b != 'u' {
		return high
	}

	mark := s.src.Offset()
	s.src.NextByte()
	s.src.NextByte()
	low := s.hexFourDigits()
	if r := utf16.DecodeRune(high, low); r != unicode.ReplacementChar {
		return r
	}
	s.src.SetPosition(mark)
	return high
}
