package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/domenkozar/language-ecmascript/token"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicode.In(chr, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return isIdentifierStart(chr) ||
		unicode.In(chr, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) ||
		chr == '\u200c' || chr == '\u200d'
}

// scanIdentifier scans an IdentifierName and classifies it as a keyword,
// literal or identifier. The caller has checked the first character.
func (s *Scanner) scanIdentifier() token.Token {
	start := s.src.Offset()

	// Only allocated once an escape forces the name to differ from the source.
	var str *strings.Builder
	first := true
	for {
		c, ok := s.src.PeekRune()
		if !ok {
			break
		}

		if c == '\\' {
			if str == nil {
				str = &strings.Builder{}
				str.WriteString(s.src.FromPositionToCurrent(start))
			}
			escStart := s.src.Offset()
			s.src.NextByte()
			if !s.src.AdvanceIfByteEquals('u') {
				return s.fail(invalidUnicodeEscapeSequence(escStart, s.src.Offset()))
			}
			value := s.hexFourDigits()
			if first && !isIdentifierStart(value) || !first && !isIdentifierPart(value) {
				return s.fail(invalidUnicodeEscapeSequence(escStart, s.src.Offset()))
			}
			str.WriteRune(value)
		} else if first && isIdentifierStart(c) || !first && isIdentifierPart(c) {
			s.src.NextRune()
			if str != nil {
				str.WriteRune(c)
			}
		} else {
			break
		}
		first = false
	}

	if str == nil {
		s.Token.Value = s.src.FromPositionToCurrent(start)
	} else {
		s.Token.Value = str.String()
	}

	kind, strict := token.LiteralKeyword(s.Token.Value)
	if kind == 0 || strict {
		return token.Identifier
	}
	if str != nil {
		return s.fail(escapedKeyword(start, s.src.Offset()))
	}
	return kind
}
