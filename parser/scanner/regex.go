package scanner

import (
	"strings"

	"github.com/domenkozar/language-ecmascript/token"
)

// ScanRegExp rescans the current / or /= token as a regular expression
// literal. The parser calls it where a primary expression is expected,
// since only the grammar can tell division from a regexp.
func (s *Scanner) ScanRegExp() (pattern, flags string) {
	start := s.Token.Idx0
	s.src.SetPosition(start + 1)

	var inEscape, inCharClass bool
body:
	for {
		chr, ok := s.src.NextRune()
		if !ok || isLineTerminator(chr) {
			s.Token.Kind = s.fail(unterminatedRegExp(start, s.src.Offset()))
			s.Token.Idx1 = s.src.Offset()
			return "", ""
		}

		switch {
		case inEscape:
			inEscape = false
		case chr == '\\':
			inEscape = true
		case chr == '[':
			inCharClass = true
		case chr == ']':
			inCharClass = false
		case chr == '/' && !inCharClass:
			break body
		}
	}
	pattern = s.src.Slice(start+1, s.src.Offset()-1)

	flagStart := s.src.Offset()
	for {
		chr, ok := s.src.PeekRune()
		if !ok || !isIdentifierPart(chr) {
			break
		}
		idx := s.src.Offset()
		s.src.NextRune()
		switch {
		case chr != 'g' && chr != 'i' && chr != 'm':
			s.Token.Kind = s.fail(regExpFlag(chr, idx, s.src.Offset()))
		case strings.ContainsRune(s.src.Slice(flagStart, idx), chr):
			s.Token.Kind = s.fail(regExpFlagTwice(chr, idx, s.src.Offset()))
		default:
			continue
		}
		s.Token.Idx1 = s.src.Offset()
		return "", ""
	}
	flags = s.src.FromPositionToCurrent(flagStart)

	s.Token.Kind = token.RegExp
	s.Token.Value = pattern
	s.Token.Idx1 = s.src.Offset()
	return pattern, flags
}
