package scanner

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

// skipSingleLineComment skips a // comment, leaving the line terminator in
// place.
func (s *Scanner) skipSingleLineComment() {
	s.src.NextByte()
	s.src.NextByte()
	for {
		p, ok := s.src.PeekRune()
		if !ok || isLineTerminator(p) {
			return
		}
		s.src.NextRune()
	}
}

// skipMultiLineComment skips a /* */ comment. A comment spanning a line
// terminator counts as one for automatic semicolon insertion.
func (s *Scanner) skipMultiLineComment() bool {
	start := s.src.Offset()
	s.src.NextByte()
	s.src.NextByte()
	for {
		p, ok := s.src.NextRune()
		if !ok {
			s.fail(unterminatedMultiLineComment(start, s.src.Offset()))
			return false
		}
		if isLineTerminator(p) {
			s.Token.OnNewLine = true
		}
		if p == '*' && s.src.AdvanceIfByteEquals('/') {
			return true
		}
	}
}
