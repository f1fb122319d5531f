package scanner

import (
	"unicode/utf8"

	"github.com/domenkozar/language-ecmascript/file"
)

// Source is a read cursor over the script text.
type Source struct {
	src string
	pos file.Idx
}

func NewSource(src string) Source {
	return Source{src: src}
}

func (s *Source) EOF() bool {
	return s.pos >= len(s.src)
}

func (s *Source) Offset() file.Idx {
	return s.pos
}

func (s *Source) SetPosition(pos file.Idx) {
	s.pos = pos
}

func (s *Source) NextRune() (rune, bool) {
	r, ok := s.PeekRune()
	if ok {
		if r < utf8.RuneSelf {
			s.pos++
		} else {
			_, size := utf8.DecodeRuneInString(s.src[s.pos:])
			s.pos += size
		}
	}
	return r, ok
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.src[s.pos]; b < utf8.RuneSelf {
		return rune(b), true
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.src[s.pos]
	s.pos++
	return b, true
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.src[s.pos], true
}

// PeekByteAt returns the byte n positions past the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	if s.pos+n >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos+n], true
}

func (s *Source) AdvanceIfByteEquals(b byte) (matched bool) {
	nextB, ok := s.PeekByte()
	if ok && nextB == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos file.Idx) string {
	return s.src[pos:s.pos]
}

func (s *Source) Slice(from, to file.Idx) string {
	return s.src[from:to]
}
