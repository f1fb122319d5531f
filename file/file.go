// Package file maps source offsets to human readable positions.
package file

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Idx is a 0-based byte offset into a source text.
type Idx = int

// Position describes a location in a source file. Line and Column are
// 1-based (Column counts runes), Offset is the 0-based byte offset.
type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

// IsValid reports whether the position refers to an actual location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// File is a named source text with a table of line start offsets.
type File struct {
	name  string
	src   string
	lines []int
}

// New creates a File. Line terminators are LF, CR, CRLF, U+2028 and U+2029.
func New(name, src string) *File {
	f := &File{name: name, src: src, lines: []int{0}}
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			i++
			f.lines = append(f.lines, i)
		case c == '\r':
			i++
			if i < len(src) && src[i] == '\n' {
				i++
			}
			f.lines = append(f.lines, i)
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(src[i:])
			i += size
			if r == '\u2028' || r == '\u2029' {
				f.lines = append(f.lines, i)
			}
		default:
			i++
		}
	}
	return f
}

// Name returns the file name given to New.
func (f *File) Name() string {
	return f.name
}

// Source returns the source text.
func (f *File) Source() string {
	return f.src
}

// Slice returns the source text between two offsets.
func (f *File) Slice(from, to Idx) string {
	return f.src[from:to]
}

// Position resolves an offset. Offsets past the end of the text clamp to the end.
func (f *File) Position(idx Idx) Position {
	if idx < 0 {
		idx = 0
	}
	if idx > len(f.src) {
		idx = len(f.src)
	}
	line := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > idx }) - 1
	start := f.lines[line]
	return Position{
		Filename: f.name,
		Line:     line + 1,
		Column:   utf8.RuneCountInString(f.src[start:idx]) + 1,
		Offset:   idx,
	}
}
