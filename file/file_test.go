package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	f := New("a.js", "var a;\r\nb\nüc\u2028d")

	tests := []struct {
		idx  Idx
		line int
		col  int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{8, 2, 1},
		{10, 3, 1},
		{12, 3, 2}, // after the two byte ü
		{16, 4, 1},
		{100, 4, 2},
	}
	for _, tt := range tests {
		pos := f.Position(tt.idx)
		assert.Equal(t, tt.line, pos.Line, "line of %d", tt.idx)
		assert.Equal(t, tt.col, pos.Column, "column of %d", tt.idx)
		assert.Equal(t, "a.js", pos.Filename)
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "a.js:2:3", Position{Filename: "a.js", Line: 2, Column: 3}.String())
	assert.Equal(t, "2:3", Position{Line: 2, Column: 3}.String())
	assert.Equal(t, "a.js", Position{Filename: "a.js"}.String())
	assert.Equal(t, "-", Position{}.String())
}
