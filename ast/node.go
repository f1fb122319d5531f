// Package ast declares the types used to represent ECMAScript 5 syntax trees.
//
// Every node embeds a Span holding the byte offsets of its first character
// and of the first character after it. Offsets resolve to line and column
// through the *file.File attached to the Program.
package ast

import "github.com/domenkozar/language-ecmascript/file"

// Idx is a compact encoding of a source position within JS code.
type Idx = file.Idx

// Node is implemented by every syntax tree node.
type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

// Span is the source range of a node.
type Span struct {
	From Idx
	To   Idx
}

func (s Span) Idx0() Idx { return s.From }
func (s Span) Idx1() Idx { return s.To }

// Program is the root of a parsed script.
type Program struct {
	Span
	File *file.File
	Body []Stmt
}

// Position resolves the start of a node within the program's file.
func (p *Program) Position(n Node) file.Position {
	return p.File.Position(n.Idx0())
}
