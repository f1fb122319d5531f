package scanner

import (
	"github.com/domenkozar/language-ecmascript/file"
	"github.com/domenkozar/language-ecmascript/token"
)

// Token is the current lexeme of a Scanner.
type Token struct {
	Kind token.Token

	// OnNewLine is set when a line terminator, possibly inside a multi-line
	// comment, separates this token from the previous one.
	OnNewLine bool

	Idx0, Idx1 file.Idx

	// Value is the identifier name with escapes resolved, the decoded
	// string literal, the raw numeric literal or the regexp pattern.
	Value string
}
