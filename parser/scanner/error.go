package scanner

import (
	"fmt"

	"github.com/domenkozar/language-ecmascript/file"
)

// Error is a lexical error covering the source range [Start, End).
type Error struct {
	Message string
	Start   file.Idx
	End     file.Idx
}

func (d *Error) Error() string {
	return d.Message
}

func invalidCharacter(c rune, start, end file.Idx) *Error {
	return &Error{
		Message: fmt.Sprintf("Invalid character %q", c),
		Start:   start,
		End:     end,
	}
}

func unterminatedString(start, end file.Idx) *Error {
	return &Error{
		Message: "Unterminated string",
		Start:   start,
		End:     end,
	}
}

func unterminatedMultiLineComment(start, end file.Idx) *Error {
	return &Error{
		Message: "Unterminated multiline comment",
		Start:   start,
		End:     end,
	}
}

func unterminatedRegExp(start, end file.Idx) *Error {
	return &Error{
		Message: "Unterminated regular expression",
		Start:   start,
		End:     end,
	}
}

func invalidEscapeSequence(start, end file.Idx) *Error {
	return &Error{
		Message: "Invalid escape sequence",
		Start:   start,
		End:     end,
	}
}

func invalidNumber(start, end file.Idx) *Error {
	return &Error{
		Message: "Invalid number",
		Start:   start,
		End:     end,
	}
}

func invalidNumberEnd(start, end file.Idx) *Error {
	return &Error{
		Message: "Invalid characters after number",
		Start:   start,
		End:     end,
	}
}

func invalidUnicodeEscapeSequence(start, end file.Idx) *Error {
	return &Error{
		Message: "Invalid Unicode escape sequence",
		Start:   start,
		End:     end,
	}
}

func escapedKeyword(start, end file.Idx) *Error {
	return &Error{
		Message: "Keyword must not contain escaped characters",
		Start:   start,
		End:     end,
	}
}

func regExpFlag(c rune, start, end file.Idx) *Error {
	return &Error{
		Message: fmt.Sprintf("Invalid regular expression flag %q", c),
		Start:   start,
		End:     end,
	}
}

func regExpFlagTwice(c rune, start, end file.Idx) *Error {
	return &Error{
		Message: fmt.Sprintf("Duplicate regular expression flag %q", c),
		Start:   start,
		End:     end,
	}
}
