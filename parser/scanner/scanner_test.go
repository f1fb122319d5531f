package scanner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domenkozar/language-ecmascript/token"
)

// scanAll returns every token up to and including Eof or the first Illegal.
func scanAll(src string) []Token {
	s := New(src)
	var out []Token
	for {
		s.Next()
		out = append(out, s.Token)
		if s.Token.Kind == token.Eof || s.Token.Kind == token.Illegal {
			return out
		}
	}
}

func kinds(toks []Token) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestPunctuators(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Token
	}{
		{">>>= >>> >>= >> >= >", []token.Token{
			token.UnsignedShiftRightAssign, token.UnsignedShiftRight, token.ShiftRightAssign,
			token.ShiftRight, token.GreaterOrEqual, token.Greater, token.Eof,
		}},
		{"<<= << <= <", []token.Token{token.ShiftLeftAssign, token.ShiftLeft, token.LessOrEqual, token.Less, token.Eof}},
		{"=== == = !== != !", []token.Token{
			token.StrictEqual, token.Equal, token.Assign, token.StrictNotEqual, token.NotEqual, token.Not, token.Eof,
		}},
		{"a+++b", []token.Token{token.Identifier, token.Increment, token.Plus, token.Identifier, token.Eof}},
		{"&& &= & || |= | ^= ^", []token.Token{
			token.LogicalAnd, token.AndAssign, token.And, token.LogicalOr, token.OrAssign, token.Or,
			token.ExclusiveOrAssign, token.ExclusiveOr, token.Eof,
		}},
		{"(){}[];,.:?~", []token.Token{
			token.LeftParenthesis, token.RightParenthesis, token.LeftBrace, token.RightBrace,
			token.LeftBracket, token.RightBracket, token.Semicolon, token.Comma, token.Period,
			token.Colon, token.QuestionMark, token.BitwiseNot, token.Eof,
		}},
		{"a /= b / c", []token.Token{token.Identifier, token.QuotientAssign, token.Identifier, token.Slash, token.Identifier, token.Eof}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kinds(scanAll(tt.src)), tt.src)
	}
}

func TestKeywords(t *testing.T) {
	toks := scanAll("instanceof typeof null true class let yield undefined")
	assert.Equal(t, []token.Token{
		token.InstanceOf, token.Typeof, token.Null, token.Boolean,
		token.Keyword, token.Identifier, token.Identifier, token.Identifier, token.Eof,
	}, kinds(toks))
	assert.Equal(t, "true", toks[3].Value)
	assert.Equal(t, "class", toks[4].Value)
}

func TestIdentifiers(t *testing.T) {
	toks := scanAll(`$a _b abc café ĳ π1`)
	require.Len(t, toks, 7)
	assert.Equal(t, "$a", toks[0].Value)
	assert.Equal(t, "_b", toks[1].Value)
	assert.Equal(t, "abc", toks[2].Value)
	assert.Equal(t, "café", toks[3].Value)
	assert.Equal(t, "ĳ", toks[4].Value)
	assert.Equal(t, "π1", toks[5].Value)
	for _, tok := range toks[:6] {
		assert.Equal(t, token.Identifier, tok.Kind)
	}
}

func TestEscapedKeyword(t *testing.T) {
	s := New(`\u0076ar`)
	s.Next()
	assert.Equal(t, token.Illegal, s.Token.Kind)
	require.NotNil(t, s.Err())
	assert.Equal(t, "Keyword must not contain escaped characters", s.Err().Message)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"2.5E-1", 0.25},
		{"0x1F", 31},
		{"0XfF", 255},
		{"017", 15},
		{"019", 19},
		{"0.5e+1", 5},
		{"1e400", math.Inf(1)},
		{"0x10000000000000000", 18446744073709551616},
	}
	for _, tt := range tests {
		toks := scanAll(tt.src)
		require.Equal(t, []token.Token{token.Number, token.Eof}, kinds(toks), tt.src)
		assert.Equal(t, tt.src, toks[0].Value)
		got, err := ParseNumber(toks[0].Value)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.want, got, tt.src)
	}
}

func TestInvalidNumbers(t *testing.T) {
	for _, src := range []string{"3in", "0x", "1e", "0xg", "1.5abc"} {
		s := New(src)
		s.Next()
		assert.Equal(t, token.Illegal, s.Token.Kind, src)
		require.NotNil(t, s.Err(), src)
		assert.Equal(t, 0, s.Err().Start, src)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"abc"`, "abc"},
		{`'it\'s'`, "it's"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"\x41B"`, "AB"},
		{`"\0"`, "\x00"},
		{`"\101\7"`, "A\x07"},
		{`"\q"`, "q"},
		{"\"a\\\nb\"", "ab"},
		{"\"a\\\r\nb\"", "ab"},
		{`"😀"`, "\U0001F600"},
		{`"\uD83D\uDE00"`, "\U0001F600"},
		{`"\u00e9"`, "\u00e9"},
		{`"\b\f\v"`, "\b\f\v"},
	}
	for _, tt := range tests {
		toks := scanAll(tt.src)
		require.Equal(t, []token.Token{token.String, token.Eof}, kinds(toks), tt.src)
		assert.Equal(t, tt.want, toks[0].Value, tt.src)
		assert.Equal(t, len(tt.src), toks[0].Idx1, tt.src)
	}
}

func TestUnterminatedString(t *testing.T) {
	for _, src := range []string{`"abc`, "'ab\ncd'", `"\x4"`} {
		s := New(src)
		s.Next()
		assert.Equal(t, token.Illegal, s.Token.Kind, src)
		assert.NotNil(t, s.Err(), src)
	}
}

func TestOnNewLine(t *testing.T) {
	toks := scanAll("a // comment\nb /* x */ c /*\n*/ d\u2028e")
	require.Equal(t, []token.Token{
		token.Identifier, token.Identifier, token.Identifier, token.Identifier, token.Identifier, token.Eof,
	}, kinds(toks))
	assert.False(t, toks[0].OnNewLine)
	assert.True(t, toks[1].OnNewLine)
	assert.False(t, toks[2].OnNewLine)
	assert.True(t, toks[3].OnNewLine)
	assert.True(t, toks[4].OnNewLine)
}

func TestWhiteSpace(t *testing.T) {
	toks := scanAll("\ufeffa\u00a0\u2003b\v\fc")
	assert.Equal(t, []token.Token{token.Identifier, token.Identifier, token.Identifier, token.Eof}, kinds(toks))
	assert.Equal(t, 3, toks[0].Idx0)
}

func TestUnterminatedComment(t *testing.T) {
	s := New("a /* never closed")
	s.Next()
	s.Next()
	assert.Equal(t, token.Illegal, s.Token.Kind)
	require.NotNil(t, s.Err())
	assert.Equal(t, 2, s.Err().Start)
}

func TestInvalidCharacter(t *testing.T) {
	s := New("a # b")
	s.Next()
	s.Next()
	assert.Equal(t, token.Illegal, s.Token.Kind)
	require.NotNil(t, s.Err())
	assert.Equal(t, `Invalid character '#'`, s.Err().Message)
	assert.Equal(t, 2, s.Err().Start)
}

func TestScanRegExp(t *testing.T) {
	s := New(`/a[/]\/b/gi.test`)
	s.Next()
	require.Equal(t, token.Slash, s.Token.Kind)

	pattern, flags := s.ScanRegExp()
	assert.Equal(t, `a[/]\/b`, pattern)
	assert.Equal(t, "gi", flags)
	assert.Equal(t, token.RegExp, s.Token.Kind)
	assert.Equal(t, 0, s.Token.Idx0)
	assert.Equal(t, 11, s.Token.Idx1)

	s.Next()
	assert.Equal(t, token.Period, s.Token.Kind)
}

func TestScanRegExpFromQuotientAssign(t *testing.T) {
	s := New(`/=a/`)
	s.Next()
	require.Equal(t, token.QuotientAssign, s.Token.Kind)
	pattern, flags := s.ScanRegExp()
	assert.Equal(t, "=a", pattern)
	assert.Empty(t, flags)
}

func TestScanRegExpErrors(t *testing.T) {
	for _, src := range []string{"/abc", "/ab\nc/", "/a/x", "/a/gg"} {
		s := New(src)
		s.Next()
		s.ScanRegExp()
		assert.Equal(t, token.Illegal, s.Token.Kind, src)
		assert.NotNil(t, s.Err(), src)
	}
}

func TestCheckpointRewind(t *testing.T) {
	s := New("a\nb c")
	s.Next()
	cp := s.Checkpoint()
	s.Next()
	s.Next()
	assert.Equal(t, "c", s.Token.Value)

	s.Rewind(cp)
	assert.Equal(t, "a", s.Token.Value)
	s.Next()
	assert.Equal(t, "b", s.Token.Value)
	assert.True(t, s.Token.OnNewLine)
}

func TestRaw(t *testing.T) {
	s := New(`  'x\n'  `)
	s.Next()
	assert.Equal(t, `'x\n'`, s.Raw())
	assert.Equal(t, "x\n", s.Token.Value)
}
