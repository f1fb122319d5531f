// Package token defines the lexical tokens of ECMAScript 5.
package token

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Token is the set of lexical tokens in JavaScript (ECMA5).
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

type keyword struct {
	token         Token
	futureKeyword bool
	strict        bool
}

// LiteralKeyword returns the keyword token if literal is a keyword, a Keyword token if the literal
// is a future reserved word (class, const, enum, ...), or 0 if the literal is not a keyword.
// The second result reports whether the word is only reserved in strict mode code; such words
// are returned as 0 and scanned as identifiers.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.strict {
			return 0, true
		}
		if k.futureKeyword {
			return Keyword, false
		}
		return k.token, false
	}
	return 0, false
}

// Keywords returns every reserved word, including those only reserved in strict mode code,
// sorted.
func Keywords() []string {
	words := maps.Keys(keywordTable)
	slices.Sort(words)
	return words
}

// IsKeyword reports whether the token is a reserved word (keyword, future reserved word,
// or one of the literals null, true and false). Reserved words are valid IdentifierNames,
// so they may follow a dot or name an object literal property.
func IsKeyword(t Token) bool {
	return t >= Keyword
}

// IdentifierName reports whether the token may be used where the grammar expects an
// IdentifierName.
func IdentifierName(t Token) bool {
	return t == Identifier || IsKeyword(t)
}
