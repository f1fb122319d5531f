package scanner

import "unicode"

func isWhiteSpace(chr rune) bool {
	switch chr {
	case '\u0009', '\u000b', '\u000c', ' ', '\u00a0', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, chr)
}
