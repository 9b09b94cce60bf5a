package card

import "unicode"

// Symbols maps color and rank indices to printable characters.
type Symbols interface {
	ColorChar(color int) byte
	RankChar(rank int) byte
}

// Alphabet is a Symbols that can also be read back.
type Alphabet interface {
	Symbols
	ColorIndex(ch byte) (int, bool)
	RankIndex(ch byte) (int, bool)
}

// ColorSymbols is an Alphabet whose colors are the letters of the string and
// whose ranks are the digits 1-9.
type ColorSymbols string

// DefaultSymbols is the standard RYGWB alphabet.
const DefaultSymbols ColorSymbols = "RYGWB"

func (s ColorSymbols) ColorChar(color int) byte {
	if color < 0 || color >= len(s) {
		return 'X'
	}
	return s[color]
}

func (s ColorSymbols) RankChar(rank int) byte {
	if rank < 0 || rank > 8 {
		return 'X'
	}
	return byte('1' + rank)
}

func (s ColorSymbols) ColorIndex(ch byte) (int, bool) {
	up := byte(unicode.ToUpper(rune(ch)))
	for i := 0; i < len(s); i++ {
		if s[i] == up {
			return i, true
		}
	}
	return -1, false
}

func (s ColorSymbols) RankIndex(ch byte) (int, bool) {
	if ch < '1' || ch > '9' {
		return -1, false
	}
	return int(ch - '1'), true
}
