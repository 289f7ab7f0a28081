package hillengine

import (
	"fmt"

	"github.com/bgallie/hill/cryptors"
	"github.com/bgallie/hill/cryptors/bitops"
)

// NormalizedText is text reduced to what the cipher operates on.
type NormalizedText struct {
	// Symbols holds one index in [0, 26) per retained letter followed by
	// padding symbols, for a length that is a multiple of the block size.
	Symbols []int

	// Lower records, per retained letter, whether it was lower case.
	// Padding symbols have no flag.
	Lower bitops.Flags
}

// Normalize keeps the ASCII letters of text, records their case and pads
// the symbols with 'X' to a multiple of n. n must be positive.
func Normalize(text string, n int) NormalizedText {
	if n < 1 {
		panic(fmt.Sprintf("hillengine: block size %d", n))
	}

	nt := NormalizedText{Symbols: make([]int, 0, len(text)+n)}
	// Bytes of multi-byte UTF-8 sequences are all >= 0x80, so iterating
	// bytes cannot mistake part of a non-ASCII rune for a letter.
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case 'A' <= c && c <= 'Z':
			nt.Symbols = append(nt.Symbols, cryptors.SymbolOf(c))
			nt.Lower.Append(false)
		case 'a' <= c && c <= 'z':
			nt.Symbols = append(nt.Symbols, cryptors.SymbolOf(c-'a'+'A'))
			nt.Lower.Append(true)
		}
	}

	for len(nt.Symbols)%n != 0 {
		nt.Symbols = append(nt.Symbols, cryptors.PadSymbol)
	}
	return nt
}

// RestoreCase lower cases letters[i] when lower[i % lower.Len()] is set.
// With no flags the letters are returned unchanged.
func RestoreCase(letters []byte, lower bitops.Flags) string {
	out := make([]byte, len(letters))
	flags := lower.Len()
	for i, c := range letters {
		if flags > 0 && 'A' <= c && c <= 'Z' && lower.Get(i%flags) {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func lettersOf(symbols []int) []byte {
	letters := make([]byte, len(symbols))
	for i, s := range symbols {
		letters[i] = cryptors.LetterOf(s)
	}
	return letters
}
