package split

import (
	"unicode"
	"unicode/utf8"

	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// Whitespace splits text on runs of Unicode whitespace, keeping the runs
// as their own fragments so that re-joining all fragments reproduces the
// input byte for byte.
type Whitespace struct{}

// NewWhitespace creates a new Whitespace splitter.
func NewWhitespace() *Whitespace {
	return &Whitespace{}
}

// Split breaks text into alternating non-space and space fragments.
func (s *Whitespace) Split(text string) []token.Token {
	var frags []token.Token
	i := 0

	for i < len(text) {
		start := i
		r, size := utf8.DecodeRuneInString(text[i:])
		inSpace := unicode.IsSpace(r)
		i += size

		// Extend the run while the rune class stays the same.
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) != inSpace {
				break
			}
			i += size
		}

		frags = append(frags, token.New(token.Raw, text[start:i]))
	}

	return frags
}
