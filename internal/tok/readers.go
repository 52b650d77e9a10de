package tok

import (
	"strings"

	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// Tokens drains the stream into the full ordered token sequence. It
// terminates only at end-of-stream; with an unbounded reader the caller
// must consume lazily via Next instead.
func (t *Tokenizer) Tokens() []token.Token {
	var out []token.Token
	for tok, ok := t.Next(); ok; tok, ok = t.Next() {
		out = append(out, tok)
	}
	return out
}

// Text drains the stream like Tokens but excludes whitespace tokens.
func (t *Tokenizer) Text() []token.Token {
	var out []token.Token
	for tok, ok := t.TextToken(); ok; tok, ok = t.TextToken() {
		out = append(out, tok)
	}
	return out
}

// Words drains the stream keeping only plain words: no whitespace, no
// punctuation, no formatting markers, no specialized types. Suitable for
// spelling-style use.
func (t *Tokenizer) Words() []token.Token {
	var out []token.Token
	for tok, ok := t.Word(); ok; tok, ok = t.Word() {
		out = append(out, tok)
	}
	return out
}

// TextToken returns the next non-whitespace token.
func (t *Tokenizer) TextToken() (token.Token, bool) {
	for tok, ok := t.Next(); ok; tok, ok = t.Next() {
		if tok.Kind != token.Space {
			return tok, true
		}
	}
	return token.Token{}, false
}

// Word returns the next plain word, skipping every typed token.
func (t *Tokenizer) Word() (token.Token, bool) {
	for tok, ok := t.Next(); ok; tok, ok = t.Next() {
		if tok.Kind == token.Word {
			return tok, true
		}
	}
	return token.Token{}, false
}

// Phrases segments the stream into maximal runs of consecutive
// non-stopword plain words. Whitespace never breaks a phrase; any other
// typed token does, as does a registered stopword. The final phrase is
// flushed at end-of-stream.
func (t *Tokenizer) Phrases() [][]string {
	var phrases [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, current)
			current = nil
		}
	}

	for tok, ok := t.Next(); ok; tok, ok = t.Next() {
		switch {
		case tok.Kind == token.Space:
			// Whitespace is invisible to phrase segmentation.
		case tok.Kind == token.Word:
			if t.Stopword(tok.Text) {
				flush()
			} else {
				current = append(current, tok.Text)
			}
		default:
			flush()
		}
	}
	flush()

	return phrases
}

// Ngrams renders every contiguous word window of each phrase, words
// joined by a single space. Window size runs from max(minNgram, 1) up to
// maxNgram (or the phrase length when the window is unbounded) as the
// outer loop, start offset as the inner loop.
func (t *Tokenizer) Ngrams() []string {
	var out []string
	for _, phrase := range t.Phrases() {
		out = append(out, ngrams(phrase, t.minNgram, t.maxNgram)...)
	}
	return out
}

func ngrams(phrase []string, min, max int) []string {
	lo := min
	if lo < 1 {
		lo = 1
	}
	hi := max
	if hi <= 0 || hi > len(phrase) {
		hi = len(phrase)
	}

	var out []string
	for n := lo; n <= hi; n++ {
		for start := 0; start+n <= len(phrase); start++ {
			out = append(out, strings.Join(phrase[start:start+n], " "))
		}
	}
	return out
}

// MinNgram returns the lower n-gram window bound; 0 means unbounded.
func (t *Tokenizer) MinNgram() int { return t.minNgram }

// SetMinNgram sets the lower n-gram window bound.
func (t *Tokenizer) SetMinNgram(n int) { t.minNgram = n }

// MaxNgram returns the upper n-gram window bound; 0 means unbounded.
func (t *Tokenizer) MaxNgram() int { return t.maxNgram }

// SetMaxNgram sets the upper n-gram window bound.
func (t *Tokenizer) SetMaxNgram(n int) { t.maxNgram = n }
