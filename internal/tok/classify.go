package tok

import (
	"unicode"
	"unicode/utf8"

	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// Next returns the next classified token, advancing the stream. The
// second result is false at end-of-stream, and stays false on every
// subsequent call.
func (t *Tokenizer) Next() (token.Token, bool) {
	return t.Token(false)
}

// Peek classifies and returns the next token without consuming it: the
// token is pushed back onto the head of the queue, where the passthrough
// rule guarantees the following call re-observes it unchanged.
func (t *Tokenizer) Peek() (token.Token, bool) {
	return t.Token(true)
}

// Token is the pull-driven core. Each call loops until a token is
// produced or end-of-stream is confirmed; empty fragments left behind by
// splitting are dropped without emitting anything, so degenerate input
// never stalls the stream.
func (t *Tokenizer) Token(peek bool) (token.Token, bool) {
	for {
		if t.pending.Len() == 0 {
			t.refill()
			if t.pending.Len() == 0 {
				return token.Token{}, false
			}
		}

		item, _ := t.pending.PopFront()

		// Pre-classified tokens pass through, never reinterpreted.
		if item.Kind != token.Raw {
			if peek {
				t.pending.PushFront(item)
			}
			return item, true
		}

		// Splitting artifact, discard.
		if item.Text == "" {
			continue
		}

		tok := t.classify(item.Text)
		if peek {
			t.pending.PushFront(tok)
		}
		return tok, true
	}
}

// classify assigns a type to one raw, non-empty fragment. Punctuation
// remainders go back onto the front of the queue and re-enter the same
// machine on a later pull; that is why leading and trailing runs come out
// as separate Punct tokens without any recursion here.
func (t *Tokenizer) classify(frag string) token.Token {
	if isSpace(frag) {
		return token.New(token.Space, frag)
	}

	// Leading punctuation run: emit it now, requeue the remainder.
	if n := leadingPunct(frag); n > 0 {
		t.pending.PushFront(token.New(token.Raw, frag[n:]))
		return token.New(token.Punct, frag[:n])
	}

	// Trailing punctuation run: requeue it for the next pull and keep
	// classifying the stripped fragment in this pass.
	if n := trailingPunct(frag); n < len(frag) {
		t.pending.PushFront(token.New(token.Raw, frag[n:]))
		frag = frag[:n]
	}

	for _, r := range t.recognizers {
		if tok, ok := r.Recognize(frag); ok {
			return tok
		}
	}
	for _, r := range builtinRecognizers {
		if tok, ok := r.Recognize(frag); ok {
			return tok
		}
	}

	return token.New(token.Word, frag)
}

// isSpace reports whether the fragment consists entirely of whitespace.
func isSpace(frag string) bool {
	for _, r := range frag {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// isBoundaryPunct reports whether a rune counts as punctuation at a word
// boundary. Symbols ('%', '<', '$', ...) split off like punctuation;
// word-internal occurrences are never split.
func isBoundaryPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// leadingPunct returns the byte length of the punctuation run at the
// start of frag, 0 if none.
func leadingPunct(frag string) int {
	i := 0
	for i < len(frag) {
		r, size := utf8.DecodeRuneInString(frag[i:])
		if !isBoundaryPunct(r) {
			break
		}
		i += size
	}
	return i
}

// trailingPunct returns the byte offset where the trailing punctuation
// run begins, len(frag) if none.
func trailingPunct(frag string) int {
	i := len(frag)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(frag[:i])
		if !isBoundaryPunct(r) {
			break
		}
		i -= size
	}
	return i
}
