package testutil

import (
	"testing"

	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// SampleText returns a plain-text passage exercising whitespace runs,
// punctuation at both word edges, and every specialized token type.
func SampleText() string {
	return "The  'quick' brown fox (weight 4kg, tag FX-7) jumped 12 times.\n" +
		"Details at http://example.com/fox, posted 2024."
}

// SampleHTML returns a small HTML document with nested inline markup and
// an entity.
func SampleHTML() string {
	return "<p>A <i>formatted</i> sentence &amp; more <b>bold</b> text.</p>"
}

// SampleMarkdown returns a small Markdown document with a heading,
// emphasis and a code span.
func SampleMarkdown() string {
	return "# Heading\n\nSome *emphasized* prose with `code` inline.\n"
}

// SampleStopwords returns the stopword set used by the phrase and n-gram
// fixtures.
func SampleStopwords() []string {
	return []string{"a", "of", "by", "the"}
}

// Texts extracts the literal text of each token.
func Texts(tokens []token.Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// Kinds extracts the kind name of each token.
func Kinds(tokens []token.Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.KindName()
	}
	return out
}

// AssertStrings fails the test unless got equals want element-wise.
func AssertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}
