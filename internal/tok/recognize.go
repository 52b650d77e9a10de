package tok

import (
	"regexp"
	"strings"

	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// Recognizer classifies word-shaped fragments into specialized token
// types. Recognizers run after punctuation stripping and before the plain
// Word fallback; the first match wins.
type Recognizer interface {
	Recognize(frag string) (token.Token, bool)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(frag string) (token.Token, bool)

// Recognize calls f.
func (f RecognizerFunc) Recognize(frag string) (token.Token, bool) {
	return f(frag)
}

// Recognize registers custom recognizers ahead of the built-in chain, in
// the order given. A lexicon or domain-specific classifier plugs in here.
func (t *Tokenizer) Recognize(rs ...Recognizer) {
	t.recognizers = append(t.recognizers, rs...)
}

// Regular expressions for the built-in recognizers.
var (
	urlRE        = regexp.MustCompile(`^(?:[a-z][a-z0-9+.-]*://\S+|www\.\S+\.\S+)$`)
	numberRE     = regexp.MustCompile(`^[+-]?\d+(?:[.,]\d+)*$`)
	numberUnitRE = regexp.MustCompile(`^([+-]?\d+(?:[.,]\d+)*)(\p{L}+)$`)
	idRE         = regexp.MustCompile(`^[A-Z0-9]+(?:-[A-Z0-9]+)*$`)
)

// builtinRecognizers run in priority order: URL, number, number+unit, ID.
var builtinRecognizers = []Recognizer{
	RecognizerFunc(recognizeURL),
	RecognizerFunc(recognizeNumber),
	RecognizerFunc(recognizeNumberUnit),
	RecognizerFunc(recognizeID),
}

func recognizeURL(frag string) (token.Token, bool) {
	if !urlRE.MatchString(strings.ToLower(frag)) {
		return token.Token{}, false
	}
	return token.New(token.URL, frag), true
}

func recognizeNumber(frag string) (token.Token, bool) {
	if !numberRE.MatchString(frag) {
		return token.Token{}, false
	}
	return token.New(token.Number, frag), true
}

func recognizeNumberUnit(frag string) (token.Token, bool) {
	m := numberUnitRE.FindStringSubmatch(frag)
	if m == nil {
		return token.Token{}, false
	}
	return token.Token{Kind: token.NumberUnit, Text: frag, Unit: m[2]}, true
}

// recognizeID matches ID-like fragments: uppercase letters, digits and
// dashes only, at least two runes, containing at least one letter and at
// least one digit or dash. All-caps acronyms without digits or dashes
// stay plain words.
func recognizeID(frag string) (token.Token, bool) {
	if len(frag) < 2 || !idRE.MatchString(frag) {
		return token.Token{}, false
	}
	if !strings.ContainsFunc(frag, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return token.Token{}, false
	}
	if !strings.ContainsAny(frag, "-0123456789") {
		return token.Token{}, false
	}
	return token.New(token.ID, frag), true
}
