// Package token defines the typed token variant emitted by the tokenizing
// engine. A token is a single classified unit of the output stream; the
// literal text of every emitted Word, Space, Punct and specialized token,
// concatenated in order, reconstructs the original input.
package token

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the class of a token.
type Kind int

const (
	Raw        Kind = iota // unclassified fragment; lives only in the pending queue
	Word                   // plain text word
	Space                  // whitespace run, text preserved verbatim
	Punct                  // punctuation run split off a word boundary
	Format                 // opaque formatting marker, passed through unexamined
	Index                  // caller-supplied placeholder, passed through
	Number                 // pure numeric word
	NumberUnit             // number with a trailing alphabetic unit
	URL                    // URL-shaped word
	ID                     // ID-like word (capitals, digits, dashes)
)

var kindName = []string{
	"Raw",
	"Word",
	"Space",
	"Punct",
	"Format",
	"Index",
	"Number",
	"NumberUnit",
	"URL",
	"ID",
}

// wireTag holds the serialization tag per kind. Plain words (and raw
// fragments, which are never serialized) carry no tag.
var wireTag = []string{"", "", "S", "P", "F", "I", "NUM", "NUMU", "URL", "ID"}

// Token is a single unit of the token stream.
type Token struct {
	Kind Kind
	Text string // literal text as it appeared in the input
	Unit string // unit suffix, set only for NumberUnit
	Ref  any    // opaque caller payload, set only for Index
}

// New creates a token of the given kind and text.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Indexed creates an Index placeholder carrying an opaque payload.
func Indexed(ref any) Token {
	return Token{Kind: Index, Ref: ref}
}

// KindName returns the human-readable name of the token's kind.
func (t Token) KindName() string {
	if int(t.Kind) < 0 || int(t.Kind) >= len(kindName) {
		return fmt.Sprintf("Kind(%d)", int(t.Kind))
	}
	return kindName[t.Kind]
}

// Tag returns the wire tag for the token's kind. Plain words have the
// empty tag.
func (t Token) Tag() string {
	if int(t.Kind) < 0 || int(t.Kind) >= len(wireTag) {
		return ""
	}
	return wireTag[t.Kind]
}

// String renders the token as Kind:"text" for debugging and test output.
func (t Token) String() string {
	if t.Kind == Index {
		return fmt.Sprintf("%s:%v", t.KindName(), t.Ref)
	}
	return fmt.Sprintf("%s:%q", t.KindName(), t.Text)
}

// Value returns the numeric part of a NumberUnit token (the text with the
// unit suffix removed). For every other kind it returns Text unchanged.
func (t Token) Value() string {
	if t.Kind == NumberUnit && len(t.Unit) < len(t.Text) {
		return t.Text[:len(t.Text)-len(t.Unit)]
	}
	return t.Text
}

// IsWord reports whether the token is a plain word.
func (t Token) IsWord() bool { return t.Kind == Word }

// IsSpace reports whether the token is a whitespace run.
func (t Token) IsSpace() bool { return t.Kind == Space }

// IsTyped reports whether the token carries an explicit type, i.e. is
// anything other than a plain word or an unclassified fragment.
func (t Token) IsTyped() bool { return t.Kind != Word && t.Kind != Raw }

// MarshalJSON encodes the token in its wire shape: a bare string for plain
// words, a [tag, payload] pair for everything else.
func (t Token) MarshalJSON() ([]byte, error) {
	if t.Kind == Word || t.Kind == Raw {
		return json.Marshal(t.Text)
	}
	payload := t.Text
	if t.Kind == Index {
		payload = fmt.Sprint(t.Ref)
	}
	return json.Marshal([2]string{t.Tag(), payload})
}
