package split

import (
	"html"
	"strings"

	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// Markup splits like Whitespace but keeps every <...> span intact as a
// Format token and decodes HTML entities in the text between spans.
// Because entities are decoded, joining the fragments yields the decoded
// text, not the original bytes. A '<' with no closing '>' is treated as
// literal text.
type Markup struct {
	inner Whitespace
}

// NewMarkup creates a new Markup splitter.
func NewMarkup() *Markup {
	return &Markup{}
}

// Split breaks text into Format tokens for markup spans and Raw fragments
// for everything else.
func (s *Markup) Split(text string) []token.Token {
	var frags []token.Token

	for len(text) > 0 {
		open := strings.IndexByte(text, '<')
		if open < 0 {
			frags = append(frags, s.plain(text)...)
			break
		}
		length := strings.IndexByte(text[open:], '>')
		if length < 0 {
			// Unterminated span, keep as literal text.
			frags = append(frags, s.plain(text)...)
			break
		}
		if open > 0 {
			frags = append(frags, s.plain(text[:open])...)
		}
		frags = append(frags, token.New(token.Format, text[open:open+length+1]))
		text = text[open+length+1:]
	}

	return frags
}

func (s *Markup) plain(chunk string) []token.Token {
	return s.inner.Split(html.UnescapeString(chunk))
}
