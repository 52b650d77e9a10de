package document

import (
	"io"

	"golang.org/x/net/html"

	"github.com/Vivtek/Lingua-Tok/internal/tok"
	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// HTML supplies an HTML document as interleaved text fragments and Format
// tokens, driven lazily by the x/net/html tokenizer: one markup token per
// pull, however long the document. Tag, comment and doctype spans become
// Format tokens carrying the raw span text; text nodes come back as
// entity-decoded strings for the engine to split. Because entities are
// decoded, reconstruction yields decoded text, not the original bytes.
type HTML struct {
	z *html.Tokenizer
}

// NewHTML creates an HTML document over r.
func NewHTML(r io.Reader) *HTML {
	return &HTML{z: html.NewTokenizer(r)}
}

// Tokens returns a reader that advances the underlying HTML tokenizer by
// one markup token per call.
func (d *HTML) Tokens() tok.Reader {
	return func() ([]any, bool) {
		switch d.z.Next() {
		case html.ErrorToken:
			// io.EOF and malformed input both end the stream; nothing
			// errors during iteration.
			return nil, false
		case html.TextToken:
			return []any{d.z.Token().Data}, true
		default:
			// Raw() aliases the tokenizer's buffer, copy before returning.
			return []any{token.New(token.Format, string(d.z.Raw()))}, true
		}
	}
}
