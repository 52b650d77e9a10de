package document

import (
	"bufio"
	"io"

	"github.com/Vivtek/Lingua-Tok/internal/tok"
)

// Text supplies plain text from an io.Reader in newline-delimited
// batches. Line delimiters are kept with their lines, so downstream
// reconstruction stays byte-exact.
type Text struct {
	r *bufio.Reader
}

// NewText creates a plain-text document over r.
func NewText(r io.Reader) *Text {
	return &Text{r: bufio.NewReader(r)}
}

// Tokens returns a reader yielding one line per call, newline included.
func (d *Text) Tokens() tok.Reader {
	return func() ([]any, bool) {
		// A final unterminated line is still delivered; the call after it
		// sees an empty read and reports end-of-stream.
		line, _ := d.r.ReadString('\n')
		if line == "" {
			return nil, false
		}
		return []any{line}, true
	}
}
