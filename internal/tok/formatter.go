package tok

import (
	"strings"

	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// Formatter renders Format and Index tokens back into text when
// reconstructing output. It is an optional collaborator: without one,
// those tokens contribute their raw Text (empty for Index placeholders).
type Formatter func(token.Token) string

// Join reconstructs text from a token sequence. For marker-free input the
// result equals the original text exactly.
func Join(tokens []token.Token, f Formatter) string {
	var b strings.Builder
	for _, tok := range tokens {
		if f != nil && (tok.Kind == token.Format || tok.Kind == token.Index) {
			b.WriteString(f(tok))
			continue
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
