package split

import "github.com/Vivtek/Lingua-Tok/internal/token"

// Splitter breaks raw text into fragments for classification.
// Fragments come back as Raw tokens. Splitters that understand markup may
// also return already-typed tokens (Format markers), which the engine
// passes through untouched.
type Splitter interface {
	// Split breaks text into fragments. Joining the fragment texts must
	// reproduce the input unless the splitter documents otherwise.
	Split(text string) []token.Token
}
