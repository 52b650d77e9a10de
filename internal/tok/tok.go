// Package tok implements the incremental tokenizing engine: a
// buffer-driven, pull-based classifier that consumes raw text (or a
// pre-tokenized stream carrying embedded formatting markers) and lazily
// emits typed tokens one at a time. Higher-level lexical readers
// (stopword filtering, phrase segmentation, n-gram extraction) are built
// on the same stream.
package tok

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/Vivtek/Lingua-Tok/internal/split"
	"github.com/Vivtek/Lingua-Tok/internal/token"
)

var (
	ErrInvalidSource = errors.New("unsupported source kind")
	ErrInvalidInput  = errors.New("unsupported buffer input kind")
)

// maxEmptyBatches bounds consecutive empty, non-terminal reader batches
// before the reader is treated as exhausted. A reader that never makes
// progress is a caller error; the engine degrades to end-of-stream
// instead of looping forever.
const maxEmptyBatches = 1024

// Reader supplies the next batch of raw inputs to the engine on demand.
// Each call advances the source's own state. A batch may mix plain
// strings, which are split and classified, with token.Token values, which
// pass through verbatim. ok == false signals end-of-stream; the engine
// never calls the reader again after that.
type Reader func() (batch []any, ok bool)

// Document is the upstream source abstraction the engine consumes. Its
// Tokens method is called once at construction to obtain the Reader.
type Document interface {
	Tokens() Reader
}

// Tokenizer is the engine instance. It owns the pending-item queue, the
// reader handle and the lexical-analysis state, none of which is
// synchronized: an instance must not be shared across goroutines.
type Tokenizer struct {
	pending     deque
	reader      Reader
	splitter    split.Splitter
	recognizers []Recognizer

	stopwords map[string]struct{}
	fold      cases.Caser

	minNgram int
	maxNgram int
}

// Option configures a Tokenizer at construction.
type Option func(*Tokenizer)

// WithSplitter swaps the split strategy. The default splits on whitespace
// runs, keeping the runs as fragments.
func WithSplitter(s split.Splitter) Option {
	return func(t *Tokenizer) {
		if s != nil {
			t.splitter = s
		}
	}
}

// New creates an empty, buffer-only engine.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		splitter:  split.NewWhitespace(),
		stopwords: make(map[string]struct{}),
		fold:      cases.Fold(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewString creates an engine with the given text already buffered.
func NewString(text string, opts ...Option) *Tokenizer {
	t := New(opts...)
	// A plain string cannot fail Buffer's kind check.
	_ = t.Buffer(text)
	return t
}

// NewReader creates an engine fed by the given reader.
func NewReader(r Reader, opts ...Option) *Tokenizer {
	t := New(opts...)
	t.reader = r
	return t
}

// NewDocument creates an engine fed by the document's token stream. The
// document's Tokens method is called exactly once, here.
func NewDocument(d Document, opts ...Option) *Tokenizer {
	t := New(opts...)
	t.reader = d.Tokens()
	return t
}

// From dispatches on the source kind: nil for an empty engine, a string
// for immediate buffering, a Reader (or compatible func) used directly,
// or a Document whose Tokens result becomes the reader. Any other kind is
// a configuration error, reported here rather than deep inside iteration.
func From(src any, opts ...Option) (*Tokenizer, error) {
	switch v := src.(type) {
	case nil:
		return New(opts...), nil
	case string:
		return NewString(v, opts...), nil
	case Reader:
		return NewReader(v, opts...), nil
	case func() ([]any, bool):
		return NewReader(v, opts...), nil
	case Document:
		return NewDocument(v, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSource, src)
	}
}

// Buffer appends inputs to the tail of the pending queue. Strings are run
// through the splitter and their fragments appended individually; tokens
// are appended as-is and will pass through classification untouched.
func (t *Tokenizer) Buffer(inputs ...any) error {
	for _, in := range inputs {
		if err := t.bufferItem(in); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tokenizer) bufferItem(in any) error {
	switch v := in.(type) {
	case string:
		for _, frag := range t.splitter.Split(v) {
			t.pending.PushBack(frag)
		}
	case token.Token:
		t.pending.PushBack(v)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidInput, in)
	}
	return nil
}

// refill pulls batches from the reader until the queue is non-empty or
// the reader is exhausted. A terminal reader is dropped and never
// retried. Malformed batch items are skipped silently: nothing errors
// during iteration.
func (t *Tokenizer) refill() {
	empty := 0
	for t.pending.Len() == 0 && t.reader != nil {
		batch, ok := t.reader()
		if !ok {
			t.reader = nil
			return
		}
		if len(batch) == 0 {
			empty++
			if empty >= maxEmptyBatches {
				t.reader = nil
				return
			}
			continue
		}
		for _, in := range batch {
			_ = t.bufferItem(in)
		}
	}
}
