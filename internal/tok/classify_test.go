package tok

import (
	"testing"

	"github.com/Vivtek/Lingua-Tok/internal/split"
	"github.com/Vivtek/Lingua-Tok/internal/token"
)

func TestClassify_WhitespaceFidelity(t *testing.T) {
	got := NewString("a  b").Tokens()
	want := []token.Token{
		token.New(token.Word, "a"),
		token.New(token.Space, "  "),
		token.New(token.Word, "b"),
	}
	assertTokens(t, got, want)
}

func TestClassify_PunctuationSplitting(t *testing.T) {
	got := NewString("A 'sentence' with punctuation.").Text()
	want := []token.Token{
		token.New(token.Word, "A"),
		token.New(token.Punct, "'"),
		token.New(token.Word, "sentence"),
		token.New(token.Punct, "'"),
		token.New(token.Word, "with"),
		token.New(token.Word, "punctuation"),
		token.New(token.Punct, "."),
	}
	assertTokens(t, got, want)
}

func TestClassify_LeadingAndTrailingRuns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			"both ends",
			`("quoted")`,
			[]token.Token{
				token.New(token.Punct, `("`),
				token.New(token.Word, "quoted"),
				token.New(token.Punct, `")`),
			},
		},
		{
			"only punctuation",
			"...",
			[]token.Token{token.New(token.Punct, "...")},
		},
		{
			"leading sign splits before recognition",
			"-5",
			[]token.Token{
				token.New(token.Punct, "-"),
				token.New(token.Number, "5"),
			},
		},
		{
			"internal punctuation kept",
			"foo-bar don't e.g.",
			[]token.Token{
				token.New(token.Word, "foo-bar"),
				token.New(token.Word, "don't"),
				token.New(token.Word, "e.g"),
				token.New(token.Punct, "."),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, NewString(tt.input).Text(), tt.want)
		})
	}
}

func TestClassify_Specialized(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  token.Kind
	}{
		{"url scheme", "http://example.com/x", token.URL},
		{"url www", "www.example.com", token.URL},
		{"number", "123", token.Number},
		{"grouped number", "3,141", token.Number},
		{"number unit", "10kg", token.NumberUnit},
		{"decimal unit", "3.5mm", token.NumberUnit},
		{"id dashed", "ABC-123", token.ID},
		{"id short", "X9", token.ID},
		{"acronym stays word", "NASA", token.Word},
		{"lowercase dashed stays word", "abc-123", token.Word},
		{"digits with dash stay word", "123-456", token.Word},
		{"plain word", "hello", token.Word},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := NewString(tt.input).Next()
			if !ok {
				t.Fatal("no token emitted")
			}
			if tok.Kind != tt.kind {
				t.Errorf("classify(%q) = %s, want kind %s",
					tt.input, tok, token.Token{Kind: tt.kind}.KindName())
			}
			if tok.Text != tt.input {
				t.Errorf("classify(%q) text = %q, want input preserved", tt.input, tok.Text)
			}
		})
	}
}

func TestClassify_NumberUnitFields(t *testing.T) {
	tok, ok := NewString("3.5mm").Next()
	if !ok {
		t.Fatal("no token emitted")
	}
	if tok.Unit != "mm" {
		t.Errorf("Unit = %q, want %q", tok.Unit, "mm")
	}
	if tok.Value() != "3.5" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "3.5")
	}
}

func TestClassify_PercentSplitsAsPunct(t *testing.T) {
	got := NewString("50%").Tokens()
	want := []token.Token{
		token.New(token.Number, "50"),
		token.New(token.Punct, "%"),
	}
	assertTokens(t, got, want)
}

func TestClassify_URLKeepsTrailingSlashStripped(t *testing.T) {
	got := NewString("see http://example.com/a.").Text()
	want := []token.Token{
		token.New(token.Word, "see"),
		token.New(token.URL, "http://example.com/a"),
		token.New(token.Punct, "."),
	}
	assertTokens(t, got, want)
}

func TestClassify_CustomRecognizerPriority(t *testing.T) {
	tk := NewString("42")
	tk.Recognize(RecognizerFunc(func(frag string) (token.Token, bool) {
		return token.New(token.ID, frag), true
	}))

	tok, _ := tk.Next()
	if tok.Kind != token.ID {
		t.Errorf("custom recognizer should win over built-ins, got %s", tok)
	}
}

func TestClassify_MarkupPassthrough(t *testing.T) {
	tk := NewString("a <i>formatted</i> b", WithSplitter(split.NewMarkup()))
	got := tk.Tokens()
	want := []token.Token{
		token.New(token.Word, "a"),
		token.New(token.Space, " "),
		token.New(token.Format, "<i>"),
		token.New(token.Word, "formatted"),
		token.New(token.Format, "</i>"),
		token.New(token.Space, " "),
		token.New(token.Word, "b"),
	}
	assertTokens(t, got, want)
}

func TestWords_Purity(t *testing.T) {
	tk := NewString("a <i>x</i> 12 ABC-1 'y' 3kg http://z.io w", WithSplitter(split.NewMarkup()))
	for _, tok := range tk.Words() {
		if tok.Kind != token.Word {
			t.Errorf("Words() leaked non-word token %s", tok)
		}
	}
}
