package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vivtek/Lingua-Tok/internal/document"
	"github.com/Vivtek/Lingua-Tok/internal/server"
	"github.com/Vivtek/Lingua-Tok/internal/testutil"
	"github.com/Vivtek/Lingua-Tok/internal/tok"
	"github.com/Vivtek/Lingua-Tok/internal/token"
)

func TestE2E_PlainTextPipeline(t *testing.T) {
	input := testutil.SampleText()
	doc := document.NewText(strings.NewReader(input))
	tk := tok.NewDocument(doc)

	tokens := tk.Tokens()
	if len(tokens) == 0 {
		t.Fatal("no tokens produced")
	}

	// Reconstruction across reader batches.
	if got := tok.Join(tokens, nil); got != input {
		t.Errorf("reconstructed %q, want %q", got, input)
	}

	// The sample exercises every specialized kind.
	seen := make(map[token.Kind]bool)
	for _, tk := range tokens {
		seen[tk.Kind] = true
	}
	for _, k := range []token.Kind{
		token.Word, token.Space, token.Punct,
		token.Number, token.NumberUnit, token.URL, token.ID,
	} {
		if !seen[k] {
			t.Errorf("sample text produced no %s token", token.Token{Kind: k}.KindName())
		}
	}
}

func TestE2E_HTMLPhrases(t *testing.T) {
	doc := document.NewHTML(strings.NewReader(testutil.SampleHTML()))
	tk := tok.NewDocument(doc)
	tk.Stopwords(testutil.SampleStopwords()...)

	got := tk.Phrases()
	// Markup markers and the stopwords "A"/"the" bound the phrases;
	// the decoded '&' breaks one as punctuation.
	want := [][]string{
		{"formatted"},
		{"sentence"},
		{"more"},
		{"bold"},
		{"text"},
	}
	if len(got) != len(want) {
		t.Fatalf("phrases = %v, want %v", got, want)
	}
	for i := range want {
		testutil.AssertStrings(t, got[i], want[i])
	}
}

func TestE2E_MarkdownNgrams(t *testing.T) {
	tk := tok.NewDocument(document.NewMarkdown([]byte(testutil.SampleMarkdown())))
	tk.Stopwords("with", "some")
	tk.SetMinNgram(1)
	tk.SetMaxNgram(2)

	grams := tk.Ngrams()
	if len(grams) == 0 {
		t.Fatal("no ngrams produced")
	}
	for _, g := range grams {
		if n := len(strings.Fields(g)); n < 1 || n > 2 {
			t.Errorf("ngram %q outside window", g)
		}
	}
}

func TestE2E_HTTPRoundTrip(t *testing.T) {
	h := server.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	body, _ := json.Marshal(map[string]any{
		"text":      "A series of phrases delineated by stop words.",
		"mode":      "phrases",
		"stopwords": []string{"a", "of", "by"},
	})
	resp, err := http.Post(srv.URL+"/v1/tokenize", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var result struct {
		Phrases [][]string `json:"phrases"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"series"},
		{"phrases", "delineated"},
		{"stop", "words"},
	}
	if len(result.Phrases) != len(want) {
		t.Fatalf("phrases = %v, want %v", result.Phrases, want)
	}
	for i := range want {
		testutil.AssertStrings(t, result.Phrases[i], want[i])
	}
}
