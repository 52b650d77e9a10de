package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Vivtek/Lingua-Tok/internal/document"
	"github.com/Vivtek/Lingua-Tok/internal/split"
	"github.com/Vivtek/Lingua-Tok/internal/tok"
	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// Handler holds HTTP handlers for the Lingua-Tok API.
type Handler struct {
	splitters *split.Registry
	logger    *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		splitters: split.NewRegistry(),
		logger:    logger,
	}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/tokenize", h.handleTokenize)
	mux.HandleFunc("GET /v1/splitters", h.handleListSplitters)
}

// tokenizeRequest is the wire shape of a tokenize call.
type tokenizeRequest struct {
	Text      string   `json:"text"`
	Format    string   `json:"format"`   // plain (default), html, markdown
	Mode      string   `json:"mode"`     // tokens (default), text, words, phrases, ngrams
	Splitter  string   `json:"splitter"` // overrides the plain-format splitter
	Stopwords []string `json:"stopwords"`
	MinNgram  int      `json:"min_ngram"`
	MaxNgram  int      `json:"max_ngram"`
}

func (h *Handler) handleTokenize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req tokenizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tk, err := h.newTokenizer(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tk.Stopwords(req.Stopwords...)
	tk.SetMinNgram(req.MinNgram)
	tk.SetMaxNgram(req.MaxNgram)

	mode := req.Mode
	if mode == "" {
		mode = "tokens"
	}

	var body map[string]any
	switch mode {
	case "tokens":
		body = map[string]any{"tokens": wireTokens(tk.Tokens())}
	case "text":
		body = map[string]any{"tokens": wireTokens(tk.Text())}
	case "words":
		body = map[string]any{"tokens": wireTokens(tk.Words())}
	case "phrases":
		phrases := tk.Phrases()
		if phrases == nil {
			phrases = [][]string{}
		}
		body = map[string]any{"phrases": phrases}
	case "ngrams":
		grams := tk.Ngrams()
		if grams == nil {
			grams = []string{}
		}
		body = map[string]any{"ngrams": grams}
	default:
		writeError(w, http.StatusBadRequest, "unknown mode: "+mode)
		return
	}

	h.logger.Info("tokenize",
		"format", req.Format,
		"mode", mode,
		"bytes", len(req.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, body)
}

// newTokenizer builds an engine for the request's format. Bad input kinds
// fail here, before any iteration happens.
func (h *Handler) newTokenizer(req tokenizeRequest) (*tok.Tokenizer, error) {
	switch req.Format {
	case "", "plain":
		name := req.Splitter
		if name == "" {
			name = "whitespace"
		}
		s, err := h.splitters.Get(name)
		if err != nil {
			return nil, err
		}
		return tok.NewString(req.Text, tok.WithSplitter(s)), nil
	case "html":
		return tok.NewDocument(document.NewHTML(strings.NewReader(req.Text))), nil
	case "markdown":
		return tok.NewDocument(document.NewMarkdown([]byte(req.Text))), nil
	default:
		return nil, fmt.Errorf("unknown format: %q", req.Format)
	}
}

func (h *Handler) handleListSplitters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"splitters": h.splitters.Names(),
	})
}

// wireTokens keeps JSON output stable for empty streams.
func wireTokens(tokens []token.Token) []token.Token {
	if tokens == nil {
		return []token.Token{}
	}
	return tokens
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"message": message,
		},
	})
}
