package tok

// Stopwords registers words in the engine's stopword set. Lookup is
// Unicode case-folded, so registering "a" also stops "A".
func (t *Tokenizer) Stopwords(words ...string) {
	for _, w := range words {
		t.stopwords[t.fold.String(w)] = struct{}{}
	}
}

// Stopword reports whether the word is in the stopword set, ignoring
// case.
func (t *Tokenizer) Stopword(word string) bool {
	_, ok := t.stopwords[t.fold.String(word)]
	return ok
}

// EnglishStopwords is a small curated list of English function words.
// It is not registered automatically; pass it to Stopwords to opt in.
var EnglishStopwords = []string{
	"a", "an", "the", "and", "or", "but", "of", "to", "in", "on", "for",
	"with", "as", "at", "by", "from", "into", "about", "over", "after",
	"before", "between", "without", "is", "are", "was", "were", "be",
	"been", "it", "its", "this", "that", "these", "those", "not",
}
