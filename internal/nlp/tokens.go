package nlp

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// KeywordTokenizer reduces free text to content-word tokens for overlap
// scoring. Implementations must be safe for concurrent use.
type KeywordTokenizer interface {
	Available() bool
	Keywords(text string) []string
}

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "but", "by", "for",
		"from", "has", "have", "in", "is", "it", "its", "of", "on", "or",
		"our", "that", "the", "their", "this", "to", "was", "we", "were",
		"will", "with", "you", "your",
	} {
		stopwords[w] = struct{}{}
	}
}

func isPunct(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return s != ""
}

// Keywords tokenizes text with the prose tokenizer and drops stopwords and
// punctuation-only tokens. Empty when the model is unavailable.
func (r *ProseRecognizer) Keywords(text string) []string {
	if !r.Available() {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false), prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		r.logger.Warn("keyword tokenization failed", "error", err)
		return nil
	}
	var out []string
	for _, tok := range doc.Tokens() {
		w := strings.ToLower(tok.Text)
		if _, stop := stopwords[w]; stop || isPunct(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func (Unavailable) Keywords(string) []string { return nil }
