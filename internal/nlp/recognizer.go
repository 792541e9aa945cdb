package nlp

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

// Entities is the output of one recognition pass over document text.
type Entities struct {
	Universities  []string `json:"universities"`
	Organizations []string `json:"organizations"`
	Persons       []string `json:"persons"`
}

// EntityRecognizer is the lightweight NER capability used as a fallback when
// regex cascades find nothing. Implementations must be safe for concurrent use.
type EntityRecognizer interface {
	Available() bool
	Recognize(text string) Entities
}

var universityWords = []string{"university", "college", "institute", "school"}

func looksLikeUniversity(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range universityWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// ProseRecognizer wraps the prose NER model. The model is warmed lazily at
// most once per process; a failed warm-up degrades to unavailable instead of
// crashing callers.
type ProseRecognizer struct {
	Disabled bool

	once   sync.Once
	ok     bool
	logger *slog.Logger
}

func NewProseRecognizer(disabled bool, logger *slog.Logger) *ProseRecognizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProseRecognizer{Disabled: disabled, logger: logger}
}

func (r *ProseRecognizer) warm() {
	r.once.Do(func() {
		if r.Disabled {
			r.logger.Info("entity recognizer disabled by configuration")
			return
		}
		// Loading the model is the expensive part; a throwaway document forces it.
		if _, err := prose.NewDocument("warm up", prose.WithSegmentation(false)); err != nil {
			r.logger.Warn("entity recognizer unavailable", "error", err)
			return
		}
		r.ok = true
	})
}

func (r *ProseRecognizer) Available() bool {
	r.warm()
	return r.ok
}

// Recognize tags organizations and persons in text, routing organization
// entities that mention a campus word into Universities. Returns empty sets
// when the model is unavailable or the text cannot be processed.
func (r *ProseRecognizer) Recognize(text string) Entities {
	var out Entities
	if !r.Available() {
		return out
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		r.logger.Warn("entity recognition failed", "error", err)
		return out
	}
	for _, ent := range doc.Entities() {
		label := strings.ToUpper(ent.Label)
		switch {
		case label == "PERSON":
			out.Persons = append(out.Persons, ent.Text)
		case label == "ORG" || label == "GPE":
			if looksLikeUniversity(ent.Text) {
				out.Universities = append(out.Universities, ent.Text)
			} else {
				out.Organizations = append(out.Organizations, ent.Text)
			}
		}
	}
	return out
}

// Unavailable is a recognizer that never produces entities; extractors fall
// back to it when NLP is switched off, and tests use it for determinism.
type Unavailable struct{}

func (Unavailable) Available() bool           { return false }
func (Unavailable) Recognize(string) Entities { return Entities{} }
