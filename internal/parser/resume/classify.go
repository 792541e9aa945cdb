package resume

import (
	"strings"

	"hiredocs/internal/entity"
)

// Document type labels produced by classification.
const (
	TypeResume     = "Resume/CV"
	TypeCover      = "Cover Letter"
	TypeReference  = "Reference Letter"
	TypeTranscript = "Academic Transcript"
	TypeCert       = "Certificate"
	TypeUnknown    = "Unknown"
)

var (
	resumeIndicators = []string{
		"experience", "education", "skills", "work", "employment",
		"university", "college", "degree", "career", "professional",
	}
	coverIndicators = []string{
		"dear", "hiring", "applying", "position", "consider",
		"opportunity", "application", "passionate", "believe", "contribute",
	}
	referenceIndicators = []string{
		"recommend", "pleasure", "endorsement", "supervisor",
		"manager", "colleague", "worked with", "capabilities", "strengths",
	}
)

func countIndicators(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

// Classify decides what kind of document the text is, from the filename
// first and then from indicator words in the first part of the content.
// Content-based scores override the filename guess when strong enough.
func Classify(filename, text, format string) entity.Classification {
	if text == "" {
		return entity.Classification{Type: TypeUnknown, Format: format, Language: "Unknown"}
	}

	c := entity.Classification{
		Type:        TypeUnknown,
		Confidence:  0.5,
		Format:      format,
		Language:    "English",
		IsScannable: true,
	}

	fn := strings.ToLower(filename)
	switch {
	case containsAnyTerm(fn, "resume", "cv", "_r_", "_cv_"):
		c.Type, c.Confidence = TypeResume, 0.8
	case strings.Contains(fn, "cover") && strings.Contains(fn, "letter"):
		c.Type, c.Confidence = TypeCover, 0.9
	case containsAnyTerm(fn, "reference", "recommendation", "referral"):
		c.Type, c.Confidence = TypeReference, 0.85
	case strings.Contains(fn, "transcript"):
		c.Type, c.Confidence = TypeTranscript, 0.9
	case strings.Contains(fn, "certificate") || strings.Contains(fn, "certification"):
		c.Type, c.Confidence = TypeCert, 0.85
	}

	head := strings.ToLower(text)
	if len(head) > 2000 {
		head = head[:2000]
	}
	resumeScore := countIndicators(head, resumeIndicators)
	coverScore := countIndicators(head, coverIndicators)
	referenceScore := countIndicators(head, referenceIndicators)

	maxScore := max(resumeScore, max(coverScore, referenceScore))
	switch {
	case maxScore == resumeScore && resumeScore >= 3:
		c.Type = TypeResume
		c.Confidence = min(0.5+float64(resumeScore)*0.05, 0.95)
	case maxScore == coverScore && coverScore >= 3:
		c.Type = TypeCover
		c.Confidence = min(0.5+float64(coverScore)*0.05, 0.95)
	case maxScore == referenceScore && referenceScore >= 3:
		c.Type = TypeReference
		c.Confidence = min(0.5+float64(referenceScore)*0.05, 0.95)
	}
	return c
}

func containsAnyTerm(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
