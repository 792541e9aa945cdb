package entity

import "time"

// CertificateEntities holds the NLP entities found in certificate text.
type CertificateEntities struct {
	Universities  []string `json:"universities"`
	Organizations []string `json:"organizations"`
	Persons       []string `json:"persons"`
}

// CertificateRecord is the canonical structured output for a processed certificate.
// Per-field confidence is 0..1; a missing field has no canonical value and
// confidence 0 with method "none".
type CertificateRecord struct {
	University     *string `json:"university"`
	Degree         *string `json:"degree"`
	GPA            *string `json:"gpa"`
	GraduationDate *string `json:"graduation_date"`

	ConfidenceScores  map[string]float64  `json:"confidence_scores"`
	ExtractionMethods map[string]string   `json:"extraction_methods"`
	RawMatches        map[string][]string `json:"raw_matches"`

	ExtractedEntities CertificateEntities `json:"extracted_entities"`
	Authenticity      *AuthenticityReport `json:"authenticity,omitempty"`

	SourceFile  string    `json:"source_file,omitempty"`
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	TextLength  int       `json:"text_length,omitempty"`
	Error       string    `json:"error,omitempty"`
	RequiresOCR bool      `json:"requires_ocr,omitempty"`
}
