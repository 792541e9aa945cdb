package entity

// Text source values.
const (
	SourceDirect = "direct"
	SourceOCR    = "ocr"
	SourceMixed  = "mixed"
)

// ExtractedText is the output of the acquisition layer. Immutable once produced;
// Text is never empty on success — an empty result is reported as an error instead.
type ExtractedText struct {
	Text   string `json:"text"`
	Chars  int    `json:"chars"`
	Source string `json:"source"` // "direct" | "ocr" | "mixed"
	Pages  int    `json:"pages"`
	Format string `json:"format"` // constants.PDF | DOCX | DOC | IMAGE
}
