package entity

// Extraction method values recorded per field.
const (
	MethodRegex       = "regex"
	MethodNLP         = "nlp"
	MethodNLPFallback = "nlp_fallback"
	MethodFuzzy       = "fuzzy"
	MethodDateparser  = "dateparser"
	MethodNone        = "none"
)

// FieldMatch is one candidate value for a field. Several may exist per field;
// exactly one is selected as canonical per record.
type FieldMatch struct {
	Field      string  `json:"field"`
	Raw        string  `json:"raw"`
	Method     string  `json:"method"`
	Confidence float64 `json:"confidence"` // 0..1
}
