package entity

// QRCode is one decoded 2D code from a rendered certificate page.
type QRCode struct {
	Type string `json:"type"`
	Data string `json:"data"`
	Page int    `json:"page"`
}

// URLVerification records the outcome of checking one decoded QR URL.
type URLVerification struct {
	URL         string  `json:"url"`
	Accessible  bool    `json:"accessible"`
	StatusCode  *int    `json:"status_code,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
	Title       *string `json:"title,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// DocMetadata is the embedded document metadata inspected for signature hints.
type DocMetadata struct {
	Creator          string `json:"creator"`
	Producer         string `json:"producer"`
	Subject          string `json:"subject"`
	Author           string `json:"author"`
	CreationDate     string `json:"creation_date"`
	ModificationDate string `json:"modification_date"`
}

// SignatureInfo summarizes digital-signature and security heuristics.
type SignatureInfo struct {
	HasDigitalSignature bool        `json:"has_digital_signature"`
	SecurityFeatures    []string    `json:"security_features"`
	Metadata            DocMetadata `json:"metadata"`
	Encrypted           bool        `json:"encrypted"`
	Error               string      `json:"error,omitempty"`
}

// AuthenticityReport is the composite 0..100 trust assessment of a certificate.
// It is a pure function of the file content except for QR URL verification,
// which depends on the network.
type AuthenticityReport struct {
	OverallScore           float64           `json:"overall_score"`
	QRCodes                []QRCode          `json:"qr_codes"`
	QRVerification         []URLVerification `json:"qr_verification"`
	DigitalSignatures      SignatureInfo     `json:"digital_signatures"`
	DocumentHash           string            `json:"document_hash"`
	AuthenticityIndicators []string          `json:"authenticity_indicators"`
	RiskFactors            []string          `json:"risk_factors"`
	Recommendations        []string          `json:"recommendations"`
	Error                  string            `json:"error,omitempty"`
}
