package constants

import "strings"

// DocumentKind names the four supported career-document types.
type DocumentKind string

const (
	KindResume           DocumentKind = "Resume"
	KindPayslip          DocumentKind = "Payslip"
	KindExperienceLetter DocumentKind = "ExperienceLetter"
	KindCertificate      DocumentKind = "Certificate"
)

var allKinds = []DocumentKind{KindResume, KindPayslip, KindExperienceLetter, KindCertificate}

// KindStrings returns the kinds as plain strings.
func KindStrings() []string {
	out := make([]string, len(allKinds))
	for i, k := range allKinds {
		out[i] = string(k)
	}
	return out
}

// ParseKind canonicalizes a user-supplied kind name.
func ParseKind(input string) (DocumentKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	synonyms := map[string]DocumentKind{
		"resume":            KindResume,
		"cv":                KindResume,
		"payslip":           KindPayslip,
		"salary slip":       KindPayslip,
		"letter":            KindExperienceLetter,
		"experience letter": KindExperienceLetter,
		"experienceletter":  KindExperienceLetter,
		"certificate":       KindCertificate,
		"cert":              KindCertificate,
	}
	if k, ok := synonyms[normalized]; ok {
		return k, true
	}
	for _, k := range allKinds {
		if normalized == strings.ToLower(string(k)) {
			return k, true
		}
	}
	return "", false
}
