package authenticity

import (
	"context"
	"fmt"
	"strings"

	"hiredocs/internal/entity"
)

// Text markers that suggest the issuer meant the document to be checkable.
var verificationKeywords = []string{
	"verify", "verification", "authenticate", "digital", "certificate id",
	"verification code", "license number", "registration number",
}

// Issuer names that carry weight on their own.
var knownInstitutions = []string{
	"university", "college", "institute", "coursera", "edx", "udacity",
	"meta", "google", "microsoft", "ibm", "amazon", "adobe",
}

// Validate runs the full authenticity assessment for one certificate file:
// document hash, signature metadata, QR detection plus URL verification, then
// the additive score. Each stage degrades independently; only a stage error
// is recorded, never propagated as a hard failure.
func (c *Checker) Validate(ctx context.Context, path, text string) entity.AuthenticityReport {
	var report entity.AuthenticityReport

	hash, err := DocumentHash(path)
	if err != nil {
		c.logger.Warn("hash calculation failed", "path", path, "error", err)
	}
	report.DocumentHash = hash

	report.DigitalSignatures = c.DetectSignatures(path)

	codes, err := c.DetectQRCodes(ctx, path)
	if err != nil {
		c.logger.Warn("qr code detection failed", "path", path, "error", err)
	}
	report.QRCodes = codes
	for _, qr := range codes {
		if strings.HasPrefix(qr.Data, "http://") || strings.HasPrefix(qr.Data, "https://") {
			report.QRVerification = append(report.QRVerification, c.VerifyURL(ctx, qr.Data))
		}
	}

	assess(&report, text)
	c.logger.Info("authenticity validation completed", "path", path, "score", report.OverallScore)
	return report
}

// assess fills indicators, risk factors, the capped score and the
// recommendation tier from the already-collected evidence.
func assess(report *entity.AuthenticityReport, text string) {
	score := 0.0

	if len(report.QRCodes) > 0 {
		report.AuthenticityIndicators = append(report.AuthenticityIndicators, "Contains QR codes for verification")
		score += 25

		verified := 0
		for _, v := range report.QRVerification {
			if v.Accessible && v.StatusCode != nil && *v.StatusCode == 200 {
				verified++
			}
		}
		if verified > 0 {
			report.AuthenticityIndicators = append(report.AuthenticityIndicators,
				fmt.Sprintf("%d QR code(s) successfully verified", verified))
			score += 25
		} else {
			report.RiskFactors = append(report.RiskFactors, "QR codes present but not accessible")
		}
	}

	if len(report.DigitalSignatures.SecurityFeatures) > 0 {
		report.AuthenticityIndicators = append(report.AuthenticityIndicators,
			report.DigitalSignatures.SecurityFeatures...)
		score += 20
	}

	meta := report.DigitalSignatures.Metadata
	if meta.Creator != "" || meta.Producer != "" {
		report.AuthenticityIndicators = append(report.AuthenticityIndicators, "Contains creation metadata")
		score += 10
	}

	textLower := strings.ToLower(text)

	var foundKeywords []string
	for _, kw := range verificationKeywords {
		if strings.Contains(textLower, kw) {
			foundKeywords = append(foundKeywords, kw)
		}
	}
	if len(foundKeywords) > 0 {
		report.AuthenticityIndicators = append(report.AuthenticityIndicators,
			"Contains verification keywords: "+strings.Join(foundKeywords, ", "))
		score += float64(len(foundKeywords)) * 2
	}

	var foundInstitutions []string
	for _, inst := range knownInstitutions {
		if strings.Contains(textLower, inst) {
			foundInstitutions = append(foundInstitutions, inst)
		}
	}
	if len(foundInstitutions) > 0 {
		report.AuthenticityIndicators = append(report.AuthenticityIndicators,
			"Issued by recognized institutions: "+strings.Join(foundInstitutions, ", "))
		score += 10
	}

	if len(report.QRCodes) == 0 && len(report.DigitalSignatures.SecurityFeatures) == 0 {
		report.RiskFactors = append(report.RiskFactors, "No digital verification methods detected")
	}
	if meta.Creator == "" && meta.Producer == "" {
		report.RiskFactors = append(report.RiskFactors, "Missing creation metadata")
	}

	if score > 100 {
		score = 100
	}
	report.OverallScore = score

	switch {
	case score >= 80:
		report.Recommendations = append(report.Recommendations,
			"High authenticity confidence - certificate appears genuine")
	case score >= 60:
		report.Recommendations = append(report.Recommendations,
			"Moderate authenticity confidence - verify through additional means")
	case score >= 40:
		report.Recommendations = append(report.Recommendations,
			"Low authenticity confidence - manual verification recommended")
	default:
		report.Recommendations = append(report.Recommendations,
			"Very low authenticity confidence - exercise caution")
	}

	for _, v := range report.QRVerification {
		if v.Accessible {
			report.Recommendations = append(report.Recommendations, "Verify certificate at: "+v.URL)
		}
	}
}
