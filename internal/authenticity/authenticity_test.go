package authenticity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiredocs/internal/common"
	"hiredocs/internal/entity"
)

type failRunner struct{}

func (failRunner) Run(context.Context, string, ...string) ([]byte, []byte, error) {
	return nil, nil, errors.New("binary not installed")
}

func newTestChecker(client *http.Client) *Checker {
	return NewCheckerWithDeps(common.OCRConfig{}, common.VerifyConfig{Timeout: 5 * time.Second},
		failRunner{}, client, nil)
}

func TestDocumentHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cert.pdf")
	require.NoError(t, os.WriteFile(path, []byte("hello hiredocs"), 0o600))

	hash, err := DocumentHash(path)
	require.NoError(t, err)
	assert.Equal(t, "e5493e3f5ddddc78244936f020e1f2fd4514dad3e83b04183b37b49d74a78b42", hash)
}

func TestDocumentHash_MissingFile(t *testing.T) {
	_, err := DocumentHash(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestAssess_NoDigitalVerificationMethods(t *testing.T) {
	var report entity.AuthenticityReport
	assess(&report, "Certificate of Completion awarded for outstanding performance")

	assert.Equal(t, 0.0, report.OverallScore)
	assert.Contains(t, report.RiskFactors, "No digital verification methods detected")
	assert.Contains(t, report.RiskFactors, "Missing creation metadata")
	assert.Contains(t, report.Recommendations, "Very low authenticity confidence - exercise caution")
}

func TestAssess_VerifiedQRHighConfidence(t *testing.T) {
	status := 200
	report := entity.AuthenticityReport{
		QRCodes: []entity.QRCode{{Type: "QR_CODE", Data: "https://credentials.example.com/abc", Page: 1}},
		QRVerification: []entity.URLVerification{
			{URL: "https://credentials.example.com/abc", Accessible: true, StatusCode: &status},
		},
		DigitalSignatures: entity.SignatureInfo{
			HasDigitalSignature: true,
			SecurityFeatures:    []string{"Signed with docusign"},
			Metadata:            entity.DocMetadata{Producer: "DocuSign Inc."},
		},
	}
	assess(&report, "Verify this certificate at coursera")

	// 25 qr + 25 verified + 20 signatures + 10 metadata + 2 keyword + 10 institution
	assert.Equal(t, 92.0, report.OverallScore)
	assert.Contains(t, report.AuthenticityIndicators, "Contains QR codes for verification")
	assert.Contains(t, report.AuthenticityIndicators, "1 QR code(s) successfully verified")
	assert.Contains(t, report.AuthenticityIndicators, "Signed with docusign")
	assert.Contains(t, report.AuthenticityIndicators, "Contains creation metadata")
	assert.Empty(t, report.RiskFactors)
	assert.Contains(t, report.Recommendations, "High authenticity confidence - certificate appears genuine")
	assert.Contains(t, report.Recommendations, "Verify certificate at: https://credentials.example.com/abc")
}

func TestAssess_QRPresentButNotAccessible(t *testing.T) {
	report := entity.AuthenticityReport{
		QRCodes: []entity.QRCode{{Type: "QR_CODE", Data: "https://gone.example.com", Page: 1}},
		QRVerification: []entity.URLVerification{
			{URL: "https://gone.example.com", Accessible: false, Error: "Connection error"},
		},
	}
	assess(&report, "")

	assert.Equal(t, 25.0, report.OverallScore)
	assert.Contains(t, report.RiskFactors, "QR codes present but not accessible")
	assert.Contains(t, report.Recommendations, "Very low authenticity confidence - exercise caution")
}

func TestAssess_ScoreCappedAt100(t *testing.T) {
	status := 200
	report := entity.AuthenticityReport{
		QRCodes: []entity.QRCode{{Type: "QR_CODE", Data: "https://v.example.com", Page: 1}},
		QRVerification: []entity.URLVerification{
			{URL: "https://v.example.com", Accessible: true, StatusCode: &status},
		},
		DigitalSignatures: entity.SignatureInfo{
			SecurityFeatures: []string{"Signed with adobe sign"},
			Metadata:         entity.DocMetadata{Creator: "Adobe Sign"},
		},
	}
	text := "verify verification authenticate digital certificate id " +
		"verification code license number registration number university"
	assess(&report, text)

	assert.Equal(t, 100.0, report.OverallScore)
}

func TestAssess_ModerateTier(t *testing.T) {
	report := entity.AuthenticityReport{
		QRCodes: []entity.QRCode{{Type: "QR_CODE", Data: "https://v.example.com", Page: 1}},
		DigitalSignatures: entity.SignatureInfo{
			SecurityFeatures: []string{"Signed with signnow"},
			Metadata:         entity.DocMetadata{Producer: "SignNow"},
		},
	}
	assess(&report, "issued by the institute")

	// 25 qr + 20 signatures + 10 metadata + 10 institution, qr not verified
	assert.Equal(t, 65.0, report.OverallScore)
	assert.Contains(t, report.RiskFactors, "QR codes present but not accessible")
	assert.Contains(t, report.Recommendations,
		"Moderate authenticity confidence - verify through additional means")
}

func TestVerifyURL(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><head><title>Credential Check</title></head><body>ok</body></html>"))
	}))
	defer srv.Close()

	c := newTestChecker(srv.Client())
	res := c.VerifyURL(context.Background(), srv.URL)

	assert.True(t, res.Accessible)
	require.NotNil(t, res.StatusCode)
	assert.Equal(t, 200, *res.StatusCode)
	require.NotNil(t, res.Title)
	assert.Equal(t, "Credential Check", *res.Title)
	assert.Equal(t, "hiredocs/1.0 (Verification Bot)", gotUA)
	assert.Empty(t, res.Error)
}

func TestVerifyURL_NonHTMLSkipsTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	c := newTestChecker(srv.Client())
	res := c.VerifyURL(context.Background(), srv.URL)

	assert.True(t, res.Accessible)
	assert.Nil(t, res.Title)
}

func TestVerifyURL_InvalidFormat(t *testing.T) {
	c := newTestChecker(nil)

	for _, raw := range []string{"verify-me", "", "://missing-scheme"} {
		res := c.VerifyURL(context.Background(), raw)
		assert.False(t, res.Accessible, raw)
		assert.Equal(t, "Invalid URL format", res.Error, raw)
	}
}

func TestValidate_UnreadableFileDegrades(t *testing.T) {
	c := newTestChecker(nil)
	path := filepath.Join(t.TempDir(), "missing.pdf")

	report := c.Validate(context.Background(), path, "plain text certificate")

	assert.Empty(t, report.DocumentHash)
	assert.NotEmpty(t, report.DigitalSignatures.Error)
	assert.Empty(t, report.QRCodes)
	assert.Contains(t, report.RiskFactors, "No digital verification methods detected")
	assert.Contains(t, report.RiskFactors, "Missing creation metadata")
}
