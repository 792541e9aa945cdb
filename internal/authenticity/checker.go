// Package authenticity scores how trustworthy a certificate PDF looks:
// embedded QR codes and their URLs, e-signature traces in the document
// metadata, and verification keywords in the extracted text.
package authenticity

import (
	"log/slog"
	"net/http"

	"hiredocs/internal/common"
	"hiredocs/internal/ocr"
)

// Checker runs the authenticity sub-pipeline. The HTTP client is shared
// across QR URL verifications and bounded by the configured timeout.
type Checker struct {
	runner ocr.Runner
	ocrCfg common.OCRConfig
	verify common.VerifyConfig
	client *http.Client
	logger *slog.Logger
}

func NewChecker(ocrCfg common.OCRConfig, verify common.VerifyConfig, logger *slog.Logger) *Checker {
	return NewCheckerWithDeps(ocrCfg, verify, ocr.ExecRunner(), nil, logger)
}

// NewCheckerWithDeps builds a checker with an injected command runner and
// HTTP client, used by tests to substitute fakes.
func NewCheckerWithDeps(ocrCfg common.OCRConfig, verify common.VerifyConfig, runner ocr.Runner, client *http.Client, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	if ocrCfg.Pdftoppm == "" {
		ocrCfg.Pdftoppm = "pdftoppm"
	}
	if ocrCfg.DPI <= 0 {
		ocrCfg.DPI = 300
	}
	if verify.UserAgent == "" {
		verify.UserAgent = "hiredocs/1.0 (Verification Bot)"
	}
	if client == nil {
		client = &http.Client{Timeout: verify.Timeout}
	}
	return &Checker{runner: runner, ocrCfg: ocrCfg, verify: verify, client: client, logger: logger}
}
