package assemble

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiredocs/internal/entity"
)

func newAssembler(t *testing.T) *Assembler {
	t.Helper()
	a, err := New(nil)
	require.NoError(t, err)
	return a
}

func TestFinalize_Payslip(t *testing.T) {
	a := newAssembler(t)
	name := "Rahul Verma"
	rec := entity.PayslipRecord{
		Components: map[string]float64{
			"basic": 25000, "total_earnings": 50000, "net_pay": 45000,
		},
		EmploymentProof: entity.EmploymentProof{EmployeeName: &name, Valid: true},
		FileProcessed:   "payslip.pdf",
	}

	data, err := a.Finalize(KindPayslip, rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "components")
	assert.Contains(t, decoded, "employment_proof")
}

func TestFinalize_PayslipRejectsNegativeAmount(t *testing.T) {
	a := newAssembler(t)
	rec := entity.PayslipRecord{
		Components: map[string]float64{"net_pay": -10},
	}

	_, err := a.Finalize(KindPayslip, rec)
	assert.Error(t, err)
}

func TestFinalize_ResumeErrorRecord(t *testing.T) {
	a := newAssembler(t)
	rec := entity.ResumeRecord{
		ID:          "b3a9f8f0-0000-4000-8000-000000000000",
		FilePath:    "/tmp/scan.pdf",
		Filename:    "scan.pdf",
		ProcessedAt: time.Now(),
		Error:       "could not extract text from /tmp/scan.pdf",
		RequiresOCR: true,
	}

	_, err := a.Finalize(KindResume, rec)
	assert.NoError(t, err)
}

func TestFinalize_ResumeMissingIDRejected(t *testing.T) {
	a := newAssembler(t)
	rec := entity.ResumeRecord{
		FilePath:    "/tmp/x.pdf",
		Filename:    "x.pdf",
		ProcessedAt: time.Now(),
	}

	_, err := a.Finalize(KindResume, rec)
	assert.Error(t, err)
}

func TestFinalize_CertificateConfidenceBounds(t *testing.T) {
	a := newAssembler(t)
	rec := entity.CertificateRecord{
		ConfidenceScores:  map[string]float64{"university": 1.5},
		ExtractionMethods: map[string]string{"university": "regex"},
		RawMatches:        map[string][]string{},
	}

	_, err := a.Finalize(KindCertificate, rec)
	assert.Error(t, err)
}

func TestFinalize_UnknownKind(t *testing.T) {
	a := newAssembler(t)
	_, err := a.Finalize(Kind("invoice"), map[string]any{})
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	a := newAssembler(t)
	rec := entity.ExperienceLetterRecord{
		Anomalies:       []string{},
		ConfidenceScore: 85,
	}

	path := filepath.Join(t.TempDir(), "letter_result.json")
	require.NoError(t, a.WriteFile(path, KindExperienceLetter, rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "formatting_consistency")
}
