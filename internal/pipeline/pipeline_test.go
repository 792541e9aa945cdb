package pipeline

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiredocs/constants"
	"hiredocs/internal/acquire"
	"hiredocs/internal/common"
	"hiredocs/internal/store"
)

// writeDOCX builds a minimal WordprocessingML package, one paragraph per line.
func writeDOCX(t *testing.T, dir, name string, lines []string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	var b strings.Builder
	b.WriteString("<document><body>")
	for _, line := range lines {
		b.WriteString("<p><r><t>")
		b.WriteString(line)
		b.WriteString("</t></r></p>")
	}
	b.WriteString("</body></document>")
	_, err = w.Write([]byte(b.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return path
}

func newTestPipeline(t *testing.T, cfg *common.Config) *Pipeline {
	t.Helper()
	if cfg == nil {
		cfg = common.LoadConfig()
		cfg.Store.Path = ""
		cfg.NLP.Disabled = true
	}
	p, err := NewWithDeps(cfg, acquire.NewExtractor(cfg.OCR, nil), nil, nil, nil, nil, nil)
	require.NoError(t, err)
	return p
}

func TestProcessPayslip_DOCX(t *testing.T) {
	p := newTestPipeline(t, nil)
	path := writeDOCX(t, t.TempDir(), "march_payslip.docx", []string{
		"Employee Name: Rahul Verma",
		"Employee ID: EMP4521",
		"Total Earnings: 50000",
		"Total Deductions: 5000",
	})

	rec := p.ProcessPayslip(context.Background(), path)

	require.Empty(t, rec.Error)
	assert.Equal(t, "march_payslip.docx", rec.FileProcessed)
	assert.Equal(t, 45000.0, rec.Components["net_pay"])
	assert.Equal(t, 45000.0, rec.Components["net_salary"])
	assert.True(t, rec.EmploymentProof.Valid)
}

func TestProcessResume_WithJobDescription(t *testing.T) {
	p := newTestPipeline(t, nil)
	path := writeDOCX(t, t.TempDir(), "john_resume.docx", []string{
		"John Smith",
		"john.smith@example.com",
		"Experience",
		"Education",
		"University of Texas",
		"Bachelor of Computer Science",
		"Skills",
		"Python, React, Leadership",
	})

	rec := p.ProcessResume(context.Background(), path, "Looking for a Python developer with React experience")

	require.Empty(t, rec.Error)
	assert.NotEmpty(t, rec.ID)
	assert.True(t, rec.IsResume)
	require.NotNil(t, rec.Classification)
	assert.Equal(t, 1, rec.Classification.PageCount)

	require.NotNil(t, rec.Entities)
	require.NotNil(t, rec.Entities.PersonalInfo.Email)
	assert.Equal(t, "john.smith@example.com", *rec.Entities.PersonalInfo.Email)
	assert.Contains(t, rec.Entities.Skills.Technical, "Python")

	require.NotNil(t, rec.Anonymized)
	require.NotNil(t, rec.Anonymized.PersonalInfo.Email)
	assert.Equal(t, "[EMAIL REDACTED]", *rec.Anonymized.PersonalInfo.Email)

	require.NotNil(t, rec.FitScores)
	assert.Greater(t, rec.FitScores.TotalFit, 0.0)
}

func TestProcessResume_NoJobDescriptionSkipsScoring(t *testing.T) {
	p := newTestPipeline(t, nil)
	path := writeDOCX(t, t.TempDir(), "jane_resume.docx", []string{
		"Jane Doe",
		"Skills",
		"Python, React, Leadership",
	})

	rec := p.ProcessResume(context.Background(), path, "")

	require.Empty(t, rec.Error)
	assert.Nil(t, rec.FitScores)
}

func TestProcessResume_UnsupportedFormat(t *testing.T) {
	p := newTestPipeline(t, nil)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))

	rec := p.ProcessResume(context.Background(), path, "")

	assert.NotEmpty(t, rec.ID)
	assert.Contains(t, rec.Error, "unsupported file format")
	assert.False(t, rec.RequiresOCR)
	assert.Nil(t, rec.Entities)
}

func TestProcessExperienceLetter_DOCX(t *testing.T) {
	p := newTestPipeline(t, nil)
	path := writeDOCX(t, t.TempDir(), "letter.docx", []string{
		"This is to certify that John Smith was employed at Acme Technologies Pvt Ltd",
		"as a Software Engineer from 2020-01-01 to 2022-02-28.",
	})

	rec := p.ProcessExperienceLetter(context.Background(), path)

	require.Empty(t, rec.Error)
	assert.Equal(t, "letter.docx", rec.FileProcessed)
	assert.Greater(t, rec.ConfidenceScore, 0.0)
	require.NotNil(t, rec.ExtractedData.StartDate)
	assert.Equal(t, "2020-01-01", *rec.ExtractedData.StartDate)
}

func TestProcessCertificate_NonPDFSkipsAuthenticity(t *testing.T) {
	p := newTestPipeline(t, nil)
	path := writeDOCX(t, t.TempDir(), "certificate.docx", []string{
		"Bachelor of Computer Science",
		"University of Waterloo",
		"CGPA: 8.7/10",
	})

	rec := p.ProcessCertificate(context.Background(), path)

	require.Empty(t, rec.Error)
	assert.Equal(t, path, rec.SourceFile)
	assert.Nil(t, rec.Authenticity)
	require.NotNil(t, rec.GPA)
	assert.Equal(t, "8.70", *rec.GPA)
}

func TestAuditLogRecordsRuns(t *testing.T) {
	cfg := common.LoadConfig()
	cfg.NLP.Disabled = true
	cfg.Store.Path = ""

	st, err := store.Open(filepath.Join(t.TempDir(), "audit.db"), nil)
	require.NoError(t, err)

	p, err := NewWithDeps(cfg, acquire.NewExtractor(cfg.OCR, nil), nil, nil, nil, st, nil)
	require.NoError(t, err)
	defer p.Close()

	ctx := context.Background()
	okPath := writeDOCX(t, t.TempDir(), "slip.docx", []string{"Net Pay 45000"})
	badPath := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(badPath, []byte("x"), 0o600))

	p.ProcessPayslip(ctx, okPath)
	p.ProcessPayslip(ctx, badPath)

	entries, err := st.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var parsed, failed int
	for _, e := range entries {
		assert.Equal(t, "payslip", e.Kind)
		switch e.Status {
		case constants.RunStatusParsedOK:
			parsed++
		case constants.RunStatusFailed:
			failed++
		}
	}
	assert.Equal(t, 1, parsed)
	assert.Equal(t, 1, failed)
}
