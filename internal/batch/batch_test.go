package batch

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hiredocs/constants"
	"hiredocs/internal/acquire"
	"hiredocs/internal/common"
	"hiredocs/internal/pipeline"
)

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

func newTestProcessor(t *testing.T, outDir string) *Processor {
	t.Helper()

	cfg := common.LoadConfig()
	cfg.Store.Path = ""
	cfg.NLP.Disabled = true
	cfg.Intake.OutDir = outDir
	cfg.Intake.Concurrency = 2
	// point the engine binaries at names that cannot exist so OCR paths
	// degrade deterministically
	cfg.OCR.Tesseract = "hd-test-missing-tesseract"
	cfg.OCR.EasyOCR = "hd-test-missing-easyocr"
	cfg.OCR.Pdftoppm = "hd-test-missing-pdftoppm"

	pipe, err := pipeline.NewWithDeps(cfg, acquire.NewExtractor(cfg.OCR, nil), nil, nil, nil, nil, nil)
	require.NoError(t, err)
	return NewProcessor(pipe, cfg, nil)
}

func TestProcessDir_Payslips(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	p := newTestProcessor(t, outDir)

	writeDOCX(t, dir, "slip_a.docx", []string{"Net Pay 45000", "Employee Name: A Kumar"})
	writeDOCX(t, dir, "slip_b.docx", []string{"Total Earnings: 30000", "Total Deductions: 2000"})
	// corrupt file: not a zip at all
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.docx"), []byte("not a docx"), 0o600))
	// unsupported extensions are skipped outright
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o600))

	summary, err := p.ProcessDir(context.Background(), dir, constants.KindPayslip, "")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.RequiresOCR)

	_, err = os.Stat(filepath.Join(outDir, "slip_a_result.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "slip_b_result.json"))
	assert.NoError(t, err)
}

func TestProcessDir_ScannedImageCountsAsOCRNeeded(t *testing.T) {
	dir := t.TempDir()
	p := newTestProcessor(t, t.TempDir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scan.png"), []byte("\x89PNG\r\n"), 0o600))

	summary, err := p.ProcessDir(context.Background(), dir, constants.KindPayslip, "")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.RequiresOCR)
}

func TestProcessDir_ResumesRankedWithJobDescription(t *testing.T) {
	dir := t.TempDir()
	p := newTestProcessor(t, t.TempDir())

	writeDOCX(t, dir, "alice_resume.docx", []string{
		"Alice Martin",
		"Skills",
		"Python, React, Docker, Leadership",
		"Education",
		"University of Texas",
		"Bachelor of Computer Science",
	})
	writeDOCX(t, dir, "bob_resume.docx", []string{
		"Bob Stone",
		"Skills",
		"Excel, Communication",
	})

	summary, err := p.ProcessDir(context.Background(), dir, constants.KindResume,
		"Python developer with React and Docker experience")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Succeeded)
	require.Len(t, summary.Ranked, 2)
	assert.Equal(t, 1, summary.Ranked[0].Rank)
	assert.Equal(t, 2, summary.Ranked[1].Rank)
	assert.Equal(t, "alice_resume.docx", summary.Ranked[0].Filename)
	require.NotNil(t, summary.Ranked[0].FitScores)
	assert.Greater(t, summary.Ranked[0].FitScores.TotalFit, summary.Ranked[1].FitScores.TotalFit)
}

func TestProcessDir_EmptyDir(t *testing.T) {
	p := newTestProcessor(t, t.TempDir())

	summary, err := p.ProcessDir(context.Background(), t.TempDir(), constants.KindCertificate, "")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.Results)
}

func TestWriteReport(t *testing.T) {
	p := newTestProcessor(t, t.TempDir())
	summary := &Summary{
		Kind: constants.KindPayslip, Total: 2, Succeeded: 1, Failed: 1, RequiresOCR: 1,
		Results: []Result{
			{Path: "/in/a.docx", OutputPath: "/out/a_result.json"},
			{Path: "/in/b.png", Error: "OCR engine not available", RequiresOCR: true},
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, p.WriteReport(path, summary))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	head, err := f.GetCellValue("Batch", "A1")
	require.NoError(t, err)
	assert.Equal(t, "File", head)
	status, err := f.GetCellValue("Batch", "B3")
	require.NoError(t, err)
	assert.Equal(t, "failed", status)
}
