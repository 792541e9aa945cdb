// Package batch processes whole directories of career documents, bounded by
// a worker limit, and keeps aggregate counters so one broken file never stops
// the rest. OCR-specific failures are counted separately to drive the
// "install an OCR engine" remediation message.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"hiredocs/constants"
	"hiredocs/internal/assemble"
	"hiredocs/internal/common"
	"hiredocs/internal/entity"
	"hiredocs/internal/parser/resume"
	"hiredocs/internal/pipeline"
)

// Result is the outcome for one file in a batch.
type Result struct {
	Path        string `json:"path"`
	OutputPath  string `json:"output_path,omitempty"`
	Error       string `json:"error,omitempty"`
	RequiresOCR bool   `json:"requires_ocr,omitempty"`
}

// Summary aggregates a batch run.
type Summary struct {
	Kind        constants.DocumentKind `json:"kind"`
	Total       int                    `json:"total"`
	Succeeded   int                    `json:"succeeded"`
	Failed      int                    `json:"failed"`
	RequiresOCR int                    `json:"requires_ocr"`
	Results     []Result               `json:"results"`

	// Filled only for resume batches with a job description.
	Ranked      []*entity.ResumeRecord `json:"-"`
	Shortlisted int                    `json:"shortlisted,omitempty"`
}

// Processor runs the pipeline over directories and watched intake folders.
type Processor struct {
	pipe    *pipeline.Pipeline
	intake  common.IntakeConfig
	scoring common.ScoringConfig
	logger  *slog.Logger
}

func NewProcessor(pipe *pipeline.Pipeline, cfg *common.Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	intake := cfg.Intake
	if intake.Concurrency <= 0 {
		intake.Concurrency = 4
	}
	return &Processor{pipe: pipe, intake: intake, scoring: cfg.Scoring, logger: logger}
}

// ProcessDir processes every supported file directly under dir as the given
// document kind. Individual failures land in the summary, not in the returned
// error; the error covers only directory access and output plumbing.
func (p *Processor) ProcessDir(ctx context.Context, dir string, kind constants.DocumentKind, jobDescription string) (*Summary, error) {
	files, err := listSupported(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(p.intake.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	summary := &Summary{Kind: kind, Total: len(files)}
	if len(files) == 0 {
		p.logger.Warn("no supported files found", "dir", dir)
		return summary, nil
	}
	p.logger.Info("batch started", "dir", dir, "kind", kind, "files", len(files),
		"concurrency", p.intake.Concurrency)

	var mu sync.Mutex
	var resumes []*entity.ResumeRecord

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.intake.Concurrency)
	for _, path := range files {
		path := path
		g.Go(func() error {
			res, rec := p.processOne(ctx, path, kind, jobDescription)

			mu.Lock()
			defer mu.Unlock()
			summary.Results = append(summary.Results, res)
			switch {
			case res.RequiresOCR:
				summary.Failed++
				summary.RequiresOCR++
			case res.Error != "":
				summary.Failed++
			default:
				summary.Succeeded++
			}
			if rec != nil {
				resumes = append(resumes, rec)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}

	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].Path < summary.Results[j].Path
	})

	if kind == constants.KindResume && strings.TrimSpace(jobDescription) != "" {
		summary.Ranked = resume.Rank(resumes)
		shortlisted := resume.Shortlist(summary.Ranked, p.scoring.ShortlistThreshold, 0)
		summary.Shortlisted = len(shortlisted)
	}

	p.logger.Info("batch finished", "succeeded", summary.Succeeded,
		"failed", summary.Failed, "requires_ocr", summary.RequiresOCR)
	if summary.RequiresOCR > 0 {
		p.logger.Warn("some documents appear scanned; install tesseract or easyocr to process them",
			"count", summary.RequiresOCR)
	}
	return summary, nil
}

// processOne runs one file through the pipeline and persists its record.
// The returned record pointer is non-nil only for successfully parsed resumes.
func (p *Processor) processOne(ctx context.Context, path string, kind constants.DocumentKind, jobDescription string) (Result, *entity.ResumeRecord) {
	res := Result{Path: path}
	out := p.outputPath(path)

	var record any
	var schemaKind assemble.Kind
	var resumeRec *entity.ResumeRecord

	switch kind {
	case constants.KindResume:
		rec := p.pipe.ProcessResume(ctx, path, jobDescription)
		res.Error, res.RequiresOCR = rec.Error, rec.RequiresOCR
		record, schemaKind = rec, assemble.KindResume
		if rec.Error == "" && rec.IsResume {
			resumeRec = &rec
		}
	case constants.KindPayslip:
		rec := p.pipe.ProcessPayslip(ctx, path)
		res.Error, res.RequiresOCR = rec.Error, rec.RequiresOCR
		record, schemaKind = rec, assemble.KindPayslip
	case constants.KindExperienceLetter:
		rec := p.pipe.ProcessExperienceLetter(ctx, path)
		res.Error, res.RequiresOCR = rec.Error, rec.RequiresOCR
		record, schemaKind = rec, assemble.KindExperienceLetter
	case constants.KindCertificate:
		rec := p.pipe.ProcessCertificate(ctx, path)
		res.Error, res.RequiresOCR = rec.Error, rec.RequiresOCR
		record, schemaKind = rec, assemble.KindCertificate
	default:
		res.Error = fmt.Sprintf("unknown document kind %q", kind)
		return res, nil
	}

	if err := p.pipe.Assembler().WriteFile(out, schemaKind, record); err != nil {
		p.logger.Error("failed to persist record", "path", path, "error", err)
		if res.Error == "" {
			res.Error = err.Error()
		}
		return res, nil
	}
	res.OutputPath = out
	return res, resumeRec
}

func (p *Processor) outputPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(p.intake.OutDir, base+"_result.json")
}

// listSupported returns the supported files directly under dir, sorted.
func listSupported(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if constants.MapExtToFormat(filepath.Ext(e.Name())) == "" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
