// Package pipeline wires acquisition, parsing, validation and assembly into
// the four document entry points. Each call is synchronous and owns its own
// record; the shared engine handles (OCR, NLP) are initialized once and used
// read-only, so independent callers may run concurrently.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"hiredocs/constants"
	"hiredocs/internal/acquire"
	"hiredocs/internal/assemble"
	"hiredocs/internal/authenticity"
	"hiredocs/internal/common"
	"hiredocs/internal/entity"
	"hiredocs/internal/nlp"
	"hiredocs/internal/parser/certificate"
	"hiredocs/internal/parser/expletter"
	"hiredocs/internal/parser/payslip"
	"hiredocs/internal/parser/resume"
	"hiredocs/internal/store"
)

// Pipeline holds the long-lived processing dependencies.
type Pipeline struct {
	cfg        *common.Config
	extractor  *acquire.Extractor
	recognizer nlp.EntityRecognizer
	scorer     *resume.Scorer
	checker    *authenticity.Checker
	assembler  *assemble.Assembler
	audit      *store.Store
	logger     *slog.Logger
	now        func() time.Time
}

func New(cfg *common.Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		cfg = common.LoadConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	recognizer := nlp.NewProseRecognizer(cfg.NLP.Disabled, logger)
	var audit *store.Store
	if cfg.Store.Path != "" {
		st, err := store.Open(cfg.Store.Path, logger)
		if err != nil {
			return nil, err
		}
		audit = st
	}
	return NewWithDeps(cfg,
		acquire.NewExtractor(cfg.OCR, logger),
		recognizer,
		resume.NewScorer(cfg.Scoring, recognizer),
		authenticity.NewChecker(cfg.OCR, cfg.Verify, logger),
		audit, logger)
}

// NewWithDeps builds a pipeline from pre-built parts, used by tests to
// substitute fakes for the engine-backed dependencies.
func NewWithDeps(cfg *common.Config, extractor *acquire.Extractor, recognizer nlp.EntityRecognizer,
	scorer *resume.Scorer, checker *authenticity.Checker, audit *store.Store, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		cfg = common.LoadConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	assembler, err := assemble.New(logger)
	if err != nil {
		return nil, err
	}
	if recognizer == nil {
		recognizer = nlp.Unavailable{}
	}
	if scorer == nil {
		scorer = resume.NewScorer(cfg.Scoring, nil)
	}
	return &Pipeline{
		cfg:        cfg,
		extractor:  extractor,
		recognizer: recognizer,
		scorer:     scorer,
		checker:    checker,
		assembler:  assembler,
		audit:      audit,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Assembler exposes the schema-validating serializer for callers that
// persist records themselves.
func (p *Pipeline) Assembler() *assemble.Assembler { return p.assembler }

func (p *Pipeline) Close() error {
	if p.audit != nil {
		return p.audit.Close()
	}
	return nil
}

// ProcessResume extracts entities from a resume and, when a job description
// is supplied, scores candidate fit against it.
func (p *Pipeline) ProcessResume(ctx context.Context, path, jobDescription string) entity.ResumeRecord {
	rec := entity.ResumeRecord{
		ID:          uuid.NewString(),
		FilePath:    path,
		Filename:    filepath.Base(path),
		ProcessedAt: p.now(),
	}

	extracted, err := p.extractor.Extract(ctx, path)
	if err != nil {
		rec.Error = err.Error()
		rec.RequiresOCR = common.RequiresOCR(err)
		p.record(ctx, "resume", path, rec.ID, rec.Error, rec.RequiresOCR)
		return rec
	}

	classification := resume.Classify(rec.Filename, extracted.Text, extracted.Format)
	classification.PageCount = extracted.Pages
	classification.IsScannable = extracted.Source != entity.SourceOCR
	rec.Classification = &classification
	rec.IsResume = classification.Type == resume.TypeResume
	if !rec.IsResume {
		// not a resume: report the classification and stop
		p.record(ctx, "resume", path, rec.ID, "", false)
		return rec
	}

	entities := resume.ExtractEntities(extracted.Text, rec.Filename, p.logger)
	rec.Entities = &entities
	anonymized := resume.Anonymize(entities)
	rec.Anonymized = &anonymized

	if strings.TrimSpace(jobDescription) != "" {
		scores := p.scorer.Fit(entities, jobDescription)
		rec.FitScores = &scores
	}

	p.record(ctx, "resume", path, rec.ID, "", false)
	return rec
}

// ProcessPayslip extracts salary components and employment proof.
func (p *Pipeline) ProcessPayslip(ctx context.Context, path string) entity.PayslipRecord {
	id := uuid.NewString()

	extracted, err := p.extractor.Extract(ctx, path)
	if err != nil {
		rec := entity.PayslipRecord{
			Error:       err.Error(),
			RequiresOCR: common.RequiresOCR(err),
		}
		p.record(ctx, "payslip", path, id, rec.Error, rec.RequiresOCR)
		return rec
	}

	rec := payslip.Parse(extracted.Text, p.logger)
	rec.FileProcessed = filepath.Base(path)
	p.record(ctx, "payslip", path, id, rec.Error, false)
	return rec
}

// ProcessExperienceLetter extracts employment facts and their consistency report.
func (p *Pipeline) ProcessExperienceLetter(ctx context.Context, path string) entity.ExperienceLetterRecord {
	id := uuid.NewString()

	extracted, err := p.extractor.Extract(ctx, path)
	if err != nil {
		rec := entity.ExperienceLetterRecord{
			Error:       err.Error(),
			RequiresOCR: common.RequiresOCR(err),
		}
		p.record(ctx, "experience_letter", path, id, rec.Error, rec.RequiresOCR)
		return rec
	}

	rec := expletter.Parse(extracted.Text, p.now(), p.logger)
	rec.FileProcessed = filepath.Base(path)
	p.record(ctx, "experience_letter", path, id, rec.Error, false)
	return rec
}

// ProcessCertificate extracts credential fields and, for PDFs, runs the
// authenticity sub-pipeline. Network failures during QR verification stay
// inside the authenticity report.
func (p *Pipeline) ProcessCertificate(ctx context.Context, path string) entity.CertificateRecord {
	id := uuid.NewString()

	extracted, err := p.extractor.Extract(ctx, path)
	if err != nil {
		rec := entity.CertificateRecord{
			Error:       err.Error(),
			RequiresOCR: common.RequiresOCR(err),
		}
		p.record(ctx, "certificate", path, id, rec.Error, rec.RequiresOCR)
		return rec
	}

	rec := certificate.Parse(extracted.Text, p.recognizer, p.logger)
	rec.SourceFile = path
	rec.ProcessedAt = p.now()

	if p.checker != nil && constants.NormalizeExt(filepath.Ext(path)) == "pdf" {
		report := p.checker.Validate(ctx, path, extracted.Text)
		rec.Authenticity = &report
	}

	p.record(ctx, "certificate", path, id, rec.Error, false)
	return rec
}

// record appends an audit entry when the audit log is enabled.
func (p *Pipeline) record(ctx context.Context, kind, path, id, errMsg string, requiresOCR bool) {
	if p.audit == nil {
		return
	}
	status := constants.RunStatusParsedOK
	if errMsg != "" {
		status = constants.RunStatusFailed
	}
	entry := store.Entry{
		ID:          id,
		Kind:        kind,
		FilePath:    path,
		ProcessedAt: p.now(),
		Status:      status,
		Error:       errMsg,
		RequiresOCR: requiresOCR,
	}
	if err := p.audit.Append(ctx, entry); err != nil {
		p.logger.Warn("audit append failed", "path", path, "error", err)
	}
}
