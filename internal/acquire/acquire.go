// Package acquire turns career-document files (PDF, DOCX, DOC, raster images)
// into plain text, using direct extraction first and OCR engines as fallback.
package acquire

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"hiredocs/constants"
	"hiredocs/internal/common"
	"hiredocs/internal/entity"
	"hiredocs/internal/ocr"
)

// Extractor is the text acquisition layer. Stateless per call; the only shared
// state is the OCR engine availability cache inside the stack.
type Extractor struct {
	cfg    common.OCRConfig
	stack  *ocr.Stack
	runner ocr.Runner
	logger *slog.Logger
}

func NewExtractor(cfg common.OCRConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	stack := ocr.NewStack(logger,
		ocr.NewTesseract(cfg.Tesseract, cfg.TesseractLang, cfg.TessdataDir, cfg.PSM, cfg.OEM, logger),
		ocr.NewEasyOCR(cfg.EasyOCR, shortLang(cfg.TesseractLang), logger),
	)
	return &Extractor{cfg: cfg, stack: stack, runner: ocr.ExecRunner(), logger: logger}
}

// NewExtractorWithDeps builds an extractor with injected OCR stack and runner,
// used by tests to substitute fakes.
func NewExtractorWithDeps(cfg common.OCRConfig, stack *ocr.Stack, runner ocr.Runner, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, stack: stack, runner: runner, logger: logger}
}

func shortLang(tessLang string) string {
	// tesseract uses ISO 639-2 ("eng"), easyocr ISO 639-1 ("en")
	if len(tessLang) >= 2 {
		return tessLang[:2]
	}
	return "en"
}

// Extract picks a strategy based on file extension and returns normalized text.
// Failure is always typed: UnsupportedFormat, OCRUnavailable, or NoExtractableText.
func (e *Extractor) Extract(ctx context.Context, path string) (entity.ExtractedText, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	format := constants.MapExtToFormat(ext)
	e.logger.Debug("starting text acquisition", "path", path, "ext", ext, "format", format)

	switch format {
	case constants.PDF:
		return e.extractPDF(ctx, path)
	case constants.DOCX:
		return e.extractDOCX(ctx, path)
	case constants.DOC:
		return e.extractDOC(ctx, path)
	case constants.IMAGE:
		return e.extractImage(ctx, path)
	default:
		return entity.ExtractedText{}, common.UnsupportedFormatError("." + ext)
	}
}

// finish normalizes the collected text and converts empty output into the
// typed terminal failure: success never carries an empty string.
func (e *Extractor) finish(path, text, source, format string, pages int) (entity.ExtractedText, error) {
	text = ocr.Normalize(text)
	if strings.TrimSpace(text) == "" {
		return entity.ExtractedText{}, common.NoExtractableTextError(path)
	}
	return entity.ExtractedText{
		Text:   text,
		Chars:  len(text),
		Source: source,
		Pages:  pages,
		Format: format,
	}, nil
}
