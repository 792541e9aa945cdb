package acquire

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"hiredocs/constants"
	"hiredocs/internal/common"
	"hiredocs/internal/entity"
)

// extractPDF walks the document page by page: direct text where the page has
// a text layer, OCR fallback for any page that comes back empty. Pages are
// concatenated in order with newline separators.
func (e *Extractor) extractPDF(ctx context.Context, path string) (entity.ExtractedText, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return entity.ExtractedText{}, common.WrapError(err, "open pdf")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("failed to close pdf", "path", path, "error", cerr)
		}
	}()

	total := reader.NumPage()
	if e.cfg.MaxPages > 0 && total > e.cfg.MaxPages {
		total = e.cfg.MaxPages
	}

	var b strings.Builder
	directPages, ocrPages := 0, 0
	var ocrErr error

	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		var pageText string
		if !page.V.IsNull() {
			if txt, err := page.GetPlainText(nil); err == nil {
				pageText = txt
			} else {
				e.logger.Debug("direct page extraction failed", "path", path, "page", i, "error", err)
			}
		}

		if strings.TrimSpace(pageText) != "" {
			directPages++
		} else {
			// no text layer on this page, render it and OCR
			txt, err := e.ocrPDFPage(ctx, path, i)
			if err != nil {
				if common.RequiresOCR(err) {
					ocrErr = err
					continue
				}
				e.logger.Warn("page ocr failed", "path", path, "page", i, "error", err)
				continue
			}
			pageText = txt
			if strings.TrimSpace(pageText) != "" {
				ocrPages++
			}
		}
		if strings.TrimSpace(pageText) != "" {
			b.WriteString(pageText)
			b.WriteString("\n")
		}
	}

	source := entity.SourceDirect
	switch {
	case directPages > 0 && ocrPages > 0:
		source = entity.SourceMixed
	case ocrPages > 0:
		source = entity.SourceOCR
	}

	res, err := e.finish(path, b.String(), source, constants.PDF, total)
	if err != nil && ocrErr != nil {
		// nothing extractable and the OCR engines were missing: tell the caller
		// this looks like a scanned document, not an empty one
		return entity.ExtractedText{}, ocrErr
	}
	return res, err
}

// ocrPDFPage renders a single page to PNG with pdftoppm and runs the OCR stack.
func (e *Extractor) ocrPDFPage(ctx context.Context, path string, page int) (string, error) {
	if !e.stack.Available(ctx) {
		return "", common.OCRUnavailableError(path)
	}

	tmpDir, err := os.MkdirTemp("", "hd-pp-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f N -l N -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-f", fmt.Sprintf("%d", page), "-l", fmt.Sprintf("%d", page),
		"-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	matches, _ := filepath.Glob(prefix + "*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", fmt.Errorf("pdftoppm produced no image for page %d", page)
	}
	return e.stack.ImageToText(ctx, matches[0])
}
