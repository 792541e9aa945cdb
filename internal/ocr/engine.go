package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"hiredocs/internal/common"
)

// Engine turns one raster image into text. Implementations wrap external
// OCR binaries; Available is probed at most once per process lifetime.
type Engine interface {
	Name() string
	Available(ctx context.Context) bool
	ImageToText(ctx context.Context, path string) (string, error)
}

// Stack tries engines in order: the primary first, then fallbacks when the
// primary yields empty output. It distinguishes "no engine installed" from
// "engines ran but found nothing".
type Stack struct {
	engines []Engine
	logger  *slog.Logger
}

func NewStack(logger *slog.Logger, engines ...Engine) *Stack {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stack{engines: engines, logger: logger}
}

// Available reports whether at least one engine is usable.
func (s *Stack) Available(ctx context.Context) bool {
	for _, e := range s.engines {
		if e.Available(ctx) {
			return true
		}
	}
	return false
}

// ImageToText runs the engine cascade over one image. An empty string with a
// nil error means every engine ran and found no text.
func (s *Stack) ImageToText(ctx context.Context, path string) (string, error) {
	anyAvailable := false
	for _, e := range s.engines {
		if !e.Available(ctx) {
			continue
		}
		anyAvailable = true
		txt, err := e.ImageToText(ctx, path)
		if err != nil {
			s.logger.Warn("ocr engine failed", "engine", e.Name(), "path", path, "error", err)
			continue
		}
		if strings.TrimSpace(txt) != "" {
			return txt, nil
		}
		s.logger.Debug("ocr engine produced no text, trying next", "engine", e.Name(), "path", path)
	}
	if !anyAvailable {
		return "", common.OCRUnavailableError(path)
	}
	return "", nil
}

// availability caches one probe per engine for the process lifetime.
type availability struct {
	once sync.Once
	ok   bool
}

func (a *availability) probe(ctx context.Context, r Runner, logger *slog.Logger, name string, args ...string) bool {
	a.once.Do(func() {
		_, _, err := r.Run(ctx, name, args...)
		a.ok = err == nil
		if !a.ok {
			logger.Warn("ocr engine unavailable", "engine", name, "error", err)
		} else {
			logger.Debug("ocr engine detected", "engine", name)
		}
	})
	return a.ok
}

// Tesseract is the primary OCR engine, driven through the tesseract CLI.
type Tesseract struct {
	Bin         string
	Lang        string
	TessdataDir string
	PSM         int
	OEM         int

	runner Runner
	logger *slog.Logger
	avail  availability
}

func NewTesseract(bin, lang, tessdataDir string, psm, oem int, logger *slog.Logger) *Tesseract {
	if bin == "" {
		bin = "tesseract"
	}
	if lang == "" {
		lang = "eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tesseract{Bin: bin, Lang: lang, TessdataDir: tessdataDir, PSM: psm, OEM: oem, runner: execRunner{}, logger: logger}
}

func (t *Tesseract) Name() string { return "tesseract" }

func (t *Tesseract) Available(ctx context.Context) bool {
	return t.avail.probe(ctx, t.runner, t.logger, t.Bin, "--version")
}

func (t *Tesseract) ImageToText(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", t.Lang}
	if t.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", t.PSM))
	}
	if t.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", t.OEM))
	}
	if t.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.TessdataDir)
	}

	// tesseract <file> stdout -l <lang> --psm 6 --oem 3
	out, errb, err := t.runner.Run(ctx, t.Bin, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

// EasyOCR is the secondary engine, used when tesseract is missing or comes
// back empty on a page.
type EasyOCR struct {
	Bin  string
	Lang string

	runner Runner
	logger *slog.Logger
	avail  availability
}

func NewEasyOCR(bin, lang string, logger *slog.Logger) *EasyOCR {
	if bin == "" {
		bin = "easyocr"
	}
	if lang == "" {
		lang = "en"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EasyOCR{Bin: bin, Lang: lang, runner: execRunner{}, logger: logger}
}

func (e *EasyOCR) Name() string { return "easyocr" }

func (e *EasyOCR) Available(ctx context.Context) bool {
	return e.avail.probe(ctx, e.runner, e.logger, e.Bin, "-h")
}

func (e *EasyOCR) ImageToText(ctx context.Context, path string) (string, error) {
	// easyocr -l en -f <file> --detail 0 --gpu False
	out, errb, err := e.runner.Run(ctx, e.Bin, "-l", e.Lang, "-f", path, "--detail", "0", "--gpu", "False")
	if err != nil {
		return "", fmt.Errorf("easyocr: %w: %s", err, truncate(string(errb), 512))
	}
	return strings.Join(strings.Fields(string(out)), " "), nil
}
