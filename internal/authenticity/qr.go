package authenticity

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"hiredocs/internal/entity"
)

// DetectQRCodes renders each page of the PDF and decodes any QR code it can
// find. Pages that fail to render or hold no code are skipped, not fatal.
func (c *Checker) DetectQRCodes(ctx context.Context, path string) ([]entity.QRCode, error) {
	total, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}
	if c.ocrCfg.MaxPages > 0 && total > c.ocrCfg.MaxPages {
		total = c.ocrCfg.MaxPages
	}

	var codes []entity.QRCode
	for page := 1; page <= total; page++ {
		img, err := c.renderPage(ctx, path, page)
		if err != nil {
			c.logger.Warn("qr page render failed", "path", path, "page", page, "error", err)
			continue
		}
		for _, code := range decodeQR(img, page) {
			c.logger.Info("qr code detected", "path", path, "page", page, "data", code.Data)
			codes = append(codes, code)
		}
	}
	return codes, nil
}

// renderPage rasterizes a single page to PNG with pdftoppm and decodes it.
func (c *Checker) renderPage(ctx context.Context, path string, page int) (image.Image, error) {
	tmpDir, err := os.MkdirTemp("", "hd-qr-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			c.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := c.runner.Run(ctx, c.ocrCfg.Pdftoppm,
		"-f", fmt.Sprintf("%d", page), "-l", fmt.Sprintf("%d", page),
		"-r", fmt.Sprintf("%d", c.ocrCfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	matches, _ := filepath.Glob(prefix + "*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no image for page %d", page)
	}

	f, err := os.Open(matches[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// decodeQR runs the zxing QR reader over one page image. A page without a
// code is the normal case and returns nil.
func decodeQR(img image.Image, page int) []entity.QRCode {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return nil
	}
	return []entity.QRCode{{
		Type: result.GetBarcodeFormat().String(),
		Data: result.GetText(),
		Page: page,
	}}
}
