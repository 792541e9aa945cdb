package acquire

import (
	"context"

	"hiredocs/constants"
	"hiredocs/internal/entity"
)

// extractImage runs the OCR stack directly over a raster file.
func (e *Extractor) extractImage(ctx context.Context, path string) (entity.ExtractedText, error) {
	txt, err := e.stack.ImageToText(ctx, path)
	if err != nil {
		return entity.ExtractedText{}, err
	}
	return e.finish(path, txt, entity.SourceOCR, constants.IMAGE, 1)
}
