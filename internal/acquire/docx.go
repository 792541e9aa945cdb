package acquire

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"hiredocs/constants"
	"hiredocs/internal/common"
	"hiredocs/internal/entity"
)

// extractDOCX reads word/document.xml out of the package: body paragraphs in
// document order, then table rows appended as pipe-joined cell text.
func (e *Extractor) extractDOCX(ctx context.Context, path string) (entity.ExtractedText, error) {
	text, err := readDOCX(path)
	if err != nil {
		return entity.ExtractedText{}, common.WrapError(err, "read docx")
	}
	return e.finish(path, text, entity.SourceDirect, constants.DOCX, 1)
}

// extractDOC handles legacy .doc input: some files are mislabeled DOCX
// packages and open fine; genuine OLE binaries fall through to OCR, which
// mirrors how scanned exports of old documents usually arrive.
func (e *Extractor) extractDOC(ctx context.Context, path string) (entity.ExtractedText, error) {
	if text, err := readDOCX(path); err == nil {
		return e.finish(path, text, entity.SourceDirect, constants.DOC, 1)
	}
	e.logger.Debug("doc is not a docx package, falling back to ocr", "path", path)
	txt, err := e.stack.ImageToText(ctx, path)
	if err != nil {
		return entity.ExtractedText{}, err
	}
	return e.finish(path, txt, entity.SourceOCR, constants.DOC, 1)
}

func readDOCX(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var doc io.ReadCloser
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("no word/document.xml in %s", path)
	}
	defer doc.Close()

	return parseDocumentXML(doc)
}

// parseDocumentXML walks the WordprocessingML token stream. Paragraphs outside
// tables come first; table rows are collected separately and appended after,
// one row per line with " | " between cells.
func parseDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var tableRows []string

	var para strings.Builder
	var cell strings.Builder
	var row []string

	tblDepth := 0
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
			case "p":
				if tblDepth == 0 {
					para.Reset()
				}
			case "tr":
				if tblDepth > 0 {
					row = row[:0]
				}
			case "tc":
				if tblDepth > 0 {
					cell.Reset()
				}
			case "t":
				inText = true
			case "br", "cr":
				if tblDepth > 0 {
					cell.WriteString(" ")
				} else {
					para.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth--
			case "p":
				if tblDepth == 0 {
					if s := strings.TrimSpace(para.String()); s != "" {
						paragraphs = append(paragraphs, s)
					}
				} else {
					cell.WriteString(" ")
				}
			case "tr":
				if tblDepth > 0 {
					var cells []string
					for _, c := range row {
						if c != "" {
							cells = append(cells, c)
						}
					}
					if len(cells) > 0 {
						tableRows = append(tableRows, strings.Join(cells, " | "))
					}
				}
			case "tc":
				if tblDepth > 0 {
					row = append(row, strings.TrimSpace(cell.String()))
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				if tblDepth > 0 {
					cell.Write(t)
				} else {
					para.Write(t)
				}
			}
		}
	}

	out := strings.Join(paragraphs, "\n")
	if len(tableRows) > 0 {
		if out != "" {
			out += "\n"
		}
		out += strings.Join(tableRows, "\n")
	}
	return out, nil
}
