package constants

import (
	"sort"
	"strings"
)

// Formats holds the canonical source formats for the format field in a processing run.
var Formats = []string{"PDF", "DOCX", "DOC", "IMAGE"}

const (
	PDF   = "PDF"
	DOCX  = "DOCX"
	DOC   = "DOC"
	IMAGE = "IMAGE"
)

// AllowedExtensions holds the file extensions the acquisition layer accepts.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"doc":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"tiff": {},
	"bmp":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its canonical format,
// or "" when the extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	case "doc":
		return DOC
	case "png", "jpg", "jpeg", "tiff", "bmp":
		return IMAGE
	default:
		return ""
	}
}

// SupportedExtList returns the allowed extensions sorted, for error messages.
func SupportedExtList() []string {
	out := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		out = append(out, "."+ext)
	}
	sort.Strings(out)
	return out
}
