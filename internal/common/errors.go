package common

import (
	"errors"
	"fmt"
	"strings"

	"hiredocs/constants"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Acquisition-layer error taxonomy. These abort the whole document; everything
// downstream degrades per field instead of returning an error.
var (
	// ErrUnsupportedFormat: the extension is not in the supported set. Fatal, no partial result.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoExtractableText: acquisition ran but produced nothing. Distinct from OCR being missing.
	ErrNoExtractableText = errors.New("no text extracted from the document")
	// ErrOCRUnavailable: the OCR engine is not installed or reachable. Carries a remediation hint.
	ErrOCRUnavailable = errors.New("OCR engine not available")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// UnsupportedFormatError names the offending extension and the supported set.
func UnsupportedFormatError(ext string) *AppError {
	return &AppError{
		Code: "UNSUPPORTED_FORMAT",
		Message: fmt.Sprintf("unsupported file format: %s. Supported formats: %s",
			ext, strings.Join(constants.SupportedExtList(), ", ")),
		Cause: ErrUnsupportedFormat,
	}
}

// NoExtractableTextError marks a document that yielded no text at all.
func NoExtractableTextError(path string) *AppError {
	return &AppError{
		Code:    "NO_EXTRACTABLE_TEXT",
		Message: fmt.Sprintf("could not extract text from %s", path),
		Cause:   ErrNoExtractableText,
	}
}

// OCRUnavailableError marks a document that needs OCR while no engine is installed.
func OCRUnavailableError(path string) *AppError {
	return &AppError{
		Code:    "OCR_UNAVAILABLE",
		Message: fmt.Sprintf("could not extract text from %s - OCR not available for scanned documents", path),
		Cause:   ErrOCRUnavailable,
	}
}

// RequiresOCR reports whether err means the document is scanned and an OCR engine is missing.
func RequiresOCR(err error) bool {
	return errors.Is(err, ErrOCRUnavailable)
}
