// Package extract turns uploaded document bytes into plain text for the
// grading pipeline. Rich formats (PDF, Word, scanned images) are the job of
// an external extraction service; this package handles what can be decoded
// in-process and names the contract for the rest.
package extract

import (
	"errors"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedType is returned for content types that need the external
// extraction service.
var ErrUnsupportedType = errors.New("extract: unsupported content type")

// Extractor produces plain text from raw file bytes and a declared
// content type.
type Extractor interface {
	ExtractText(data []byte, contentType string) (string, error)
}

// PlainText extracts text from plain-text-family uploads. Everything else
// returns ErrUnsupportedType so callers can route to the external service.
type PlainText struct{}

var _ Extractor = (*PlainText)(nil)

func NewPlainText() *PlainText {
	return &PlainText{}
}

func (PlainText) ExtractText(data []byte, contentType string) (string, error) {
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	switch mediaType {
	case "text/plain", "text/markdown", "text/csv":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("extract: %s upload is not valid UTF-8", mediaType)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mediaType)
}
