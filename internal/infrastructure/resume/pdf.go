// Package resume extracts plain text from uploaded resume documents.
package resume

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText extracts the plain text of a PDF resume.
func ExtractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// ExtractText returns resume text from an upload, dispatching on the
// declared content type. Plain text uploads pass through unchanged.
func ExtractText(data []byte, contentType string) (string, error) {
	switch {
	case strings.Contains(contentType, "pdf"):
		return ExtractPDFText(data)
	default:
		return strings.TrimSpace(string(data)), nil
	}
}
