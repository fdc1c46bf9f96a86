// Package extractor turns uploaded document bytes into plain text for
// evaluation and knowledge ingestion.
package extractor

import (
	"path/filepath"
	"strings"

	"proposal-eval-be/internal/pkg/apperrors"
)

// Extract dispatches on the file extension. Unknown extensions are treated
// as plain text so pasted .txt/.md exports still work.
func Extract(data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", apperrors.New(apperrors.KindExtraction, "empty file")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return extractPlainText(data)
	}
}

func extractPlainText(data []byte) (string, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", apperrors.New(apperrors.KindExtraction, "document contains no text")
	}
	return text, nil
}
