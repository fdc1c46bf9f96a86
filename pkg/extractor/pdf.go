package extractor

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"proposal-eval-be/internal/pkg/apperrors"
)

func extractPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperrors.Newf(apperrors.KindExtraction, "pdf parsing panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindExtraction, "open pdf", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the whole document.
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", apperrors.New(apperrors.KindExtraction, "pdf contains no extractable text")
	}
	return result, nil
}
