package extractor

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"proposal-eval-be/internal/pkg/apperrors"
)

func TestExtractPlainText(t *testing.T) {
	got, err := Extract([]byte("  hello world  \n"), "notes.txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("Extract() = %q, want %q", got, "hello world")
	}
}

func TestExtractEmptyFile(t *testing.T) {
	_, err := Extract(nil, "anything.txt")
	if !apperrors.IsKind(err, apperrors.KindExtraction) {
		t.Errorf("expected extraction error, got %v", err)
	}
}

func TestExtractUnknownExtensionFallsBackToText(t *testing.T) {
	got, err := Extract([]byte("markdown body"), "readme.md")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "markdown body" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractDOCX(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	data := buildDocx(t, docXML)
	got, err := Extract(data, "proposal.docx")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(got, "First paragraph.") {
		t.Errorf("missing first paragraph in %q", got)
	}
	if !strings.Contains(got, "Second paragraph.") {
		t.Errorf("runs within a paragraph should join, got %q", got)
	}
	if !strings.Contains(got, "First paragraph.\nSecond paragraph.") {
		t.Errorf("paragraphs should be newline separated, got %q", got)
	}
}

func TestExtractDOCXNotAnArchive(t *testing.T) {
	_, err := Extract([]byte("plain text pretending"), "fake.docx")
	if !apperrors.IsKind(err, apperrors.KindExtraction) {
		t.Errorf("expected extraction error, got %v", err)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	_, err := Extract([]byte("%PDF-1.4 garbage"), "broken.pdf")
	if !apperrors.IsKind(err, apperrors.KindExtraction) {
		t.Errorf("expected extraction error, got %v", err)
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
