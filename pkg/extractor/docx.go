package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"proposal-eval-be/internal/pkg/apperrors"
)

// A .docx is a zip archive; the document body lives in word/document.xml.
// We walk the XML and collect text runs, emitting a newline per paragraph.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindExtraction, "open docx archive", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", apperrors.New(apperrors.KindExtraction, "docx has no word/document.xml")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindExtraction, "open docx document body", err)
	}
	defer rc.Close()

	text, err := readDocumentXML(rc)
	if err != nil {
		return "", err
	}

	result := strings.TrimSpace(text)
	if result == "" {
		return "", apperrors.New(apperrors.KindExtraction, "docx contains no extractable text")
	}
	return result, nil
}

func readDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", apperrors.Wrap(apperrors.KindExtraction, "parse docx xml", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	return sb.String(), nil
}
