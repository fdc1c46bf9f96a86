package textutil

import (
	"strings"
	"unicode/utf8"
)

// BreakIntoParagraphs reformats text for channels with per-message length
// caps (e.g. WhatsApp). Existing paragraph breaks are preserved; paragraphs
// longer than maxLength are split at line boundaries only.
func BreakIntoParagraphs(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = 1000
	}

	var result []string

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len(para) <= maxLength {
			result = append(result, para)
			continue
		}

		var current string
		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if len(current)+len(line)+1 > maxLength {
				if current != "" {
					result = append(result, current)
				}
				current = line
			} else if current != "" {
				current += "\n" + line
			} else {
				current = line
			}
		}
		if current != "" {
			result = append(result, current)
		}
	}

	return strings.Join(result, "\n\n")
}

// Truncate caps text at maxLength bytes without splitting a rune.
func Truncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	cut := maxLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// SplitChunks splits document text into roughly chunkSize-character pieces,
// preferring paragraph boundaries so embeddings stay semantically coherent.
func SplitChunks(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = 1200
	}

	var chunks []string
	var current strings.Builder

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if current.Len() > 0 && current.Len()+len(para)+2 > chunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}

		// A single paragraph larger than the chunk size gets hard-split.
		for len(para) > chunkSize {
			chunks = append(chunks, para[:chunkSize])
			para = para[chunkSize:]
		}

		if para == "" {
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
