package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBreakIntoParagraphs(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      string
	}{
		{
			name:      "empty",
			text:      "",
			maxLength: 100,
			want:      "",
		},
		{
			name:      "short paragraph unchanged",
			text:      "Hello there.",
			maxLength: 100,
			want:      "Hello there.",
		},
		{
			name:      "preserves existing breaks",
			text:      "First block.\n\nSecond block.",
			maxLength: 100,
			want:      "First block.\n\nSecond block.",
		},
		{
			name:      "splits long paragraph at line boundaries",
			text:      "line one is here\nline two is here\nline three is here",
			maxLength: 20,
			want:      "line one is here\n\nline two is here\n\nline three is here",
		},
		{
			name:      "trims blank lines",
			text:      "  padded  \n\n\n\nnext  ",
			maxLength: 100,
			want:      "padded\n\nnext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BreakIntoParagraphs(tt.text, tt.maxLength); got != tt.want {
				t.Errorf("BreakIntoParagraphs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 4); got != "abcd" {
		t.Errorf("Truncate() = %q, want %q", got, "abcd")
	}
	if got := Truncate("abc", 10); got != "abc" {
		t.Errorf("Truncate() should leave short text alone, got %q", got)
	}

	t.Run("never splits a rune", func(t *testing.T) {
		text := strings.Repeat("a", 9999) + "é"
		got := Truncate(text, 10000)
		if !utf8.ValidString(got) {
			t.Errorf("Truncate() produced invalid UTF-8 tail %q", got[len(got)-2:])
		}
		if got != strings.Repeat("a", 9999) {
			t.Errorf("Truncate() length = %d, want the multi-byte rune dropped whole", len(got))
		}

		multi := strings.Repeat("é", 6)
		got = Truncate(multi, 7)
		if !utf8.ValidString(got) {
			t.Errorf("Truncate() produced invalid UTF-8: %q", got)
		}
		if got != strings.Repeat("é", 3) {
			t.Errorf("Truncate() = %q, want three runes", got)
		}
	})
}

func TestSplitChunks(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := SplitChunks("one paragraph only", 1200)
		if len(chunks) != 1 || chunks[0] != "one paragraph only" {
			t.Errorf("unexpected chunks: %v", chunks)
		}
	})

	t.Run("paragraphs grouped under limit", func(t *testing.T) {
		text := "aaaa\n\nbbbb\n\ncccc"
		chunks := SplitChunks(text, 11)
		if len(chunks) != 2 {
			t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
		}
		if chunks[0] != "aaaa\n\nbbbb" {
			t.Errorf("first chunk = %q", chunks[0])
		}
		if chunks[1] != "cccc" {
			t.Errorf("second chunk = %q", chunks[1])
		}
	})

	t.Run("oversized paragraph hard split", func(t *testing.T) {
		text := strings.Repeat("x", 25)
		chunks := SplitChunks(text, 10)
		if len(chunks) != 3 {
			t.Fatalf("expected 3 chunks, got %d", len(chunks))
		}
		for i, c := range chunks[:2] {
			if len(c) != 10 {
				t.Errorf("chunk %d length = %d, want 10", i, len(c))
			}
		}
		if len(chunks[2]) != 5 {
			t.Errorf("tail chunk length = %d, want 5", len(chunks[2]))
		}
	})
}
