package history

import "testing"

func TestTranscript(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi, how can I help?"},
		{Role: "system", Content: "should be skipped"},
		{Role: RoleUser, Content: "what is an RCT?"},
	}

	got := Transcript(messages)
	want := "User: hello\n\nAssistant: hi, how can I help?\n\nUser: what is an RCT?"
	if got != want {
		t.Errorf("Transcript() = %q, want %q", got, want)
	}
}

func TestTranscriptEmpty(t *testing.T) {
	if got := Transcript(nil); got != "" {
		t.Errorf("Transcript(nil) = %q", got)
	}
}

func TestTail(t *testing.T) {
	messages := make([]Message, 0, 15)
	for i := 0; i < 15; i++ {
		messages = append(messages, Message{Role: RoleUser, Content: string(rune('a' + i))})
	}

	tail := Tail(messages, DefaultLimit)
	if len(tail) != DefaultLimit {
		t.Fatalf("len = %d, want %d", len(tail), DefaultLimit)
	}
	if tail[0].Content != "f" {
		t.Errorf("tail should start at the 6th message, got %q", tail[0].Content)
	}

	short := []Message{{Role: RoleUser, Content: "only"}}
	if got := Tail(short, DefaultLimit); len(got) != 1 {
		t.Errorf("short histories pass through, got %d", len(got))
	}
}
