package refine

import (
	"context"
	"errors"
	"testing"

	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/llm"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func TestRefine(t *testing.T) {
	tests := []struct {
		name          string
		response      string
		wantRetrieval bool
		wantQuery     string
	}{
		{
			name:          "retrieval required with refined query",
			response:      "REQUIRES_RETRIEVAL: True\nREFINED_QUERY: impact evaluation methods for cash transfers",
			wantRetrieval: true,
			wantQuery:     "impact evaluation methods for cash transfers",
		},
		{
			name:          "greeting needs no retrieval",
			response:      "REQUIRES_RETRIEVAL: False\nREFINED_QUERY: hello",
			wantRetrieval: false,
			wantQuery:     "hello",
		},
		{
			name:          "case insensitive true",
			response:      "REQUIRES_RETRIEVAL: TRUE\nREFINED_QUERY: something",
			wantRetrieval: true,
			wantQuery:     "something",
		},
		{
			name:          "unlabeled response defaults to retrieval",
			response:      "Sure! That question is about impact bonds.",
			wantRetrieval: true,
			wantQuery:     "original question",
		},
		{
			name:          "unparsable label value defaults to false only when labeled",
			response:      "REQUIRES_RETRIEVAL: maybe\nREFINED_QUERY: impact bonds",
			wantRetrieval: false,
			wantQuery:     "impact bonds",
		},
		{
			name:          "empty refined query keeps original",
			response:      "REQUIRES_RETRIEVAL: True\nREFINED_QUERY:",
			wantRetrieval: true,
			wantQuery:     "original question",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRefiner(&stubProvider{response: tt.response}, logger.NewNoopLogger())
			gotRetrieval, gotQuery := r.Refine(context.Background(), "", "original question")
			if gotRetrieval != tt.wantRetrieval {
				t.Errorf("requiresRetrieval = %v, want %v", gotRetrieval, tt.wantRetrieval)
			}
			if gotQuery != tt.wantQuery {
				t.Errorf("refinedQuery = %q, want %q", gotQuery, tt.wantQuery)
			}
		})
	}
}

func TestRefineFailsOpen(t *testing.T) {
	r := NewRefiner(&stubProvider{err: errors.New("model down")}, logger.NewNoopLogger())
	gotRetrieval, gotQuery := r.Refine(context.Background(), "User: hi", "what is an RCT?")
	if !gotRetrieval {
		t.Error("refiner must default to retrieval on failure")
	}
	if gotQuery != "what is an RCT?" {
		t.Errorf("refinedQuery = %q, want the original question", gotQuery)
	}
}
