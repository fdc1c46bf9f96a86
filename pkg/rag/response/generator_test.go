package response

import (
	"context"
	"errors"
	"strings"
	"testing"

	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/llm"
)

type stubProvider struct {
	response  string
	err       error
	lastOpts  llm.Options
	gotPrompt string
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.gotPrompt = prompt
	s.lastOpts = llm.Options{}
	for _, opt := range opts {
		opt(&s.lastOpts)
	}
	return s.response, s.err
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func TestGenerateWithinKnowledgeBase(t *testing.T) {
	provider := &stubProvider{response: "According to Source A, impact evaluation measures causal effects."}
	g := NewGenerator(provider, logger.NewNoopLogger())

	answer, withinKB, _ := g.Generate(context.Background(), "what is impact evaluation?", "", "Source A says impact evaluation measures causal effects.", "", "")
	if !withinKB {
		t.Error("answer backed by context should be within the knowledge base")
	}
	if answer != provider.response {
		t.Errorf("answer = %q", answer)
	}
	if !strings.Contains(provider.gotPrompt, "Source A says") {
		t.Error("prompt should embed the retrieved context")
	}
}

func TestGenerateKnowledgeBaseMissMarkers(t *testing.T) {
	tests := []string{
		"I don't have that information in my sources.",
		"That topic is not in my knowledge base.",
		"I cannot find anything about that.",
		"There is no relevant information available.",
	}

	for _, response := range tests {
		t.Run(response, func(t *testing.T) {
			g := NewGenerator(&stubProvider{response: response}, logger.NewNoopLogger())
			_, withinKB, _ := g.Generate(context.Background(), "q", "", "some context", "", "")
			if withinKB {
				t.Error("miss markers must flip within_knowledge_base to false")
			}
		})
	}
}

func TestGenerateNoContext(t *testing.T) {
	provider := &stubProvider{response: "General answer."}
	g := NewGenerator(provider, logger.NewNoopLogger())

	_, withinKB, _ := g.Generate(context.Background(), "q", "", "", "", "")
	if withinKB {
		t.Error("empty context means the answer is not from the knowledge base")
	}
	if !strings.Contains(provider.gotPrompt, "No relevant context found") {
		t.Error("prompt should carry the empty-context placeholder")
	}
}

func TestGenerateProviderFailureIsFatal(t *testing.T) {
	g := NewGenerator(&stubProvider{err: errors.New("model down")}, logger.NewNoopLogger())

	answer, withinKB, err := g.Generate(context.Background(), "q", "", "ctx", "", "")
	if err == nil {
		t.Fatal("provider failure must surface as an error")
	}
	if apperrors.KindOf(err) != apperrors.KindCompletion {
		t.Errorf("error kind = %v, want KindCompletion", apperrors.KindOf(err))
	}
	if answer != "" {
		t.Errorf("answer = %q, want empty on failure", answer)
	}
	if withinKB {
		t.Error("failed generation is never within the knowledge base")
	}
}

func TestGenerateWhatsAppFormatting(t *testing.T) {
	long := strings.Repeat("line of text here\n", 80)
	provider := &stubProvider{response: long}
	g := NewGenerator(provider, logger.NewNoopLogger())

	answer, _, _ := g.Generate(context.Background(), "q", "", "ctx", "", SourceWhatsApp)
	for _, para := range strings.Split(answer, "\n\n") {
		if len(para) > whatsappMaxLength {
			t.Errorf("paragraph exceeds whatsapp limit: %d chars", len(para))
		}
	}
}

func TestGenerateModelOverride(t *testing.T) {
	provider := &stubProvider{response: "ok"}
	g := NewGenerator(provider, logger.NewNoopLogger())

	g.Generate(context.Background(), "q", "", "ctx", "gpt-4o-mini", "")
	if provider.lastOpts.Model != "gpt-4o-mini" {
		t.Errorf("model option = %q", provider.lastOpts.Model)
	}
}
