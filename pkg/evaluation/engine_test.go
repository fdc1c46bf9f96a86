package evaluation

import (
	"context"
	"strings"
	"testing"

	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/llm"
)

type fakeProvider struct {
	responses map[string]string // keyed by a substring of the prompt
	failOn    string
	calls     []string
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls = append(f.calls, prompt)
	if f.failOn != "" && strings.Contains(prompt, f.failOn) {
		return "", apperrors.New(apperrors.KindCompletion, "simulated failure")
	}
	for key, resp := range f.responses {
		if strings.Contains(prompt, key) {
			return resp, nil
		}
	}
	return "generic response", nil
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", apperrors.New(apperrors.KindCompletion, "empty history")
	}
	return f.Generate(ctx, history[len(history)-1].Content, opts...)
}

type memoryStore struct {
	sessions  map[string]NewSession
	results   map[string]*Result
	followups []Followup
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		sessions: map[string]NewSession{},
		results:  map[string]*Result{},
	}
}

func (m *memoryStore) CreateSession(ctx context.Context, s NewSession) error {
	m.sessions[s.SessionID] = s
	return nil
}

func (m *memoryStore) SaveResults(ctx context.Context, r *Result) error {
	m.results[r.SessionID] = r
	return nil
}

func (m *memoryStore) GetSession(ctx context.Context, sessionID string) (*SessionRecord, error) {
	r, ok := m.results[sessionID]
	if !ok {
		return nil, nil
	}
	return &SessionRecord{
		SessionID: sessionID,
		UserID:    r.UserID,
		Internal:  &r.Internal,
		External:  &r.External,
		Delta:     &r.Delta,
	}, nil
}

func (m *memoryStore) SaveFollowup(ctx context.Context, f Followup) error {
	m.followups = append(m.followups, f)
	return nil
}

type staticGuidelines struct{ text string }

func (g staticGuidelines) GuidelinesText(ctx context.Context, organizationID, guidelineID string) (string, error) {
	return g.text, nil
}

func analysisResponse(score string) string {
	return `**SCORE**: ` + score + `

**STRENGTHS**:
- strength one

**GAPS**:
- gap one

**RECOMMENDATIONS**:
- recommendation one

**DETAILED ANALYSIS**:
Narrative analysis body.`
}

func newTestEngine(provider llm.LLMProvider, store SessionStore) *Engine {
	return NewEngine(provider, store, staticGuidelines{}, logger.NewNoopLogger())
}

func TestEvaluateFullPipeline(t *testing.T) {
	provider := &fakeProvider{responses: map[string]string{
		"comprehensive summary of the provided proposal": "proposal summary",
		"comprehensive summary of the provided ToR":      "tor summary",
		"INTERNAL CONSISTENCY":                           analysisResponse("80"),
		"ALIGNMENT of a proposal":                        analysisResponse("70"),
		"GAP ANALYSIS":                                   analysisResponse("90"),
	}}
	store := newMemoryStore()
	engine := newTestEngine(provider, store)

	result, err := engine.Evaluate(context.Background(), Request{
		UserID:   "user-1",
		Proposal: DocumentInput{Text: "proposal body"},
		ToR:      DocumentInput{Text: "tor body"},
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if result.SessionID == "" {
		t.Error("session id should be generated")
	}
	if result.Internal.SectionType != SectionInternal {
		t.Errorf("internal section type = %v", result.Internal.SectionType)
	}
	if result.OverallScore == nil || *result.OverallScore != 80 {
		t.Errorf("overall score = %v, want 80 (mean of 80, 70, 90)", result.OverallScore)
	}
	if result.ProcessingSeconds < 0 {
		t.Errorf("processing time = %v", result.ProcessingSeconds)
	}

	if _, ok := store.sessions[result.SessionID]; !ok {
		t.Error("session should be persisted before analysis")
	}
	if _, ok := store.results[result.SessionID]; !ok {
		t.Error("results should be persisted")
	}
}

func TestEvaluateKeepsProvidedSessionID(t *testing.T) {
	provider := &fakeProvider{responses: map[string]string{}}
	store := newMemoryStore()
	engine := newTestEngine(provider, store)

	result, err := engine.Evaluate(context.Background(), Request{
		UserID:    "user-1",
		SessionID: "fixed-session",
		Proposal:  DocumentInput{Text: "p"},
		ToR:       DocumentInput{Text: "t"},
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.SessionID != "fixed-session" {
		t.Errorf("session id = %q", result.SessionID)
	}
}

func TestEvaluateInputValidation(t *testing.T) {
	engine := newTestEngine(&fakeProvider{}, newMemoryStore())

	tests := []struct {
		name string
		req  Request
	}{
		{"no proposal input", Request{UserID: "u", ToR: DocumentInput{Text: "t"}}},
		{"both proposal inputs", Request{
			UserID:   "u",
			Proposal: DocumentInput{Text: "p", FileData: []byte("x")},
			ToR:      DocumentInput{Text: "t"},
		}},
		{"no tor input", Request{UserID: "u", Proposal: DocumentInput{Text: "p"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Evaluate(context.Background(), tt.req)
			if !apperrors.IsKind(err, apperrors.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestEvaluateSummaryFallback(t *testing.T) {
	// Summary calls fail; analysis calls succeed. The pipeline must
	// continue with truncated source text as the summary.
	provider := &fakeProvider{
		failOn: "comprehensive summary",
		responses: map[string]string{
			"INTERNAL CONSISTENCY":    analysisResponse("60"),
			"ALIGNMENT of a proposal": analysisResponse("60"),
			"GAP ANALYSIS":            analysisResponse("60"),
		},
	}
	store := newMemoryStore()
	engine := newTestEngine(provider, store)

	longProposal := strings.Repeat("p", 3000)
	result, err := engine.Evaluate(context.Background(), Request{
		UserID:   "user-1",
		Proposal: DocumentInput{Text: longProposal},
		ToR:      DocumentInput{Text: "tor body"},
	})
	if err != nil {
		t.Fatalf("Evaluate() should survive summary failures, got %v", err)
	}
	if result.OverallScore == nil || *result.OverallScore != 60 {
		t.Errorf("overall score = %v", result.OverallScore)
	}

	// The internal analysis prompt should carry the truncated proposal.
	found := false
	for _, call := range provider.calls {
		if strings.Contains(call, "INTERNAL CONSISTENCY") &&
			strings.Contains(call, strings.Repeat("p", 2000)) &&
			!strings.Contains(call, strings.Repeat("p", 2001)) {
			found = true
		}
	}
	if !found {
		t.Error("analysis prompt should use the 2000-char fallback summary")
	}
}

func TestEvaluateAnalysisFailurePropagates(t *testing.T) {
	provider := &fakeProvider{
		failOn: "INTERNAL CONSISTENCY",
		responses: map[string]string{
			"comprehensive summary of the provided proposal": "ps",
			"comprehensive summary of the provided ToR":      "ts",
		},
	}
	store := newMemoryStore()
	engine := newTestEngine(provider, store)

	_, err := engine.Evaluate(context.Background(), Request{
		UserID:   "u",
		Proposal: DocumentInput{Text: "p"},
		ToR:      DocumentInput{Text: "t"},
	})
	if !apperrors.IsKind(err, apperrors.KindCompletion) {
		t.Errorf("expected completion error, got %v", err)
	}
	// A failed fork must leave no completed results behind.
	if len(store.results) != 0 {
		t.Errorf("results saved after analysis failure: %d", len(store.results))
	}
}

func TestEvaluateNoScoresYieldsNilOverall(t *testing.T) {
	provider := &fakeProvider{responses: map[string]string{}} // free prose, no scores
	store := newMemoryStore()
	engine := newTestEngine(provider, store)

	result, err := engine.Evaluate(context.Background(), Request{
		UserID:   "u",
		Proposal: DocumentInput{Text: "p"},
		ToR:      DocumentInput{Text: "t"},
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.OverallScore != nil {
		t.Errorf("overall score = %v, want nil when no section scored", result.OverallScore)
	}
}

func TestAnswerFollowup(t *testing.T) {
	provider := &fakeProvider{responses: map[string]string{
		"follow-up question": "the budget gap means funding is underspecified",
	}}
	store := newMemoryStore()
	store.results["sess-1"] = &Result{
		SessionID: "sess-1",
		UserID:    "user-1",
		Internal:  Section{Content: "internal content"},
		External:  Section{Content: "external content"},
		Delta:     Section{Content: "delta content"},
	}
	engine := newTestEngine(provider, store)

	followup, err := engine.AnswerFollowup(context.Background(), FollowupRequest{
		UserID:    "user-1",
		SessionID: "sess-1",
		Query:     "what about the budget?",
		Section:   "P_Delta",
	})
	if err != nil {
		t.Fatalf("AnswerFollowup() error = %v", err)
	}
	if followup.Answer != "the budget gap means funding is underspecified" {
		t.Errorf("answer = %q", followup.Answer)
	}
	if len(store.followups) != 1 {
		t.Fatalf("followup should be persisted, got %d", len(store.followups))
	}

	// The prompt must include excerpts from all three sections.
	last := provider.calls[len(provider.calls)-1]
	for _, want := range []string{"internal content", "external content", "delta content", "what about the budget?"} {
		if !strings.Contains(last, want) {
			t.Errorf("followup prompt missing %q", want)
		}
	}
}

func TestAnswerFollowupUnknownSession(t *testing.T) {
	engine := newTestEngine(&fakeProvider{}, newMemoryStore())

	_, err := engine.AnswerFollowup(context.Background(), FollowupRequest{
		UserID:    "u",
		SessionID: "missing",
		Query:     "q",
	})
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
