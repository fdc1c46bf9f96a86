package evaluation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/extractor"
	"proposal-eval-be/pkg/llm"
	"proposal-eval-be/pkg/textutil"
)

const (
	// Documents are stored truncated for later reference.
	maxStoredDocChars = 10000
	// Fallback summary length when the summarization call fails.
	summaryFallbackChars = 2000
	// How much of the internal/external content feeds the delta analysis.
	insightChars = 500
	// Excerpt length per section when building follow-up context.
	followupExcerptChars = 300

	analysisTimeout = 180 * time.Second

	summaryTemperature  = 0.5
	summaryMaxTokens    = 800
	analysisTemperature = 0.7
	analysisMaxTokens   = 2000
	followupTemperature = 0.7
	followupMaxTokens   = 600
)

// Engine runs the three-part evaluation pipeline against an LLM provider
// and persists sessions through a SessionStore.
type Engine struct {
	provider   llm.LLMProvider
	store      SessionStore
	guidelines GuidelineSource
	log        logger.ILogger
}

func NewEngine(provider llm.LLMProvider, store SessionStore, guidelines GuidelineSource, log logger.ILogger) *Engine {
	return &Engine{
		provider:   provider,
		store:      store,
		guidelines: guidelines,
		log:        log,
	}
}

// Evaluate runs the full pipeline: resolve documents, persist the session,
// summarize, fan out the internal and external analyses, then run the delta
// analysis over their insights.
func (e *Engine) Evaluate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if err := validateInput(req.Proposal, "proposal"); err != nil {
		return nil, err
	}
	if err := validateInput(req.ToR, "tor"); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	e.log.Info("evaluation", "evaluation request received", map[string]interface{}{
		"user_id":          req.UserID,
		"session_id":       sessionID,
		"has_organization": req.OrganizationID != "",
	})

	proposalText, err := resolveDocument(req.Proposal)
	if err != nil {
		return nil, err
	}
	torText, err := resolveDocument(req.ToR)
	if err != nil {
		return nil, err
	}

	err = e.store.CreateSession(ctx, NewSession{
		SessionID:      sessionID,
		UserID:         req.UserID,
		UserName:       req.UserName,
		DocumentType:   req.DocumentType,
		OrganizationID: req.OrganizationID,
		GuidelineID:    req.GuidelineID,
		ProposalText:   textutil.Truncate(proposalText, maxStoredDocChars),
		ToRText:        textutil.Truncate(torText, maxStoredDocChars),
	})
	if err != nil {
		return nil, err
	}

	guidelines := ""
	if req.OrganizationID != "" {
		guidelines, err = e.guidelines.GuidelinesText(ctx, req.OrganizationID, req.GuidelineID)
		if err != nil {
			return nil, err
		}
	}

	proposalSummary := e.summarize(ctx, formatProposalSummaryPrompt(proposalText), proposalText, "proposal")
	torSummary := e.summarize(ctx, formatToRSummaryPrompt(torText), torText, "tor")

	var internal, external Section
	{
		branchCtx, cancel := context.WithTimeout(ctx, analysisTimeout)
		g, gctx := errgroup.WithContext(branchCtx)
		g.Go(func() error {
			s, err := e.runAnalysis(gctx, SectionInternal, proposalSummary, torSummary, guidelines, "", "")
			if err != nil {
				return err
			}
			internal = s
			return nil
		})
		g.Go(func() error {
			s, err := e.runAnalysis(gctx, SectionExternal, proposalSummary, torSummary, guidelines, "", "")
			if err != nil {
				return err
			}
			external = s
			return nil
		})
		err := g.Wait()
		cancel()
		if err != nil {
			return nil, err
		}
	}

	// The delta analysis consumes condensed insights from the first two.
	deltaCtx, cancel := context.WithTimeout(ctx, analysisTimeout)
	delta, err := e.runAnalysis(
		deltaCtx,
		SectionDelta,
		proposalSummary,
		torSummary,
		guidelines,
		textutil.Truncate(internal.Content, insightChars),
		textutil.Truncate(external.Content, insightChars),
	)
	cancel()
	if err != nil {
		return nil, err
	}

	result := &Result{
		SessionID:         sessionID,
		UserID:            req.UserID,
		Internal:          internal,
		External:          external,
		Delta:             delta,
		OverallScore:      meanScore(internal.Score, external.Score, delta.Score),
		ProcessingSeconds: time.Since(start).Seconds(),
	}

	if err := e.store.SaveResults(ctx, result); err != nil {
		return nil, err
	}

	e.log.Info("evaluation", "evaluation complete", map[string]interface{}{
		"session_id":      sessionID,
		"overall_score":   result.OverallScore,
		"processing_time": result.ProcessingSeconds,
	})

	return result, nil
}

// AnswerFollowup answers a question about a stored evaluation using section
// excerpts as context.
func (e *Engine) AnswerFollowup(ctx context.Context, req FollowupRequest) (*Followup, error) {
	session, err := e.store.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.Newf(apperrors.KindNotFound, "session not found: %s", req.SessionID)
	}

	summary := buildEvaluationSummary(session)
	prompt := formatFollowupPrompt(summary, req.Query, req.Section)

	answer, err := e.provider.Generate(ctx, prompt,
		llm.WithTemperature(followupTemperature),
		llm.WithMaxTokens(followupMaxTokens),
	)
	if err != nil {
		return nil, err
	}

	followup := Followup{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		Query:     req.Query,
		Answer:    answer,
		Section:   req.Section,
	}

	if err := e.store.SaveFollowup(ctx, followup); err != nil {
		return nil, err
	}

	e.log.Info("evaluation", "followup answered", map[string]interface{}{
		"session_id": req.SessionID,
	})

	return &followup, nil
}

func validateInput(doc DocumentInput, name string) error {
	hasText := doc.Text != ""
	hasFile := len(doc.FileData) > 0
	if hasText == hasFile {
		return apperrors.Newf(apperrors.KindValidation,
			"exactly one of %s text or %s file must be provided", name, name)
	}
	return nil
}

func resolveDocument(doc DocumentInput) (string, error) {
	if doc.Text != "" {
		return doc.Text, nil
	}
	filename := doc.Filename
	if filename == "" {
		filename = "document.pdf"
	}
	return extractor.Extract(doc.FileData, filename)
}

// summarize asks the model for a summary and falls back to truncated source
// text when the call fails. Summaries are best-effort.
func (e *Engine) summarize(ctx context.Context, prompt, sourceText, doc string) string {
	summary, err := e.provider.Generate(ctx, prompt,
		llm.WithTemperature(summaryTemperature),
		llm.WithMaxTokens(summaryMaxTokens),
	)
	if err != nil {
		e.log.Warn("evaluation", "summarization failed, using truncated text", map[string]interface{}{
			"document": doc,
			"error":    err.Error(),
		})
		return textutil.Truncate(sourceText, summaryFallbackChars)
	}
	return summary
}

func (e *Engine) runAnalysis(
	ctx context.Context,
	sectionType SectionType,
	proposalSummary, torSummary, guidelines, internalInsights, externalInsights string,
) (Section, error) {
	var prompt string
	switch sectionType {
	case SectionInternal:
		prompt = formatInternalPrompt(proposalSummary, guidelines)
	case SectionExternal:
		prompt = formatExternalPrompt(proposalSummary, torSummary, guidelines)
	case SectionDelta:
		prompt = formatDeltaPrompt(proposalSummary, torSummary, internalInsights, externalInsights)
	default:
		return Section{}, apperrors.Newf(apperrors.KindInternal, "unknown analysis type: %s", sectionType)
	}

	response, err := e.provider.Generate(ctx, prompt,
		llm.WithTemperature(analysisTemperature),
		llm.WithMaxTokens(analysisMaxTokens),
	)
	if err != nil {
		return Section{}, err
	}

	section := ParseAnalysis(response, sectionType)

	e.log.Info("evaluation", "analysis complete", map[string]interface{}{
		"section": string(sectionType),
		"score":   section.Score,
	})

	return section, nil
}

func buildEvaluationSummary(session *SessionRecord) string {
	parts := []string{}
	if session.Internal != nil {
		parts = append(parts, "**Internal Analysis**: "+textutil.Truncate(session.Internal.Content, followupExcerptChars))
	}
	if session.External != nil {
		parts = append(parts, "**External Analysis**: "+textutil.Truncate(session.External.Content, followupExcerptChars))
	}
	if session.Delta != nil {
		parts = append(parts, "**Gap Analysis**: "+textutil.Truncate(session.Delta.Content, followupExcerptChars))
	}
	return strings.Join(parts, "\n\n")
}

func meanScore(scores ...*float64) *float64 {
	var sum float64
	var n int
	for _, s := range scores {
		if s != nil {
			sum += *s
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}
