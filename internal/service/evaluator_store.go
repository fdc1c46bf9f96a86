package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/repository/specification"
	"proposal-eval-be/internal/repository/unitofwork"
	"proposal-eval-be/pkg/evaluation"
)

// gormSessionStore backs the evaluation engine with the relational store.
type gormSessionStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEvaluationSessionStore(uowFactory unitofwork.RepositoryFactory) evaluation.SessionStore {
	return &gormSessionStore{uowFactory: uowFactory}
}

func (s *gormSessionStore) CreateSession(ctx context.Context, session evaluation.NewSession) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EvaluationSessionRepository().Create(ctx, &entity.EvaluationSession{
		Id:             uuid.New(),
		SessionId:      session.SessionID,
		UserId:         session.UserID,
		UserName:       session.UserName,
		DocumentType:   session.DocumentType,
		OrganizationId: session.OrganizationID,
		GuidelineId:    session.GuidelineID,
		ProposalText:   session.ProposalText,
		ProposalUrl:    session.ProposalURL,
		TorText:        session.ToRText,
		TorUrl:         session.ToRURL,
		CreatedAt:      time.Now(),
	})
}

func (s *gormSessionStore) SaveResults(ctx context.Context, result *evaluation.Result) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.EvaluationSessionRepository().FindOne(ctx,
		specification.BySessionID{SessionID: result.SessionID},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return apperrors.Newf(apperrors.KindNotFound, "evaluation session %s not found", result.SessionID)
	}

	internal, err := json.Marshal(result.Internal)
	if err != nil {
		return err
	}
	external, err := json.Marshal(result.External)
	if err != nil {
		return err
	}
	delta, err := json.Marshal(result.Delta)
	if err != nil {
		return err
	}

	now := time.Now()
	processing := result.ProcessingSeconds

	session.InternalAnalysis = internal
	session.ExternalAnalysis = external
	session.DeltaAnalysis = delta
	session.OverallScore = result.OverallScore
	session.ProcessingTime = &processing
	session.CompletedAt = &now

	return uow.EvaluationSessionRepository().Update(ctx, session)
}

func (s *gormSessionStore) GetSession(ctx context.Context, sessionID string) (*evaluation.SessionRecord, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.EvaluationSessionRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionID},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	record := evaluation.SessionRecord{
		SessionID: session.SessionId,
		UserID:    session.UserId,
	}
	record.Internal = decodeSection(session.InternalAnalysis)
	record.External = decodeSection(session.ExternalAnalysis)
	record.Delta = decodeSection(session.DeltaAnalysis)

	return &record, nil
}

func (s *gormSessionStore) SaveFollowup(ctx context.Context, followup evaluation.Followup) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EvaluationFollowupRepository().Create(ctx, &entity.EvaluationFollowup{
		Id:        uuid.New(),
		SessionId: followup.SessionID,
		UserId:    followup.UserID,
		Query:     followup.Query,
		Answer:    followup.Answer,
		Section:   followup.Section,
		CreatedAt: time.Now(),
	})
}

func decodeSection(raw json.RawMessage) *evaluation.Section {
	if len(raw) == 0 {
		return nil
	}
	var section evaluation.Section
	if err := json.Unmarshal(raw, &section); err != nil {
		return nil
	}
	return &section
}

const guidelineCacheTTL = 15 * time.Minute

// guidelineProvider resolves the active guideline text for an organization,
// with a read-through in-process cache.
type guidelineProvider struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewGuidelineProvider(uowFactory unitofwork.RepositoryFactory) evaluation.GuidelineSource {
	return &guidelineProvider{
		uowFactory: uowFactory,
		cache:      cache.New(guidelineCacheTTL, 2*guidelineCacheTTL),
	}
}

func (g *guidelineProvider) GuidelinesText(ctx context.Context, organizationID, guidelineID string) (string, error) {
	key := organizationID + ":" + guidelineID
	if cached, ok := g.cache.Get(key); ok {
		return cached.(string), nil
	}

	uow := g.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByOrganizationID{OrganizationID: organizationID},
		specification.ActiveOnly{},
	}
	if guidelineID != "" {
		specs = append(specs, specification.ByGuidelineID{GuidelineID: guidelineID})
	}

	guidelines, err := uow.GuidelineRepository().FindAll(ctx, specs...)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(guidelines))
	for _, guideline := range guidelines {
		if guideline.GuidelineText != "" {
			texts = append(texts, guideline.GuidelineText)
		}
	}

	text := strings.Join(texts, "\n\n")
	g.cache.Set(key, text, cache.DefaultExpiration)
	return text, nil
}
