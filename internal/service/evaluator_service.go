package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/internal/repository/specification"
	"proposal-eval-be/internal/repository/unitofwork"
	"proposal-eval-be/pkg/evaluation"
	"proposal-eval-be/pkg/events"
	"proposal-eval-be/pkg/llm"
	pktNats "proposal-eval-be/pkg/nats"
)

type IEvaluatorService interface {
	Evaluate(ctx context.Context, req *dto.EvaluateRequest, proposalFile, torFile *dto.UploadedFile) (*dto.EvaluateResponse, error)
	Followup(ctx context.Context, req *dto.EvaluatorFollowupRequest) (*dto.EvaluatorFollowupResponse, error)
	ShowSession(ctx context.Context, userId, sessionId string) (*dto.EvaluateResponse, error)
	ListSessions(ctx context.Context, userId string, limit, offset int) (*dto.EvaluationSessionsResponse, error)
	UpdateSessionTitle(ctx context.Context, req *dto.SessionTitleUpdateRequest) error
}

type evaluatorService struct {
	uowFactory     unitofwork.RepositoryFactory
	engine         *evaluation.Engine
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewEvaluatorService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IEvaluatorService {
	engine := evaluation.NewEngine(
		llmProvider,
		NewEvaluationSessionStore(uowFactory),
		NewGuidelineProvider(uowFactory),
		log,
	)
	return &evaluatorService{
		uowFactory:     uowFactory,
		engine:         engine,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *evaluatorService) Evaluate(ctx context.Context, req *dto.EvaluateRequest, proposalFile, torFile *dto.UploadedFile) (*dto.EvaluateResponse, error) {
	engineReq := evaluation.Request{
		UserID:         req.UserID,
		UserName:       req.UserName,
		SessionID:      req.SessionID,
		OrganizationID: req.OrganizationID,
		GuidelineID:    req.OrgGuidelineID,
		DocumentType:   req.DocumentType,
		Proposal:       evaluation.DocumentInput{Text: req.ProposalTextInput},
		ToR:            evaluation.DocumentInput{Text: req.TorTextInput},
	}
	if proposalFile != nil {
		engineReq.Proposal.FileData = proposalFile.Data
		engineReq.Proposal.Filename = proposalFile.Filename
	}
	if torFile != nil {
		engineReq.ToR.FileData = torFile.Data
		engineReq.ToR.Filename = torFile.Filename
	}

	result, err := s.engine.Evaluate(ctx, engineReq)
	if err != nil {
		return nil, err
	}

	// Notification is auxiliary, evaluation already succeeded.
	if s.eventPublisher != nil {
		evt := events.NewEvaluationCompleted(result.SessionID, result.UserID, result.OverallScore, result.ProcessingSeconds)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("evaluator", "failed to publish completion event", map[string]interface{}{
				"session_id": result.SessionID,
				"error":      err.Error(),
			})
		}
	}

	return &dto.EvaluateResponse{
		SessionID:             result.SessionID,
		UserID:                result.UserID,
		InternalAnalysis:      dto.SectionToResponse(result.Internal),
		ExternalAnalysis:      dto.SectionToResponse(result.External),
		DeltaAnalysis:         dto.SectionToResponse(result.Delta),
		OverallScore:          result.OverallScore,
		ProcessingTimeSeconds: result.ProcessingSeconds,
		CreatedAt:             time.Now(),
	}, nil
}

func (s *evaluatorService) Followup(ctx context.Context, req *dto.EvaluatorFollowupRequest) (*dto.EvaluatorFollowupResponse, error) {
	followup, err := s.engine.AnswerFollowup(ctx, evaluation.FollowupRequest{
		UserID:    req.UserID,
		SessionID: req.SessionID,
		Query:     req.Query,
		Section:   req.Section,
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewEvaluationFollowupAsked(followup.SessionID, followup.UserID, followup.Section)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("evaluator", "failed to publish followup event", map[string]interface{}{
				"session_id": followup.SessionID,
				"error":      err.Error(),
			})
		}
	}

	return &dto.EvaluatorFollowupResponse{
		SessionID: followup.SessionID,
		Query:     followup.Query,
		Answer:    followup.Answer,
		Section:   followup.Section,
		CreatedAt: time.Now(),
	}, nil
}

func (s *evaluatorService) ShowSession(ctx context.Context, userId, sessionId string) (*dto.EvaluateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.EvaluationSessionRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.Newf(apperrors.KindNotFound, "evaluation session %s not found", sessionId)
	}

	res := dto.EvaluateResponse{
		SessionID:    session.SessionId,
		UserID:       session.UserId,
		OverallScore: session.OverallScore,
		CreatedAt:    session.CreatedAt,
	}
	if session.ProcessingTime != nil {
		res.ProcessingTimeSeconds = *session.ProcessingTime
	}
	res.InternalAnalysis = decodeSectionResponse(session.InternalAnalysis, evaluation.SectionInternal)
	res.ExternalAnalysis = decodeSectionResponse(session.ExternalAnalysis, evaluation.SectionExternal)
	res.DeltaAnalysis = decodeSectionResponse(session.DeltaAnalysis, evaluation.SectionDelta)

	return &res, nil
}

func decodeSectionResponse(raw json.RawMessage, sectionType evaluation.SectionType) dto.EvaluationSectionResponse {
	section := decodeSection(raw)
	if section == nil {
		return dto.EvaluationSectionResponse{
			SectionType: string(sectionType),
			Title:       sectionType.Title(),
		}
	}
	return dto.SectionToResponse(*section)
}

func (s *evaluatorService) ListSessions(ctx context.Context, userId string, limit, offset int) (*dto.EvaluationSessionsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.EvaluationSessionRepository().Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}

	sessions, err := uow.EvaluationSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := dto.EvaluationSessionsResponse{
		Sessions:   make([]dto.EvaluationSessionSummary, 0, len(sessions)),
		TotalCount: total,
	}
	for _, session := range sessions {
		res.Sessions = append(res.Sessions, dto.EvaluationSessionSummary{
			SessionID:    session.SessionId,
			UserID:       session.UserId,
			UserName:     session.UserName,
			DocumentType: session.DocumentType,
			SessionTitle: sessionTitleOrDefault(session),
			OverallScore: session.OverallScore,
			CreatedAt:    session.CreatedAt,
			CompletedAt:  session.CompletedAt,
		})
	}

	return &res, nil
}

// sessionTitleOrDefault mirrors the stored title, falling back to a dated
// label for sessions that were never renamed.
func sessionTitleOrDefault(session *entity.EvaluationSession) string {
	if session.SessionTitle != "" {
		return session.SessionTitle
	}
	return fmt.Sprintf("Evaluation %s", session.CreatedAt.Format("2006-01-02 15:04"))
}

func (s *evaluatorService) UpdateSessionTitle(ctx context.Context, req *dto.SessionTitleUpdateRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.EvaluationSessionRepository().FindOne(ctx,
		specification.BySessionID{SessionID: req.SessionID},
		specification.ByUserID{UserID: req.UserID},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return apperrors.Newf(apperrors.KindNotFound, "evaluation session %s not found", req.SessionID)
	}

	return uow.EvaluationSessionRepository().UpdateTitle(ctx, req.SessionID, req.SessionTitle)
}
