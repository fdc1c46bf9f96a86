package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"proposal-eval-be/internal/constant"
	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/internal/repository/specification"
	"proposal-eval-be/internal/repository/unitofwork"
	"proposal-eval-be/pkg/embedding"
	"proposal-eval-be/pkg/events"
	"proposal-eval-be/pkg/llm"
	pktNats "proposal-eval-be/pkg/nats"
	ragcontext "proposal-eval-be/pkg/rag/context"
	"proposal-eval-be/pkg/rag/history"
	"proposal-eval-be/pkg/rag/refine"
	"proposal-eval-be/pkg/rag/response"
	"proposal-eval-be/pkg/rag/search"
	"proposal-eval-be/pkg/sourcecat"
	"proposal-eval-be/pkg/store"
)

type IChatbotService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error)
	Sessions(ctx context.Context, userId string) (*dto.ChatSessionsResponse, error)
}

type chatbotService struct {
	uowFactory     unitofwork.RepositoryFactory
	refiner        *refine.Refiner
	extractor      *ragcontext.Extractor
	generator      *response.Generator
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	llmProvider llm.LLMProvider,
	redisClient *redis.Client,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatbotService {
	orchestrator := search.NewOrchestrator(embeddingProvider, NewChunkSearchAdapter(uowFactory), log)
	catalog := sourcecat.NewCatalog(NewDescriptorRepoAdapter(uowFactory), redisClient, log)

	return &chatbotService{
		uowFactory:     uowFactory,
		refiner:        refine.NewRefiner(llmProvider, log),
		extractor:      ragcontext.NewExtractor(orchestrator, catalog, log),
		generator:      response.NewGenerator(llmProvider, log),
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *chatbotService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionId := req.SessionID
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	err := uow.ChatSessionRepository().CreateIfAbsent(ctx, &entity.ChatSession{
		Id:            uuid.New(),
		SessionId:     sessionId,
		UserId:        req.UserID,
		UserName:      req.UserName,
		UserEmail:     req.UserEmail,
		Source:        req.Source,
		CreatedAt:     now,
		LastMessageAt: now,
	})
	if err != nil {
		return nil, err
	}

	recent, err := uow.ChatMessageRepository().FindRecent(ctx, sessionId, constant.ChatHistoryLimit)
	if err != nil {
		return nil, err
	}
	conversation := history.Transcript(toHistoryMessages(recent))

	err = uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionId,
		Role:      constant.ChatRoleUser,
		Content:   req.Question,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	needsRetrieval, refinedQuery := s.refiner.Refine(ctx, conversation, req.Question)

	var extracted ragcontext.Extracted
	if needsRetrieval {
		extracted = s.extractor.Extract(ctx, refinedQuery, constant.ChatTopK, constant.ChatMultiplier)
	}

	answer, withinKB, err := s.generator.Generate(ctx, req.Question, conversation, extracted.AllContext, req.Model, req.Source)
	if err != nil {
		return nil, err
	}

	contextInfo := extracted.ContextInfo
	sources := extracted.Sources
	if !withinKB {
		// Off-knowledge answers never cite sources.
		contextInfo = nil
		sources = nil
	}
	if contextInfo == nil {
		contextInfo = []store.Chunk{}
	}
	if sources == nil {
		sources = []store.SourceDescriptor{}
	}

	responseId := uuid.NewString()
	contextData, _ := json.Marshal(contextInfo)
	sourcesData, _ := json.Marshal(sources)

	err = uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		Id:          uuid.New(),
		SessionId:   sessionId,
		Role:        constant.ChatRoleAssistant,
		Content:     answer,
		ResponseId:  responseId,
		ContextData: contextData,
		Sources:     sourcesData,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := uow.ChatSessionRepository().TouchLastMessage(ctx, sessionId, time.Now()); err != nil {
		s.log.Warn("chatbot", "failed to bump session activity", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewChatMessageCreated(sessionId, req.UserID, responseId, withinKB)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("chatbot", "failed to publish chat event", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		}
	}

	return &dto.ChatResponse{
		UserID:              req.UserID,
		SessionID:           sessionId,
		Response:            answer,
		ResponseID:          responseId,
		ContextInfo:         contextInfo,
		Sources:             sources,
		WithinKnowledgeBase: withinKB,
	}, nil
}

func toHistoryMessages(messages []*entity.ChatMessage) []history.Message {
	out := make([]history.Message, 0, len(messages))
	for _, msg := range messages {
		out = append(out, history.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return out
}

func (s *chatbotService) History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.Newf(apperrors.KindNotFound, "chat session %s not found", sessionId)
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := dto.ChatHistoryResponse{
		SessionID: sessionId,
		Messages:  make([]dto.ChatMessageResponse, 0, len(messages)),
	}
	for _, msg := range messages {
		res.Messages = append(res.Messages, dto.ChatMessageResponse{
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return &res, nil
}

func (s *chatbotService) Sessions(ctx context.Context, userId string) (*dto.ChatSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ChatSessionRepository().Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "last_message_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := dto.ChatSessionsResponse{
		Sessions:   make([]dto.ChatSessionSummary, 0, len(sessions)),
		TotalCount: total,
	}
	for _, session := range sessions {
		res.Sessions = append(res.Sessions, dto.ChatSessionSummary{
			SessionID:     session.SessionId,
			UserID:        session.UserId,
			UserName:      session.UserName,
			Source:        session.Source,
			CreatedAt:     session.CreatedAt,
			LastMessageAt: session.LastMessageAt,
		})
	}

	return &res, nil
}
