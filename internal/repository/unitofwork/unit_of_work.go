package unitofwork

import (
	"context"

	"proposal-eval-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	EvaluationSessionRepository() contract.EvaluationSessionRepository
	EvaluationFollowupRepository() contract.EvaluationFollowupRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	GuidelineRepository() contract.GuidelineRepository
	SourceDocumentRepository() contract.SourceDocumentRepository
	KnowledgeChunkRepository() contract.KnowledgeChunkRepository
}
