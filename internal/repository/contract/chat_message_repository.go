package contract

import (
	"context"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	// FindRecent returns the last limit messages in chronological order.
	FindRecent(ctx context.Context, sessionId string, limit int) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
