package contract

import (
	"context"
	"time"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	// CreateIfAbsent inserts the session, silently keeping the existing row
	// when the session key is already taken.
	CreateIfAbsent(ctx context.Context, session *entity.ChatSession) error
	TouchLastMessage(ctx context.Context, sessionId string, at time.Time) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
