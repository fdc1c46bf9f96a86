package contract

import (
	"context"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/repository/specification"
)

type EvaluationSessionRepository interface {
	Create(ctx context.Context, session *entity.EvaluationSession) error
	Update(ctx context.Context, session *entity.EvaluationSession) error
	UpdateTitle(ctx context.Context, sessionId, title string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EvaluationSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EvaluationSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
