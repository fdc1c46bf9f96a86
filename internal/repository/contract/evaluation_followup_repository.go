package contract

import (
	"context"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/repository/specification"
)

type EvaluationFollowupRepository interface {
	Create(ctx context.Context, followup *entity.EvaluationFollowup) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EvaluationFollowup, error)
}
