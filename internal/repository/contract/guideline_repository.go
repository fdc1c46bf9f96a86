package contract

import (
	"context"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/repository/specification"
)

type GuidelineRepository interface {
	Create(ctx context.Context, guideline *entity.OrganizationGuideline) error
	Update(ctx context.Context, guideline *entity.OrganizationGuideline) error
	Deactivate(ctx context.Context, guidelineId string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OrganizationGuideline, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrganizationGuideline, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
