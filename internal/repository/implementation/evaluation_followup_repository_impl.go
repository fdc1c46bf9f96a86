package implementation

import (
	"context"

	"gorm.io/gorm"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/mapper"
	"proposal-eval-be/internal/model"
	"proposal-eval-be/internal/repository/contract"
	"proposal-eval-be/internal/repository/specification"
)

type EvaluationFollowupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EvaluationMapper
}

func NewEvaluationFollowupRepository(db *gorm.DB) contract.EvaluationFollowupRepository {
	return &EvaluationFollowupRepositoryImpl{
		db:     db,
		mapper: mapper.NewEvaluationMapper(),
	}
}

func (r *EvaluationFollowupRepositoryImpl) Create(ctx context.Context, followup *entity.EvaluationFollowup) error {
	m := r.mapper.FollowupToModel(followup)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*followup = *r.mapper.FollowupToEntity(m)
	return nil
}

func (r *EvaluationFollowupRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EvaluationFollowup, error) {
	var models []*model.EvaluationFollowup
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.EvaluationFollowup, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FollowupToEntity(m)
	}
	return entities, nil
}
