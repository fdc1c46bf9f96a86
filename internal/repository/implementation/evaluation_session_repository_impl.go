package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/mapper"
	"proposal-eval-be/internal/model"
	"proposal-eval-be/internal/repository/contract"
	"proposal-eval-be/internal/repository/specification"
)

type EvaluationSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EvaluationMapper
}

func NewEvaluationSessionRepository(db *gorm.DB) contract.EvaluationSessionRepository {
	return &EvaluationSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewEvaluationMapper(),
	}
}

func (r *EvaluationSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EvaluationSessionRepositoryImpl) Create(ctx context.Context, session *entity.EvaluationSession) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *EvaluationSessionRepositoryImpl) Update(ctx context.Context, session *entity.EvaluationSession) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *EvaluationSessionRepositoryImpl) UpdateTitle(ctx context.Context, sessionId, title string) error {
	return r.db.WithContext(ctx).
		Model(&model.EvaluationSession{}).
		Where("session_id = ?", sessionId).
		Update("session_title", title).Error
}

func (r *EvaluationSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EvaluationSession, error) {
	var m model.EvaluationSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m), nil
}

func (r *EvaluationSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EvaluationSession, error) {
	var models []*model.EvaluationSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.EvaluationSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SessionToEntity(m)
	}
	return entities, nil
}

func (r *EvaluationSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.EvaluationSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
