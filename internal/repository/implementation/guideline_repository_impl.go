package implementation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/mapper"
	"proposal-eval-be/internal/model"
	"proposal-eval-be/internal/repository/contract"
	"proposal-eval-be/internal/repository/specification"
)

type GuidelineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GuidelineMapper
}

func NewGuidelineRepository(db *gorm.DB) contract.GuidelineRepository {
	return &GuidelineRepositoryImpl{
		db:     db,
		mapper: mapper.NewGuidelineMapper(),
	}
}

func (r *GuidelineRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GuidelineRepositoryImpl) Create(ctx context.Context, guideline *entity.OrganizationGuideline) error {
	m := r.mapper.ToModel(guideline)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*guideline = *r.mapper.ToEntity(m)
	return nil
}

func (r *GuidelineRepositoryImpl) Update(ctx context.Context, guideline *entity.OrganizationGuideline) error {
	now := time.Now()
	guideline.UpdatedAt = &now
	m := r.mapper.ToModel(guideline)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*guideline = *r.mapper.ToEntity(m)
	return nil
}

func (r *GuidelineRepositoryImpl) Deactivate(ctx context.Context, guidelineId string) error {
	return r.db.WithContext(ctx).
		Model(&model.OrganizationGuideline{}).
		Where("guideline_id = ?", guidelineId).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *GuidelineRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OrganizationGuideline, error) {
	var m model.OrganizationGuideline
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GuidelineRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrganizationGuideline, error) {
	var models []*model.OrganizationGuideline
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.OrganizationGuideline, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *GuidelineRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.OrganizationGuideline{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
