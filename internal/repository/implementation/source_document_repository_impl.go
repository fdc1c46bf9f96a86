package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/mapper"
	"proposal-eval-be/internal/model"
	"proposal-eval-be/internal/repository/contract"
	"proposal-eval-be/internal/repository/specification"
)

type SourceDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewSourceDocumentRepository(db *gorm.DB) contract.SourceDocumentRepository {
	return &SourceDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *SourceDocumentRepositoryImpl) Upsert(ctx context.Context, document *entity.SourceDocument) error {
	m := r.mapper.DocumentToModel(document)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "document_name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sno", "title", "author_organization", "publication_year", "link",
			}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*document = *r.mapper.DocumentToEntity(m)
	return nil
}

func (r *SourceDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SourceDocument, error) {
	var m model.SourceDocument
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocumentToEntity(&m), nil
}

func (r *SourceDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SourceDocument, error) {
	var models []*model.SourceDocument
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SourceDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.DocumentToEntity(m)
	}
	return entities, nil
}
