package contract

import (
	"context"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/repository/specification"
)

type SourceDocumentRepository interface {
	// Upsert inserts or refreshes the catalog row keyed by document name.
	Upsert(ctx context.Context, document *entity.SourceDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SourceDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SourceDocument, error)
}
