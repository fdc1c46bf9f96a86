package contract

import (
	"context"

	"proposal-eval-be/internal/entity"
)

type KnowledgeChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error
	DeleteByDocumentName(ctx context.Context, documentName string) error
	// SearchSimilarWithScore returns the closest chunks by cosine similarity.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredKnowledgeChunk, error)
	CountByDocumentName(ctx context.Context, documentName string) (int64, error)
}
