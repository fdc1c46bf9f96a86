// Package search runs vector similarity search over the knowledge base.
package search

import (
	"context"

	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/embedding"
	"proposal-eval-be/pkg/store"
)

// ChunkRepository is satisfied by the knowledge chunk repository.
type ChunkRepository interface {
	SearchSimilarWithScore(ctx context.Context, vector []float32, limit int) ([]store.Chunk, error)
}

// Orchestrator embeds the query and delegates to pgvector similarity search.
type Orchestrator struct {
	embedder embedding.Provider
	repo     ChunkRepository
	log      logger.ILogger
}

func NewOrchestrator(embedder embedding.Provider, repo ChunkRepository, log logger.ILogger) *Orchestrator {
	return &Orchestrator{
		embedder: embedder,
		repo:     repo,
		log:      log,
	}
}

func (o *Orchestrator) Search(ctx context.Context, query string, limit int) ([]store.Chunk, error) {
	vector, err := o.embedder.Embed(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRetrieval, "embed search query", err)
	}

	chunks, err := o.repo.SearchSimilarWithScore(ctx, vector, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRetrieval, "vector search failed", err)
	}

	o.log.Debug("rag.search", "vector search complete", map[string]interface{}{
		"results": len(chunks),
		"limit":   limit,
	})

	return chunks, nil
}
