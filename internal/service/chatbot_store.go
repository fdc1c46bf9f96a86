package service

import (
	"context"

	"proposal-eval-be/internal/repository/specification"
	"proposal-eval-be/internal/repository/unitofwork"
	"proposal-eval-be/pkg/store"
)

// chunkSearchAdapter exposes the knowledge chunk repository to the retrieval
// orchestrator in its transport-neutral shape.
type chunkSearchAdapter struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChunkSearchAdapter(uowFactory unitofwork.RepositoryFactory) *chunkSearchAdapter {
	return &chunkSearchAdapter{uowFactory: uowFactory}
}

func (a *chunkSearchAdapter) SearchSimilarWithScore(ctx context.Context, vector []float32, limit int) ([]store.Chunk, error) {
	uow := a.uowFactory.NewUnitOfWork(ctx)

	scored, err := uow.KnowledgeChunkRepository().SearchSimilarWithScore(ctx, vector, limit)
	if err != nil {
		return nil, err
	}

	chunks := make([]store.Chunk, 0, len(scored))
	for _, s := range scored {
		chunks = append(chunks, store.Chunk{
			ID:           s.Chunk.Id.String(),
			DocumentName: s.Chunk.DocumentName,
			Text:         s.Chunk.Content,
			Score:        s.Similarity,
		})
	}
	return chunks, nil
}

// descriptorRepoAdapter feeds the source catalog from the document table.
type descriptorRepoAdapter struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDescriptorRepoAdapter(uowFactory unitofwork.RepositoryFactory) *descriptorRepoAdapter {
	return &descriptorRepoAdapter{uowFactory: uowFactory}
}

func (a *descriptorRepoAdapter) FindByDocumentName(ctx context.Context, documentName string) (*store.SourceDescriptor, error) {
	uow := a.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.SourceDocumentRepository().FindOne(ctx, specification.ByDocumentName{DocumentName: documentName})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	return &store.SourceDescriptor{
		Sno:                doc.Sno,
		Title:              doc.Title,
		AuthorOrganization: doc.AuthorOrganization,
		PublicationYear:    doc.PublicationYear,
		Link:               doc.Link,
		DocumentName:       doc.DocumentName,
	}, nil
}
