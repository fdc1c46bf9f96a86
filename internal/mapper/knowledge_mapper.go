package mapper

import (
	"github.com/pgvector/pgvector-go"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) DocumentToEntity(d *model.SourceDocument) *entity.SourceDocument {
	if d == nil {
		return nil
	}

	return &entity.SourceDocument{
		Id:                 d.Id,
		DocumentName:       d.DocumentName,
		Sno:                d.Sno,
		Title:              d.Title,
		AuthorOrganization: d.AuthorOrganization,
		PublicationYear:    d.PublicationYear,
		Link:               d.Link,
		CreatedAt:          d.CreatedAt,
	}
}

func (m *KnowledgeMapper) DocumentToModel(d *entity.SourceDocument) *model.SourceDocument {
	if d == nil {
		return nil
	}

	return &model.SourceDocument{
		Id:                 d.Id,
		DocumentName:       d.DocumentName,
		Sno:                d.Sno,
		Title:              d.Title,
		AuthorOrganization: d.AuthorOrganization,
		PublicationYear:    d.PublicationYear,
		Link:               d.Link,
		CreatedAt:          d.CreatedAt,
	}
}

func (m *KnowledgeMapper) ChunkToEntity(c *model.KnowledgeChunk) *entity.KnowledgeChunk {
	if c == nil {
		return nil
	}

	return &entity.KnowledgeChunk{
		Id:           c.Id,
		DocumentName: c.DocumentName,
		ChunkIndex:   c.ChunkIndex,
		Content:      c.Content,
		Embedding:    c.Embedding.Slice(),
		CreatedAt:    c.CreatedAt,
	}
}

func (m *KnowledgeMapper) ChunkToModel(c *entity.KnowledgeChunk) *model.KnowledgeChunk {
	if c == nil {
		return nil
	}

	return &model.KnowledgeChunk{
		Id:           c.Id,
		DocumentName: c.DocumentName,
		ChunkIndex:   c.ChunkIndex,
		Content:      c.Content,
		Embedding:    pgvector.NewVector(c.Embedding),
		CreatedAt:    c.CreatedAt,
	}
}
