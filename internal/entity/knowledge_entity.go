package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceDocument is the catalog record for one knowledge-base document.
type SourceDocument struct {
	Id                 uuid.UUID
	DocumentName       string
	Sno                string
	Title              string
	AuthorOrganization string
	PublicationYear    string
	Link               string
	CreatedAt          time.Time
}

// KnowledgeChunk is one embedded text fragment of a source document.
type KnowledgeChunk struct {
	Id           uuid.UUID
	DocumentName string
	ChunkIndex   int
	Content      string
	Embedding    []float32
	CreatedAt    time.Time
}

// ScoredKnowledgeChunk pairs a chunk with its cosine similarity.
type ScoredKnowledgeChunk struct {
	Chunk      *KnowledgeChunk
	Similarity float64
}
