package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type KnowledgeChunk struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentName string          `gorm:"type:text;not null;index"`
	ChunkIndex   int             `gorm:"not null"`
	Content      string          `gorm:"type:text;not null"`
	Embedding    pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}

func (KnowledgeChunk) TableName() string {
	return "knowledge_chunks"
}
