package model

import (
	"time"

	"github.com/google/uuid"
)

type SourceDocument struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentName       string    `gorm:"type:text;not null;uniqueIndex"`
	Sno                string    `gorm:"type:text"`
	Title              string    `gorm:"type:text"`
	AuthorOrganization string    `gorm:"type:text"`
	PublicationYear    string    `gorm:"type:text"`
	Link               string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (SourceDocument) TableName() string {
	return "source_documents"
}
