package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationGuideline struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GuidelineId    string    `gorm:"type:text;not null;uniqueIndex"`
	OrganizationId string    `gorm:"type:text;not null;index"`
	GuidelineName  string    `gorm:"type:text;not null"`
	GuidelineText  string    `gorm:"type:text;not null"`
	Description    string    `gorm:"type:text"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      *time.Time
}

func (OrganizationGuideline) TableName() string {
	return "organization_guidelines"
}
