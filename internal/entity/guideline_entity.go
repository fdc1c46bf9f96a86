package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationGuideline struct {
	Id             uuid.UUID
	GuidelineId    string
	OrganizationId string
	GuidelineName  string
	GuidelineText  string
	Description    string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
