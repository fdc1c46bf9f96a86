package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EvaluationSession struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId        string         `gorm:"type:text;not null;uniqueIndex"`
	UserId           string         `gorm:"type:text;not null;index"`
	UserName         string         `gorm:"type:text"`
	DocumentType     string         `gorm:"type:text"`
	OrganizationId   string         `gorm:"type:text;index"`
	GuidelineId      string         `gorm:"type:text"`
	SessionTitle     string         `gorm:"type:text"`
	ProposalText     string         `gorm:"type:text"`
	ProposalUrl      string         `gorm:"type:text"`
	TorText          string         `gorm:"type:text"`
	TorUrl           string         `gorm:"type:text"`
	InternalAnalysis datatypes.JSON `gorm:"type:jsonb"`
	ExternalAnalysis datatypes.JSON `gorm:"type:jsonb"`
	DeltaAnalysis    datatypes.JSON `gorm:"type:jsonb"`
	OverallScore     *float64
	ProcessingTime   *float64
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	CompletedAt      *time.Time
}

func (EvaluationSession) TableName() string {
	return "evaluation_sessions"
}
