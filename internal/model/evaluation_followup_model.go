package model

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationFollowup struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string    `gorm:"type:text;not null;index"`
	UserId    string    `gorm:"type:text;not null"`
	Query     string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	Section   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (EvaluationFollowup) TableName() string {
	return "evaluation_followups"
}
