package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId     string    `gorm:"type:text;not null;uniqueIndex"`
	UserId        string    `gorm:"type:text;not null;index"`
	UserName      string    `gorm:"type:text"`
	UserEmail     string    `gorm:"type:text"`
	Source        string    `gorm:"type:text;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	LastMessageAt time.Time
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
