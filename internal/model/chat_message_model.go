package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   string         `gorm:"type:text;not null;index"`
	Role        string         `gorm:"type:text;not null"`
	Content     string         `gorm:"type:text;not null"`
	ResponseId  string         `gorm:"type:text"`
	ContextData datatypes.JSON `gorm:"type:jsonb"`
	Sources     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
