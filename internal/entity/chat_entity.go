package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id            uuid.UUID
	SessionId     string
	UserId        string
	UserName      string
	UserEmail     string
	Source        string
	CreatedAt     time.Time
	LastMessageAt time.Time
}

type ChatMessage struct {
	Id          uuid.UUID
	SessionId   string
	Role        string
	Content     string
	ResponseId  string
	ContextData json.RawMessage
	Sources     json.RawMessage
	CreatedAt   time.Time
}
