package dto

import (
	"time"

	"proposal-eval-be/pkg/store"
)

type ChatRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email" validate:"omitempty,email"`
	SessionID string `json:"session_id"`
	Question  string `json:"question" validate:"required,min=1,max=4000"`
	Model     string `json:"model"`
	Source    string `json:"source"`
}

type ChatResponse struct {
	UserID              string                   `json:"user_id"`
	SessionID           string                   `json:"session_id"`
	Response            string                   `json:"response"`
	ResponseID          string                   `json:"response_id"`
	ContextInfo         []store.Chunk            `json:"contextInfo"`
	Sources             []store.SourceDescriptor `json:"sources"`
	WithinKnowledgeBase bool                     `json:"within_knowledge_base"`
}

type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionID string                `json:"session_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}

type ChatSessionSummary struct {
	SessionID     string    `json:"session_id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	Source        string    `json:"source,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	LastMessageAt time.Time `json:"last_message_at"`
}

type ChatSessionsResponse struct {
	Sessions   []ChatSessionSummary `json:"sessions"`
	TotalCount int64                `json:"total_count"`
}
