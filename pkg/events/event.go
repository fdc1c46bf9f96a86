package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "EVALUATION_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes.
const (
	TypeEvaluationCompleted      = "EVALUATION_COMPLETED"
	TypeEvaluationFollowupAsked  = "EVALUATION_FOLLOWUP_ASKED"
	TypeChatMessageCreated       = "CHAT_MESSAGE_CREATED"
	TypeKnowledgeDocumentIngested = "KNOWLEDGE_DOCUMENT_INGESTED"
)

func NewEvaluationCompleted(sessionID, userID string, overallScore *float64, processingSeconds float64) Event {
	return BaseEvent{
		Type: TypeEvaluationCompleted,
		Data: map[string]interface{}{
			"session_id":          sessionID,
			"user_id":             userID,
			"overall_score":       overallScore,
			"processing_seconds":  processingSeconds,
		},
		OccurredAt: time.Now(),
	}
}

func NewEvaluationFollowupAsked(sessionID, userID, section string) Event {
	return BaseEvent{
		Type: TypeEvaluationFollowupAsked,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"user_id":    userID,
			"section":    section,
		},
		OccurredAt: time.Now(),
	}
}

func NewChatMessageCreated(sessionID, userID, responseID string, withinKnowledgeBase bool) Event {
	return BaseEvent{
		Type: TypeChatMessageCreated,
		Data: map[string]interface{}{
			"session_id":            sessionID,
			"user_id":               userID,
			"response_id":           responseID,
			"within_knowledge_base": withinKnowledgeBase,
		},
		OccurredAt: time.Now(),
	}
}

func NewKnowledgeDocumentIngested(documentName string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeKnowledgeDocumentIngested,
		Data: map[string]interface{}{
			"document_name": documentName,
			"chunk_count":   chunkCount,
		},
		OccurredAt: time.Now(),
	}
}
