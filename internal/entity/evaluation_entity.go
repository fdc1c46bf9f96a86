package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EvaluationSession holds one proposal-vs-ToR evaluation run. The three
// analysis columns carry the serialized section results.
type EvaluationSession struct {
	Id               uuid.UUID
	SessionId        string
	UserId           string
	UserName         string
	DocumentType     string
	OrganizationId   string
	GuidelineId      string
	SessionTitle     string
	ProposalText     string
	ProposalUrl      string
	TorText          string
	TorUrl           string
	InternalAnalysis json.RawMessage
	ExternalAnalysis json.RawMessage
	DeltaAnalysis    json.RawMessage
	OverallScore     *float64
	ProcessingTime   *float64
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

type EvaluationFollowup struct {
	Id        uuid.UUID
	SessionId string
	UserId    string
	Query     string
	Answer    string
	Section   string
	CreatedAt time.Time
}
