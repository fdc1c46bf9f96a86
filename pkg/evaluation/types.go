// Package evaluation implements the three-part proposal evaluation engine:
// internal consistency, ToR alignment, and gap analysis.
package evaluation

import "context"

type SectionType string

const (
	SectionInternal SectionType = "P_Internal"
	SectionExternal SectionType = "P_External"
	SectionDelta    SectionType = "P_Delta"
)

// Title returns the human-readable heading shown for a section.
func (s SectionType) Title() string {
	switch s {
	case SectionInternal:
		return "Internal Consistency Analysis"
	case SectionExternal:
		return "ToR Alignment Analysis"
	case SectionDelta:
		return "Gap Analysis"
	default:
		return "Analysis"
	}
}

// Section is one structured analysis result parsed from the model output.
type Section struct {
	SectionType     SectionType `json:"section_type"`
	Title           string      `json:"title"`
	Content         string      `json:"content"`
	Score           *float64    `json:"score"`
	Gaps            []string    `json:"gaps"`
	Strengths       []string    `json:"strengths"`
	Recommendations []string    `json:"recommendations"`
}

// DocumentInput carries exactly one of Text or FileData.
type DocumentInput struct {
	Text     string
	FileData []byte
	Filename string
}

type Request struct {
	UserID         string
	UserName       string
	SessionID      string
	OrganizationID string
	GuidelineID    string
	DocumentType   string
	Proposal       DocumentInput
	ToR            DocumentInput
}

type Result struct {
	SessionID         string
	UserID            string
	Internal          Section
	External          Section
	Delta             Section
	OverallScore      *float64
	ProcessingSeconds float64
}

type FollowupRequest struct {
	UserID    string
	SessionID string
	Query     string
	Section   string
}

type Followup struct {
	SessionID string
	UserID    string
	Query     string
	Answer    string
	Section   string
}

// NewSession is the record persisted when an evaluation starts. Texts are
// truncated by the engine before the store sees them.
type NewSession struct {
	SessionID      string
	UserID         string
	UserName       string
	DocumentType   string
	OrganizationID string
	GuidelineID    string
	ProposalText   string
	ProposalURL    string
	ToRText        string
	ToRURL         string
}

// SessionRecord is a stored evaluation loaded back for follow-up questions.
// Analysis pointers are nil when the evaluation never completed.
type SessionRecord struct {
	SessionID string
	UserID    string
	Internal  *Section
	External  *Section
	Delta     *Section
}

// SessionStore persists evaluation sessions and their results.
type SessionStore interface {
	CreateSession(ctx context.Context, session NewSession) error
	SaveResults(ctx context.Context, result *Result) error
	GetSession(ctx context.Context, sessionID string) (*SessionRecord, error)
	SaveFollowup(ctx context.Context, followup Followup) error
}

// GuidelineSource resolves an organization's guideline text. An empty string
// means no guidelines are configured.
type GuidelineSource interface {
	GuidelinesText(ctx context.Context, organizationID, guidelineID string) (string, error)
}
