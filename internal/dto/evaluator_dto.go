package dto

import (
	"time"

	"proposal-eval-be/pkg/evaluation"
)

// EvaluateRequest accepts each document as inline text or an uploaded file
// (multipart). Exactly one input per document must be present.
type EvaluateRequest struct {
	UserID         string `json:"user_id" form:"user_id" validate:"required"`
	UserName       string `json:"user_name" form:"user_name"`
	SessionID      string `json:"session_id" form:"session_id"`
	OrganizationID string `json:"organization_id" form:"organization_id"`
	OrgGuidelineID string `json:"org_guideline_id" form:"org_guideline_id"`
	DocumentType   string `json:"document_type" form:"document_type"`

	ProposalTextInput string `json:"proposal_text_input" form:"proposal_text_input"`
	TorTextInput      string `json:"tor_text_input" form:"tor_text_input"`
}

type EvaluationSectionResponse struct {
	SectionType     string   `json:"section_type"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Score           *float64 `json:"score"`
	Gaps            []string `json:"gaps"`
	Strengths       []string `json:"strengths"`
	Recommendations []string `json:"recommendations"`
}

type EvaluateResponse struct {
	SessionID             string                    `json:"session_id"`
	UserID                string                    `json:"user_id"`
	InternalAnalysis      EvaluationSectionResponse `json:"internal_analysis"`
	ExternalAnalysis      EvaluationSectionResponse `json:"external_analysis"`
	DeltaAnalysis         EvaluationSectionResponse `json:"delta_analysis"`
	OverallScore          *float64                  `json:"overall_score"`
	ProcessingTimeSeconds float64                   `json:"processing_time_seconds"`
	CreatedAt             time.Time                 `json:"created_at"`
}

type EvaluatorFollowupRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
	Query     string `json:"query" validate:"required,min=1,max=2000"`
	Section   string `json:"section" validate:"omitempty,oneof=P_Internal P_External P_Delta"`
}

type EvaluatorFollowupResponse struct {
	SessionID string    `json:"session_id"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	Section   string    `json:"section,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type EvaluationSessionSummary struct {
	SessionID    string     `json:"session_id"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name,omitempty"`
	DocumentType string     `json:"document_type,omitempty"`
	SessionTitle string     `json:"session_title,omitempty"`
	OverallScore *float64   `json:"overall_score"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

type EvaluationSessionsResponse struct {
	Sessions   []EvaluationSessionSummary `json:"sessions"`
	TotalCount int64                      `json:"total_count"`
}

type SessionTitleUpdateRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	SessionID    string `json:"session_id" validate:"required"`
	SessionTitle string `json:"session_title" validate:"required,min=1,max=500"`
}

// SectionToResponse converts an engine section into its transport shape.
func SectionToResponse(s evaluation.Section) EvaluationSectionResponse {
	return EvaluationSectionResponse{
		SectionType:     string(s.SectionType),
		Title:           s.Title,
		Content:         s.Content,
		Score:           s.Score,
		Gaps:            s.Gaps,
		Strengths:       s.Strengths,
		Recommendations: s.Recommendations,
	}
}
