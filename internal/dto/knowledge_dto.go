package dto

import "time"

// IngestDocumentRequest registers a knowledge-base document. Text may be
// supplied inline or as an uploaded file.
type IngestDocumentRequest struct {
	DocumentName       string `json:"document_name" form:"document_name" validate:"required"`
	Text               string `json:"text" form:"text"`
	Sno                string `json:"sno" form:"sno"`
	Title              string `json:"title" form:"title"`
	AuthorOrganization string `json:"author_organization" form:"author_organization"`
	PublicationYear    string `json:"publication_year" form:"publication_year"`
	Link               string `json:"link" form:"link"`
}

type IngestDocumentResponse struct {
	DocumentName string `json:"document_name"`
	Queued       bool   `json:"queued"`
}

type SourceDocumentResponse struct {
	DocumentName       string    `json:"document_name"`
	Sno                string    `json:"sno,omitempty"`
	Title              string    `json:"title,omitempty"`
	AuthorOrganization string    `json:"author_organization,omitempty"`
	PublicationYear    string    `json:"publication_year,omitempty"`
	Link               string    `json:"link,omitempty"`
	ChunkCount         int64     `json:"chunk_count"`
	CreatedAt          time.Time `json:"created_at"`
}

type SourceDocumentsResponse struct {
	Documents []SourceDocumentResponse `json:"documents"`
}

type GuidelineRequest struct {
	OrganizationID string `json:"organization_id" validate:"required"`
	GuidelineName  string `json:"guideline_name" validate:"required,min=1,max=500"`
	GuidelineText  string `json:"guideline_text" validate:"required"`
	Description    string `json:"description"`
}

type GuidelineResponse struct {
	GuidelineID    string     `json:"guideline_id"`
	OrganizationID string     `json:"organization_id"`
	GuidelineName  string     `json:"guideline_name"`
	GuidelineText  string     `json:"guideline_text"`
	Description    string     `json:"description,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type GuidelinesResponse struct {
	OrganizationID string              `json:"organization_id"`
	Guidelines     []GuidelineResponse `json:"guidelines"`
	TotalCount     int64               `json:"total_count"`
}
