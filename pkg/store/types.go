package store

// Chunk represents a retrieved knowledge-base fragment before prompt assembly
type Chunk struct {
	ID           string                 `json:"id"`
	DocumentName string                 `json:"pdf_name"`
	Text         string                 `json:"pdf_context"`
	Score        float64                `json:"score"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// SourceDescriptor carries the bibliographic metadata of a source document.
// Unknown documents resolve to a descriptor with only DocumentName populated.
type SourceDescriptor struct {
	Sno                string `json:"sno,omitempty"`
	Title              string `json:"title,omitempty"`
	AuthorOrganization string `json:"author_organization,omitempty"`
	PublicationYear    string `json:"publication_year,omitempty"`
	Link               string `json:"link,omitempty"`
	DocumentName       string `json:"pdf_title"`
}
