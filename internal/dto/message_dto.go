package dto

// UploadedFile is a multipart upload already read into memory.
type UploadedFile struct {
	Filename string
	Data     []byte
}

// PublishEmbedDocumentMessage is the queue payload that triggers chunking and
// embedding of an ingested knowledge-base document.
type PublishEmbedDocumentMessage struct {
	DocumentName string `json:"document_name"`
	Text         string `json:"text"`
}
