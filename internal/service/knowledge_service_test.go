package service

import (
	"context"
	"testing"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
)

func TestIngestInputValidation(t *testing.T) {
	svc := NewKnowledgeService(nil, nil, logger.NewNoopLogger())

	t.Run("rejects text and file together", func(t *testing.T) {
		_, err := svc.Ingest(context.Background(),
			&dto.IngestDocumentRequest{DocumentName: "doc.pdf", Text: "inline text"},
			&dto.UploadedFile{Filename: "doc.txt", Data: []byte("file text")},
		)
		if !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects neither text nor file", func(t *testing.T) {
		_, err := svc.Ingest(context.Background(),
			&dto.IngestDocumentRequest{DocumentName: "doc.pdf"},
			nil,
		)
		if !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}
