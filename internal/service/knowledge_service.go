package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/internal/repository/specification"
	"proposal-eval-be/internal/repository/unitofwork"
	"proposal-eval-be/pkg/extractor"
)

type IKnowledgeService interface {
	Ingest(ctx context.Context, req *dto.IngestDocumentRequest, file *dto.UploadedFile) (*dto.IngestDocumentResponse, error)
	ListDocuments(ctx context.Context) (*dto.SourceDocumentsResponse, error)
	DeleteDocument(ctx context.Context, documentName string) error
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

// Ingest catalogs the document and queues it for chunking and embedding.
// Embedding happens asynchronously on the consumer side.
func (s *knowledgeService) Ingest(ctx context.Context, req *dto.IngestDocumentRequest, file *dto.UploadedFile) (*dto.IngestDocumentResponse, error) {
	if req.Text != "" && file != nil {
		return nil, apperrors.New(apperrors.KindValidation, "provide either document text or a file, not both")
	}

	text := req.Text
	if text == "" && file != nil {
		extracted, err := extractor.Extract(file.Data, file.Filename)
		if err != nil {
			return nil, err
		}
		text = extracted
	}
	if text == "" {
		return nil, apperrors.New(apperrors.KindValidation, "document text or file is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	err := uow.SourceDocumentRepository().Upsert(ctx, &entity.SourceDocument{
		Id:                 uuid.New(),
		DocumentName:       req.DocumentName,
		Sno:                req.Sno,
		Title:              req.Title,
		AuthorOrganization: req.AuthorOrganization,
		PublicationYear:    req.PublicationYear,
		Link:               req.Link,
		CreatedAt:          time.Now(),
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(dto.PublishEmbedDocumentMessage{
		DocumentName: req.DocumentName,
		Text:         text,
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, err
	}

	s.log.Info("knowledge", "document queued for embedding", map[string]interface{}{
		"document_name": req.DocumentName,
		"text_length":   len(text),
	})

	return &dto.IngestDocumentResponse{
		DocumentName: req.DocumentName,
		Queued:       true,
	}, nil
}

func (s *knowledgeService) ListDocuments(ctx context.Context) (*dto.SourceDocumentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.SourceDocumentRepository().FindAll(ctx,
		specification.OrderBy{Field: "document_name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := dto.SourceDocumentsResponse{
		Documents: make([]dto.SourceDocumentResponse, 0, len(docs)),
	}
	for _, doc := range docs {
		count, err := uow.KnowledgeChunkRepository().CountByDocumentName(ctx, doc.DocumentName)
		if err != nil {
			return nil, err
		}
		res.Documents = append(res.Documents, dto.SourceDocumentResponse{
			DocumentName:       doc.DocumentName,
			Sno:                doc.Sno,
			Title:              doc.Title,
			AuthorOrganization: doc.AuthorOrganization,
			PublicationYear:    doc.PublicationYear,
			Link:               doc.Link,
			ChunkCount:         count,
			CreatedAt:          doc.CreatedAt,
		})
	}

	return &res, nil
}

func (s *knowledgeService) DeleteDocument(ctx context.Context, documentName string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.SourceDocumentRepository().FindOne(ctx,
		specification.ByDocumentName{DocumentName: documentName},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return apperrors.Newf(apperrors.KindNotFound, "document %s not found", documentName)
	}

	return uow.KnowledgeChunkRepository().DeleteByDocumentName(ctx, documentName)
}
