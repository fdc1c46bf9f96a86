package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/repository/unitofwork"
	"proposal-eval-be/pkg/embedding"
	"proposal-eval-be/pkg/events"
	pktNats "proposal-eval-be/pkg/nats"
	"proposal-eval-be/pkg/textutil"
)

const embedChunkSize = 1200

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	eventPublisher    *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedDocumentMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.DocumentName == "" || payload.Text == "" {
		log.Printf("[ERROR] Embed message missing document name or text")
		msg.Ack()
		return
	}

	log.Printf("[INFO] Processing document embedding for: %s (content length: %d)", payload.DocumentName, len(payload.Text))

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chunks := textutil.SplitChunks(payload.Text, embedChunkSize)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newChunks []*entity.KnowledgeChunk
	for i, chunk := range chunks {
		vec, err := cs.embeddingProvider.Embed(ctx, chunk)
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of %s: %v", i, payload.DocumentName, err)
			msg.Nack() // Nack for retriable errors
			return
		}

		newChunks = append(newChunks, &entity.KnowledgeChunk{
			Id:           uuid.New(),
			DocumentName: payload.DocumentName,
			ChunkIndex:   i,
			Content:      chunk,
			Embedding:    vec,
			CreatedAt:    time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	// Re-ingest replaces the document's chunks wholesale.
	if err := uow.KnowledgeChunkRepository().DeleteByDocumentName(ctx, payload.DocumentName); err != nil {
		log.Printf("[ERROR] Failed to delete old chunks: %v", err)
		msg.Nack()
		return
	}

	if len(newChunks) > 0 {
		if err := uow.KnowledgeChunkRepository().CreateBulk(ctx, newChunks); err != nil {
			log.Printf("[ERROR] Failed to create bulk chunks: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		evt := events.NewKnowledgeDocumentIngested(payload.DocumentName, len(newChunks))
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish ingestion event: %v", err)
		}
	}

	log.Printf("[SUCCESS] Document processed: %d chunks for %s", len(newChunks), payload.DocumentName)
	msg.Ack()
}
