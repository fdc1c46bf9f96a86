package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/repository/specification"
	"proposal-eval-be/internal/repository/unitofwork"
	"proposal-eval-be/pkg/database"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.EvaluationSessionRepository())
	assert.NotNil(t, uow.KnowledgeChunkRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Evaluation Session Repository", func(t *testing.T) {
		count, err := uow.EvaluationSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Evaluation session count: %d", count)
	})

	t.Run("Check Chat Session Repository", func(t *testing.T) {
		count, err := uow.ChatSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Chat session count: %d", count)
	})

	t.Run("Check Knowledge Chunk Repository", func(t *testing.T) {
		count, err := uow.KnowledgeChunkRepository().CountByDocumentName(context.Background(), "does-not-exist.pdf")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Evaluation Session Roundtrip", func(t *testing.T) {
		ctx := context.Background()
		sessionId := "itest-" + uuid.NewString()

		err := uow.EvaluationSessionRepository().Create(ctx, &entity.EvaluationSession{
			Id:           uuid.New(),
			SessionId:    sessionId,
			UserId:       "itest-user",
			DocumentType: "Proposal",
			ProposalText: "integration test proposal",
			TorText:      "integration test tor",
			CreatedAt:    time.Now(),
		})
		assert.NoError(t, err)

		found, err := uow.EvaluationSessionRepository().FindOne(ctx,
			specification.BySessionID{SessionID: sessionId},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "itest-user", found.UserId)
			assert.Nil(t, found.CompletedAt)
		}

		err = uow.EvaluationSessionRepository().UpdateTitle(ctx, sessionId, "Renamed Session")
		assert.NoError(t, err)

		renamed, err := uow.EvaluationSessionRepository().FindOne(ctx,
			specification.BySessionID{SessionID: sessionId},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, renamed) {
			assert.Equal(t, "Renamed Session", renamed.SessionTitle)
		}
	})

	t.Run("Chat Session Idempotent Create", func(t *testing.T) {
		ctx := context.Background()
		sessionId := "itest-chat-" + uuid.NewString()

		session := &entity.ChatSession{
			Id:            uuid.New(),
			SessionId:     sessionId,
			UserId:        "itest-user",
			CreatedAt:     time.Now(),
			LastMessageAt: time.Now(),
		}
		assert.NoError(t, uow.ChatSessionRepository().CreateIfAbsent(ctx, session))

		// Second insert with the same session key must be a no-op.
		dup := &entity.ChatSession{
			Id:            uuid.New(),
			SessionId:     sessionId,
			UserId:        "someone-else",
			CreatedAt:     time.Now(),
			LastMessageAt: time.Now(),
		}
		assert.NoError(t, uow.ChatSessionRepository().CreateIfAbsent(ctx, dup))

		found, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.BySessionID{SessionID: sessionId},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "itest-user", found.UserId)
		}
	})

	t.Run("Transactional Rollback", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)
		sessionId := "itest-rollback-" + uuid.NewString()

		assert.NoError(t, txUow.Begin(ctx))

		err := txUow.EvaluationSessionRepository().Create(ctx, &entity.EvaluationSession{
			Id:           uuid.New(),
			SessionId:    sessionId,
			UserId:       "itest-user",
			ProposalText: "rollback me",
			TorText:      "rollback me",
			CreatedAt:    time.Now(),
		})
		assert.NoError(t, err)
		assert.NoError(t, txUow.Rollback())

		found, err := uow.EvaluationSessionRepository().FindOne(ctx,
			specification.BySessionID{SessionID: sessionId},
		)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
