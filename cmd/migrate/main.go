package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"proposal-eval-be/internal/model"
	"proposal-eval-be/pkg/database"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate All Models (pgvector extension is created first)
	err = database.Migrate(db,
		&model.EvaluationSession{},
		&model.EvaluationFollowup{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.OrganizationGuideline{},
		&model.SourceDocument{},
		&model.KnowledgeChunk{},
	)
	if err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Migration completed successfully")
}
