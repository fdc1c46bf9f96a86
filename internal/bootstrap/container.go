package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"proposal-eval-be/internal/config"
	"proposal-eval-be/internal/controller"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/internal/repository/unitofwork"
	"proposal-eval-be/internal/service"
	"proposal-eval-be/pkg/embedding"
	"proposal-eval-be/pkg/events"
	"proposal-eval-be/pkg/llm/factory"
	pktNats "proposal-eval-be/pkg/nats"
)

type Container struct {
	// Controllers
	EvaluatorController controller.IEvaluatorController
	ChatbotController   controller.IChatbotController
	KnowledgeController controller.IKnowledgeController
	GuidelineController controller.IGuidelineController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider, err := embedding.NewProvider(embedding.Config{
		Provider:      cfg.Ai.EmbeddingProvider,
		Model:         cfg.Ai.EmbeddingModel,
		OpenAIKey:     cfg.Ai.OpenAIKey,
		JinaKey:       cfg.Ai.JinaKey,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		OpenAIKey:     cfg.Ai.OpenAIKey,
		OpenAIOrg:     cfg.Ai.OpenAIOrg,
		AnthropicKey:  cfg.Ai.AnthropicKey,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Audit trail: every domain event lands in the structured log.
	if natsSub != nil {
		err := natsSub.Subscribe("events.>", "audit-logger", func(ctx context.Context, evt events.Event) error {
			sysLogger.Info("audit", "domain event received", map[string]interface{}{
				"event_type": evt.EventType(),
				"payload":    evt.Payload(),
			})
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to start audit subscriber: %v", err)
		}
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.IngestTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.IngestTopic,
		uowFactory,
		embeddingProvider,
		natsPub,
	)

	evaluatorService := service.NewEvaluatorService(uowFactory, llmProvider, natsPub, sysLogger)
	chatbotService := service.NewChatbotService(
		uowFactory,
		embeddingProvider,
		llmProvider,
		rdb,
		natsPub,
		sysLogger,
	)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, sysLogger)
	guidelineService := service.NewGuidelineService(uowFactory)

	// 6. Controllers
	return &Container{
		EvaluatorController: controller.NewEvaluatorController(evaluatorService),
		ChatbotController:   controller.NewChatbotController(chatbotService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),
		GuidelineController: controller.NewGuidelineController(guidelineService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
