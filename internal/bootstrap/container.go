package bootstrap

import (
	"context"
	"log"

	"dungeon-master-be/internal/config"
	"dungeon-master-be/internal/controller"
	"dungeon-master-be/internal/handler"
	"dungeon-master-be/internal/pkg/logger"
	"dungeon-master-be/internal/pkg/mailer"
	"dungeon-master-be/internal/repository/memory"
	"dungeon-master-be/internal/repository/unitofwork"
	"dungeon-master-be/internal/service"
	"dungeon-master-be/internal/websocket"
	"dungeon-master-be/pkg/narrator/httpapi"
	"dungeon-master-be/pkg/storage"

	pktNats "dungeon-master-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	OAuthController     controller.IOAuthController
	UserController      controller.IUserController
	CampaignController  controller.ICampaignController
	CharacterController controller.ICharacterController
	StoryController     controller.IStoryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	store := storage.NewLocalStore(cfg.Uploads.Dir, cfg.App.BaseURL)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Narrator
	narratorClient := httpapi.NewClient(cfg.Narrator.BaseURL)
	log.Printf("[INFO] Using narrator at %s", cfg.Narrator.BaseURL)

	// In-memory session state for live play
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.StoryTurnTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.StoryTurnTopic, wsHub)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory, store, natsPub)

	campaignService := service.NewCampaignService(uowFactory)
	characterService := service.NewCharacterService(uowFactory, store)
	storyService := service.NewStoryService(uowFactory)

	sessionService := service.NewSessionService(
		uowFactory,
		sessionRepo,
		narratorClient,
		publisherService,
		natsPub,
		sysLogger,
		cfg.Narrator.SeedOpening,
	)

	// Audit trail (NATS durable consumer)
	if natsSub != nil {
		auditService := service.NewAuditService(natsSub, sysLogger)
		if err := auditService.Start(); err != nil {
			log.Printf("[WARN] Failed to start audit service: %v", err)
		}
	}

	streamHandler := handler.NewStreamHandler(wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		OAuthController:     controller.NewOAuthController(oauthService),
		UserController:      controller.NewUserController(userService),
		CampaignController:  controller.NewCampaignController(campaignService),
		CharacterController: controller.NewCharacterController(characterService),
		StoryController:     controller.NewStoryController(storyService, sessionService),

		ConsumerService: consumerService,

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,
	}
}
