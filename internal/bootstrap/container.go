package bootstrap

import (
	"context"
	"time"

	"beertally-be/internal/config"
	"beertally-be/internal/controller"
	"beertally-be/internal/handler"
	"beertally-be/internal/pkg/logger"
	"beertally-be/internal/pkg/serverutils"
	"beertally-be/internal/repository/memory"
	"beertally-be/internal/repository/unitofwork"
	"beertally-be/internal/service"
	"beertally-be/internal/websocket"

	pktNats "beertally-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	RoomController     controller.IRoomController
	TallyController    controller.ITallyController
	GameController     controller.IGameController
	ActivityController controller.IActivityController

	// Session middleware shared by all authenticated routes
	SessionMiddleware fiber.Handler

	// App-wide logger, also used by the server and the rest entrypoint
	Logger logger.ILogger

	// Background Services (Exposed for main.go to run)
	LeaderboardConsumer service.ILeaderboardConsumerService

	// WebSockets
	ChatHandler  *handler.ChatHandler
	WebSocketHub *websocket.Hub
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

	// In-memory session cache
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Session.TTLMinutes) * time.Minute)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/chat.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 3. Services
	identityService := service.NewIdentityService(uowFactory, sessionRepo, natsPub)
	roomService := service.NewRoomService(uowFactory, cfg.Chat, natsPub)
	messageService := service.NewMessageService(uowFactory, cfg.Chat)
	tallyService := service.NewTallyService(uowFactory, pubSub, natsPub)
	leaderboardService := service.NewLeaderboardService(uowFactory, rdb)
	gameService := service.NewGameService(uowFactory)
	activityService := service.NewActivityService(uowFactory)

	leaderboardConsumer := service.NewLeaderboardConsumerService(pubSub, rdb)

	// Activity feed worker
	if natsSub != nil {
		activityConsumer := service.NewActivityConsumerService(natsSub, activityService)
		if err := activityConsumer.Start(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to start activity consumer", map[string]interface{}{"error": err.Error()})
		}
	}

	// 3.5 WebSocket bridge and handshake handler
	chatBridge := websocket.NewChatBridge(wsHub, roomService, messageService, wsLogger)
	chatHandler := handler.NewChatHandler(identityService, wsHub, chatBridge, wsLogger)

	sessionMW := serverutils.SessionMiddleware(identityService)

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(identityService),
		RoomController:     controller.NewRoomController(roomService, messageService),
		TallyController:    controller.NewTallyController(tallyService, leaderboardService),
		GameController:     controller.NewGameController(gameService),
		ActivityController: controller.NewActivityController(activityService),

		SessionMiddleware: sessionMW,

		Logger: sysLogger,

		LeaderboardConsumer: leaderboardConsumer,

		ChatHandler:  chatHandler,
		WebSocketHub: wsHub,
	}
}
