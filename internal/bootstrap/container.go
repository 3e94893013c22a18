package bootstrap

import (
	"context"
	"log"

	"quickie-be/internal/config"
	"quickie-be/internal/controller"
	"quickie-be/internal/handler"
	"quickie-be/internal/pkg/logger"
	"quickie-be/internal/pkg/mailer"
	"quickie-be/internal/repository/unitofwork"
	"quickie-be/internal/service"
	"quickie-be/internal/websocket"

	pktNats "quickie-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	OAuthController      controller.IOAuthController
	UserController       controller.IUserController
	PerfumeController    controller.IPerfumeController
	ReviewController     controller.IReviewController
	CollectionController controller.ICollectionController
	WishlistController   controller.IWishlistController
	MoodBoardController  controller.IMoodBoardController
	VendingController    controller.IVendingController
	DiscoveryController  controller.IDiscoveryController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	sysLogger.Info("Bootstrap", "Initializing container", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
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
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.RefreshRatingTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.RefreshRatingTopic,
		uowFactory,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)

	perfumeService := service.NewPerfumeService(uowFactory)
	reviewService := service.NewReviewService(uowFactory, publisherService)
	collectionService := service.NewCollectionService(uowFactory)
	wishlistService := service.NewWishlistService(uowFactory)
	moodBoardService := service.NewMoodBoardService(uowFactory)
	vendingService := service.NewVendingService(uowFactory, natsPub)

	recommendationService := service.NewRecommendationService(uowFactory)
	insightsService := service.NewInsightsService(uowFactory)

	// 3.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go func() {
			if err := notifService.Start(); err != nil {
				log.Printf("[WARN] Failed to start notification consumer: %v", err)
			}
		}()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		OAuthController:      controller.NewOAuthController(oauthService),
		UserController:       controller.NewUserController(userService),
		PerfumeController:    controller.NewPerfumeController(perfumeService),
		ReviewController:     controller.NewReviewController(reviewService),
		CollectionController: controller.NewCollectionController(collectionService),
		WishlistController:   controller.NewWishlistController(wishlistService),
		MoodBoardController:  controller.NewMoodBoardController(moodBoardService),
		VendingController:    controller.NewVendingController(vendingService),
		DiscoveryController:  controller.NewDiscoveryController(recommendationService, insightsService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
