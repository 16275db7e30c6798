package bootstrap

import (
	"context"
	"log"
	"time"

	"mightyops-be/internal/config"
	"mightyops-be/internal/controller"
	"mightyops-be/internal/pkg/logger"
	"mightyops-be/internal/pkg/mailer"
	"mightyops-be/internal/pkg/serverutils"
	"mightyops-be/internal/repository/unitofwork"
	"mightyops-be/internal/service"

	pktNats "mightyops-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// recordEventsTopic is the in-process bus topic record changes travel on.
const recordEventsTopic = "record-events"

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	RecordController controller.IRecordController
	ReportController controller.IReportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
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

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS audit mirror is optional; an empty URL disables it.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
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

	loginLimiter := serverutils.NewLoginLimiter(
		rdb,
		cfg.Auth.LoginAttempts,
		time.Duration(cfg.Auth.LoginWindowSeconds)*time.Second,
	)

	statsCache := gocache.New(5*time.Minute, 10*time.Minute)

	// 3. Services
	publisherService := service.NewPublisherService(recordEventsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		recordEventsTopic,
		statsCache,
		natsPub,
	)

	recordStore := service.NewRecordStore(uowFactory, publisherService)

	authService := service.NewAuthService(uowFactory, loginLimiter, cfg.Auth)
	recordService := service.NewRecordService(uowFactory, recordStore, publisherService, statsCache)
	reportService := service.NewReportService(recordStore, emailService, cfg.App, cfg.Report)

	// 4. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService),
		RecordController: controller.NewRecordController(recordService),
		ReportController: controller.NewReportController(reportService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
