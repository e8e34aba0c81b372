package routes

import (
	"context"
	"net/http"

	_ "payler_gateway/docs" // This will be auto-generated
	"payler_gateway/internal/adapter/http/handlers"
	"payler_gateway/internal/adapter/persistence/repository"
	"payler_gateway/internal/config"
	"payler_gateway/internal/infrastructure/cache"
	"payler_gateway/internal/infrastructure/database"
	"payler_gateway/internal/infrastructure/logger"
	"payler_gateway/internal/infrastructure/messaging"
	"payler_gateway/internal/infrastructure/payments"
	"payler_gateway/internal/infrastructure/secrets"
	"payler_gateway/internal/infrastructure/storefront"
	"payler_gateway/internal/usecase"
	"payler_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const serviceName = "payler-gateway"

// Run will start the server
func Run() {
	app := config.LoadApp()
	logger.Initialize(app.Env)
	defer func() { _ = logger.Log.Sync() }()

	if app.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, app)

	logger.Log.Info("starting server", zap.String("port", app.Port), zap.String("order_store", app.OrderStore))
	if err := router.Run(":" + app.Port); err != nil {
		logger.Log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(router *gin.Engine, app config.App) {
	ctx := context.Background()
	log := logger.Log

	awsCfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Fatal("failed to create aws config", zap.Error(err))
	}

	orders := newOrderRepository(ctx, app, log)
	settings := newSettingsStore(app, awsCfg)

	var guard interfaces.INotificationGuard
	if app.RedisAddr != "" {
		guard = cache.NewRedisNotificationGuard(app.RedisAddr, serviceName, cache.DefaultGuardTTL)
		log.Info("notification replay guard enabled", zap.String("redis_addr", app.RedisAddr))
	}

	var publisher interfaces.IEventPublisher
	if app.PaymentTopicARN != "" {
		publisher = messaging.NewSNSEventPublisher(awsCfg, app.PaymentTopicARN, log)
		log.Info("payment events enabled", zap.String("topic_arn", app.PaymentTopicARN))
	}

	gateway := payments.NewPaylerGateway(&http.Client{}, app.PaymentMockEnable, log)
	urls := storefront.NewOrderURLs(app.SiteURL)

	sessionUseCase := usecase.NewSessionUseCase(orders, gateway, urls, settings, usecase.UUIDGenerator{}, log)
	notificationUseCase := usecase.NewNotificationUseCase(orders, urls, guard, publisher, log)
	refundUseCase := usecase.NewRefundUseCase(orders, gateway, settings, log)
	gatewayUseCase := usecase.NewGatewayUseCase(settings)

	paymentHandler := handlers.NewPaymentHandler(sessionUseCase, refundUseCase, gatewayUseCase, log)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase, log)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	addNotificationRoutes(router, notificationHandler)
}

func newOrderRepository(ctx context.Context, app config.App, log *zap.Logger) interfaces.IOrderRepository {
	switch app.OrderStore {
	case "postgres":
		db, err := database.ConnectPostgres(log, repository.OrderGormModels()...)
		if err != nil {
			log.Fatal("failed to connect to postgres", zap.Error(err))
		}
		return repository.NewOrderGormRepository(db)
	case "dynamodb":
		return repository.NewOrderDynamoRepository(database.ConnectDynamoDB(ctx, log))
	default:
		log.Fatal("unsupported ORDER_STORE", zap.String("order_store", app.OrderStore))
		return nil
	}
}

func newSettingsStore(app config.App, awsCfg aws.Config) interfaces.ISettingsStore {
	base := config.NewEnvSettingsStore()
	if app.PaylerSecretName == "" {
		return base
	}
	return config.NewSecretsSettingsStore(base, secrets.NewSecretsClient(awsCfg), app.PaylerSecretName)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logger.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c).Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
