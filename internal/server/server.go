package server

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	awsclient "github.com/reachfood2024-code/reachfood-sub000/internal/client/aws"
	"github.com/reachfood2024-code/reachfood-sub000/internal/auth"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/handlers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/interfaces"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/middleware"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
)

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Health        *handlers.HealthHandler
	Products      *handlers.ProductHandler
	Orders        *handlers.OrderHandler
	Subscriptions *handlers.SubscriptionHandler
	Tracking      *handlers.TrackingHandler
	Metrics       *handlers.MetricsHandler
}

// NewHandlers builds every handler over one set of services.
func NewHandlers(common *handlers.CommonServices) *Handlers {
	return &Handlers{
		Health:        handlers.NewHealthHandler(),
		Products:      handlers.NewProductHandler(common),
		Orders:        handlers.NewOrderHandler(common),
		Subscriptions: handlers.NewSubscriptionHandler(common),
		Tracking:      handlers.NewTrackingHandler(common),
		Metrics:       handlers.NewMetricsHandler(common),
	}
}

var (
	cfg              Config
	apiHandlers      *Handlers
	dbPool           *pgxpool.Pool
	metricsScheduler *services.MetricsScheduler
	inlinePublisher  *services.InlineOrderEventPublisher
)

// InitializeHandlers connects to the database and builds the services and
// handlers. It exits the process on configuration errors.
func InitializeHandlers() {
	cfg = LoadConfig()
	logger.InitLogger(cfg.Stage)
	if !helpers.IsValidStage(cfg.Stage) {
		logger.Fatal("Invalid STAGE", zap.String("stage", cfg.Stage))
	}

	ctx := context.Background()

	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Unable to create secrets manager client", zap.Error(err))
	}

	dbURL, err := secrets.ResolveDatabaseURL(ctx, cfg.Deployed())
	if err != nil {
		logger.Fatal("Unable to resolve database URL", zap.Error(err))
	}

	dbPool, err = helpers.NewPool(ctx, dbURL, helpers.APIPoolOptions)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}

	queries := db.New(dbPool)
	txRunner := helpers.NewTxRunner(dbPool)

	publisher := newOrderEventPublisher(ctx, secrets, queries)

	orderService := services.NewOrderService(services.OrderServiceConfig{
		Queries:   queries,
		TxRunner:  txRunner,
		Publisher: publisher,
	})
	metricsService := services.NewMetricsService(queries,
		helpers.NewTxRunner(dbPool, helpers.WithConflictRetries(services.RollupConflictRetries)))

	apiHandlers = NewHandlers(&handlers.CommonServices{
		Catalog:       services.NewCatalogService(queries),
		Orders:        orderService,
		Subscriptions: services.NewSubscriptionService(queries),
		Tracking:      services.NewTrackingService(queries),
		Metrics:       metricsService,
		Export:        services.NewExportService(orderService),
	})

	if cfg.EnableScheduler {
		metricsScheduler = services.NewMetricsScheduler(metricsService)
	}
}

// newOrderEventPublisher prefers the SQS queue. Without one, events are
// handled in process when email is configured and dropped otherwise.
func newOrderEventPublisher(ctx context.Context, secrets interfaces.SecretsProvider, queries db.Querier) interfaces.OrderEventPublisher {
	if cfg.OrderQueueURL != "" {
		publisher, err := awsclient.NewSQSPublisher(ctx, cfg.OrderQueueURL, cfg.SQSEndpoint)
		if err != nil {
			logger.Fatal("Unable to create order event publisher", zap.Error(err))
		}
		logger.Info("Publishing order events to SQS", zap.String("queue_url", cfg.OrderQueueURL))
		return publisher
	}

	apiKey, err := secrets.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil {
		logger.Warn("No order queue or Resend key configured, order notifications are disabled")
		return nil
	}

	emailService := services.NewEmailService(apiKey, cfg.EmailFromAddress, cfg.EmailFromName, logger.Log)
	notifications := services.NewNotificationService(queries, emailService, services.NotificationConfig{
		BaseURL:      cfg.BaseURL,
		OwnerEmail:   cfg.OwnerEmail,
		SupportEmail: cfg.SupportEmail,
	})
	inlinePublisher = services.NewInlineOrderEventPublisher(notifications)
	logger.Info("Handling order events in process")
	return inlinePublisher
}

// InitializeRoutes installs middleware and routes and starts the metrics
// scheduler.
func InitializeRoutes(router *gin.Engine) {
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(configureCORS())
	if cfg.Stage != helpers.StageProd {
		router.Use(middleware.EnhancedLoggingMiddleware(cfg.Stage == helpers.StageLocal))
	} else {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterRoutes(router, apiHandlers, cfg.AdminKeyHash)

	if metricsScheduler != nil {
		metricsScheduler.Start()
	}
}

// RegisterRoutes mounts the health check and the /api/v1 routes.
func RegisterRoutes(router *gin.Engine, h *Handlers, adminKeyHash string) {
	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.DefaultRateLimiter.Middleware())
	{
		v1.GET("/products", h.Products.ListProducts)
		v1.GET("/products/:slug", h.Products.GetProduct)

		v1.POST("/orders",
			middleware.StrictRateLimiter.Middleware(),
			middleware.ValidateInput(middleware.CreateOrderValidation),
			h.Orders.CreateOrder)
		v1.GET("/orders/:order_number", h.Orders.GetOrderForCustomer)

		v1.POST("/subscriptions",
			middleware.StrictRateLimiter.Middleware(),
			middleware.ValidateInput(middleware.CreateSubscriptionValidation),
			h.Subscriptions.CreateSubscription)

		v1.POST("/track",
			middleware.StrictRateLimiter.Middleware(),
			middleware.ValidateInput(middleware.TrackEventValidation),
			h.Tracking.Track)

		admin := v1.Group("/admin")
		admin.Use(auth.EnsureAdminKey(adminKeyHash))
		{
			admin.GET("/orders", h.Orders.ListOrders)
			admin.GET("/orders/export", h.Orders.ExportOrders)
			admin.GET("/orders/:id", h.Orders.GetOrder)
			admin.PATCH("/orders/:id/status",
				middleware.ValidateInput(middleware.UpdateOrderStatusValidation),
				h.Orders.UpdateOrderStatus)

			admin.GET("/subscriptions", h.Subscriptions.ListSubscriptions)
			admin.POST("/subscriptions/:id/:action", h.Subscriptions.ApplyAction)

			admin.GET("/metrics/summary", h.Metrics.GetSummary)
			admin.GET("/metrics/charts/compare", h.Metrics.CompareCharts)
			admin.GET("/metrics/charts/:metric", h.Metrics.GetChart)
			admin.POST("/metrics/rollup", h.Metrics.TriggerRollup)
		}
	}
}

// Shutdown stops background work and closes the database pool.
func Shutdown() {
	if metricsScheduler != nil {
		metricsScheduler.Stop()
	}
	if inlinePublisher != nil {
		inlinePublisher.Wait()
	}
	if dbPool != nil {
		dbPool.Close()
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = splitEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = splitEnvList("CORS_ALLOWED_METHODS",
		[]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions})
	corsConfig.AllowHeaders = splitEnvList("CORS_ALLOWED_HEADERS",
		[]string{"Origin", "Content-Type", "Accept", auth.AdminKeyHeader, middleware.CorrelationIDHeader})
	corsConfig.ExposeHeaders = splitEnvList("CORS_EXPOSED_HEADERS",
		[]string{middleware.CorrelationIDHeader, "Content-Disposition", "Retry-After"})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
