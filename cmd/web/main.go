package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"paymentsvc/cmd/web/handlers"
	"paymentsvc/internal/catalog"
	"paymentsvc/internal/health"
	"paymentsvc/internal/metrics"
	"paymentsvc/internal/notification"
	"paymentsvc/internal/payment"
	"paymentsvc/internal/webhook"
	"paymentsvc/kit/config"
	"paymentsvc/kit/db"
	"paymentsvc/kit/mercadopago"
	"paymentsvc/kit/observability"
)

func main() {
	cfg := config.Load()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(slogger)
	logger := observability.NewLoggerWith(slogger)
	counters := observability.NewMetrics()

	ctx := context.Background()

	var (
		pool        *pgxpool.Pool
		paymentRepo payment.RepositoryContract
		methodRepo  catalog.MethodRepositoryContract
		statusRepo  catalog.StatusRepositoryContract
	)
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		paymentRepo = payment.NewPGRepository(pool)
		methodRepo = catalog.NewPGMethodRepository(pool)
		statusRepo = catalog.NewPGStatusRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
		paymentRepo = payment.NewInMemoryRepository()
		methodRepo = catalog.NewInMemoryMethodRepository()
		statusRepo = catalog.NewInMemoryStatusRepository()
	}

	catalogSvc := catalog.NewService(methodRepo, statusRepo, logger, cfg.CatalogHardDelete)
	if err := catalogSvc.Seed(ctx); err != nil {
		logger.Error("catalog seed failed", "error", err)
		os.Exit(1)
	}

	gateway := mercadopago.NewGateway(mercadopago.Config{
		BaseURL:     cfg.MercadoPagoBaseURL,
		AccessToken: cfg.MercadoPagoAccessToken,
		UserID:      cfg.MercadoPagoUserID,
		PosID:       cfg.MercadoPagoPosID,
	})

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer asynqClient.Close()

	syncPolicy := notification.RetryPolicy{
		MaxAttempts: cfg.NotificationMaxRetries,
		Delay:       cfg.NotificationRetryDelay,
		Backoff:     notification.BackoffFixed,
	}
	notifier := notification.NewHybridNotifier(logger,
		notification.NamedNotifier{Name: "http", Notifier: notification.NewHTTPNotifier(cfg.NotificationTimeout, syncPolicy, logger)},
		notification.NamedNotifier{Name: "queued", Notifier: notification.NewQueuedNotifier(asynqClient, cfg.QueuedMaxRetries, cfg.NotificationTimeout, counters, logger)},
	)

	paymentSvc := payment.NewService(paymentRepo, methodRepo, statusRepo, gateway, counters, logger, cfg.PublicBaseURL)
	webhookSvc := webhook.NewService(gateway, paymentRepo, statusRepo, notifier, counters, logger)
	metricsSvc := metrics.NewService(counters)
	healthSvc := health.NewService(10*time.Second, map[string]health.CheckFunc{
		"database": health.DatabasePing(pool),
	})

	paymentH := handlers.NewPayment(paymentSvc, logger)
	webhookH := handlers.NewWebhook(webhookSvc, logger)
	catalogH := handlers.NewCatalog(catalogSvc, logger)
	metricsH := handlers.NewMetrics(metricsSvc)
	healthH := handlers.NewHealth(healthSvc)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(cors.New())

	app.Get("/health", healthH.Check)
	app.Get("/metrics", metricsH.Snapshot)

	app.Post("/payment", paymentH.Create)
	app.Get("/payment/id/:id", paymentH.GetByID)
	app.Get("/payment/transaction/:transactionId", paymentH.GetByTransactionID)

	app.Post("/webhook/payment", webhookH.Handle)

	methods := app.Group("/payment-methods")
	methods.Get("/", catalogH.ListMethods)
	methods.Post("/", catalogH.CreateMethod)
	methods.Get("/:id", catalogH.GetMethod)
	methods.Put("/:id", catalogH.UpdateMethod)
	methods.Delete("/:id", catalogH.DeleteMethod)

	statuses := app.Group("/payment-statuses")
	statuses.Get("/", catalogH.ListStatuses)
	statuses.Post("/", catalogH.CreateStatus)
	statuses.Get("/:id", catalogH.GetStatus)
	statuses.Put("/:id", catalogH.UpdateStatus)
	statuses.Delete("/:id", catalogH.DeleteStatus)

	go func() {
		logger.Info("http server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	_ = app.Shutdown()
	if pool != nil {
		pool.Close()
	}
}
