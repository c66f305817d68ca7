package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/notification"
	analyticsUseCase "github.com/fintrack/fintrack-api/internal/domain/usecase/analytics"
	budgetUseCase "github.com/fintrack/fintrack-api/internal/domain/usecase/budget"
	categoryUseCase "github.com/fintrack/fintrack-api/internal/domain/usecase/category"
	rolloverUseCase "github.com/fintrack/fintrack-api/internal/domain/usecase/rollover"
	savingsUseCase "github.com/fintrack/fintrack-api/internal/domain/usecase/savings"
	transactionUseCase "github.com/fintrack/fintrack-api/internal/domain/usecase/transaction"
	userUseCase "github.com/fintrack/fintrack-api/internal/domain/usecase/user"

	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/routes"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/cache"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/database"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/logger"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/mail"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/messaging"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/security"
	timeProvider "github.com/fintrack/fintrack-api/internal/infrastructure/adapter/time"
	"github.com/fintrack/fintrack-api/internal/infrastructure/config"
)

const codeDigits = 6

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Production,
		Level:      cfg.Logger.Level,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	tp, err := timeProvider.NewRealTimeProvider(cfg.Server.Timezone)
	if err != nil {
		log.Fatalf("Failed to create time provider: %v", err)
	}

	// Root context, cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err := dbManager.Migrate(ctx, hasher); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	tokens, err := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token service", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	reportCache, closeCache := newCache(ctx, cfg, appLogger)
	defer closeCache()

	hub := messaging.NewHub(appLogger)
	publisher, closePublisher := newPublisher(cfg, hub, appLogger)
	defer closePublisher()

	uow := dbManager.UnitOfWork()

	// Initialize use cases
	categories := categoryUseCase.NewCategoryUseCase(uow, reportCache, appLogger)
	savings := savingsUseCase.NewSavingsUseCase(uow, tp, appLogger)
	transactions := transactionUseCase.NewTransactionService(uow, savings, publisher, reportCache, tp, appLogger)
	budgets := budgetUseCase.NewBudgetUseCase(uow, reportCache, cfg.Cache.TTL, tp, appLogger)
	rollover := rolloverUseCase.NewRolloverUseCase(uow, reportCache, tp, appLogger)
	analytics := analyticsUseCase.NewAnalyticsUseCase(uow, reportCache, cfg.Cache.TTL, tp, appLogger)
	users := userUseCase.NewUserUseCase(
		uow,
		hasher,
		tokens,
		security.NewCodeGenerator(codeDigits),
		newMailer(cfg, appLogger),
		reportCache,
		tp,
		appLogger,
		userUseCase.Options{
			EmailVerification: cfg.Auth.EmailVerification,
			CodeTTL:           cfg.Auth.CodeTTL,
		},
	)

	if cfg.Rollover.Enabled {
		scheduler := rolloverUseCase.NewScheduler(rollover, cfg.Rollover.CheckInterval, tp, appLogger)
		go scheduler.Run(ctx)
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, routes.MiddlewareOptions{
		AllowedOrigins: cfg.Server.CORSOrigins,
		ExposeInternal: cfg.IsDevelopment(),
	})
	routes.SetupRoutes(router, routes.Handlers{
		Auth:         handler.NewAuthHandler(users, appLogger),
		Categories:   handler.NewCategoryHandler(categories),
		Transactions: handler.NewTransactionHandler(transactions),
		Budgets:      handler.NewBudgetHandler(budgets, rollover, tp),
		Savings:      handler.NewSavingsHandler(savings),
		Analytics:    handler.NewAnalyticsHandler(analytics),
		Events:       handler.NewEventsHandler(hub, appLogger),
		Health:       handler.NewHealthHandler(dbManager, appLogger),
	}, users)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	// Open event streams would otherwise hold Shutdown until its deadline
	server.RegisterOnShutdown(hub.Close)

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Draining transaction queues...", nil)
	transactions.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// newCache connects to redis when enabled. Without it reports are computed on every request.
func newCache(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (cacheport.Cache, func()) {
	if !cfg.Cache.Enabled {
		return cache.NoopCache{}, func() {}
	}

	redisCache, err := cache.NewRedisCache(ctx, cache.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	}, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, report caching disabled", map[string]any{"error": err.Error()})
		return cache.NoopCache{}, func() {}
	}
	return redisCache, func() { _ = redisCache.Close() }
}

// newPublisher always feeds the in-process hub and adds the broker when configured
func newPublisher(cfg *config.Config, hub *messaging.Hub, appLogger coreport.Logger) (notification.EventPublisher, func()) {
	if cfg.Messaging.AMQPURL == "" {
		return hub, func() {}
	}

	broker, err := messaging.NewAMQPPublisher(cfg.Messaging.AMQPURL, cfg.Messaging.Exchange, appLogger)
	if err != nil {
		appLogger.Warn("RabbitMQ unavailable, events stay in process", map[string]any{"error": err.Error()})
		return hub, func() {}
	}
	return messaging.Fanout{hub, broker}, func() { _ = broker.Close() }
}

// newMailer sends over SMTP when a host is configured and logs codes otherwise
func newMailer(cfg *config.Config, appLogger coreport.Logger) notification.Mailer {
	if cfg.Mail.Host == "" {
		return mail.NewLogMailer(appLogger)
	}
	return mail.NewSMTPMailer(mail.Options{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}, appLogger)
}
