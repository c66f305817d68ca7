package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Auth         *handler.AuthHandler
	Categories   *handler.CategoryHandler
	Transactions *handler.TransactionHandler
	Budgets      *handler.BudgetHandler
	Savings      *handler.SavingsHandler
	Analytics    *handler.AnalyticsHandler
	Events       *handler.EventsHandler
	Health       *handler.HealthHandler
}

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	AllowedOrigins []string
	ExposeInternal bool
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth middleware.Authenticator) {
	router.GET("/health", h.Health.Check)

	api := router.Group("/api")
	requireAuth := middleware.Authenticate(auth, false)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/verify", h.Auth.Verify)
		authRoutes.POST("/resend", h.Auth.Resend)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/request-reset", h.Auth.RequestReset)
		authRoutes.POST("/verify-reset", h.Auth.VerifyReset)
		authRoutes.PUT("/update", requireAuth, h.Auth.Update)
		authRoutes.DELETE("/delete", requireAuth, h.Auth.Delete)
	}

	categoryRoutes := api.Group("/categories", requireAuth)
	{
		categoryRoutes.GET("", h.Categories.List)
		categoryRoutes.POST("", h.Categories.Create)
		categoryRoutes.DELETE("", h.Categories.Delete)
	}

	transactionRoutes := api.Group("/transactions", requireAuth)
	{
		transactionRoutes.POST("", h.Transactions.Create)
		transactionRoutes.GET("", h.Transactions.Recent)
		transactionRoutes.GET("/filter", h.Transactions.Filter)
		transactionRoutes.GET("/expenses/by-category", h.Transactions.ExpensesByCategory)
		transactionRoutes.GET("/monthly-summary", h.Transactions.MonthlySummary)
		transactionRoutes.GET("/summary", h.Transactions.Summary)
		transactionRoutes.PUT("/:id", h.Transactions.Update)
		transactionRoutes.DELETE("/:id", h.Transactions.Delete)
	}

	budgetRoutes := api.Group("/budget", requireAuth)
	{
		budgetRoutes.GET("", h.Budgets.List)
		budgetRoutes.POST("", h.Budgets.Set)
		budgetRoutes.PUT("/:id", h.Budgets.Update)
		budgetRoutes.DELETE("/:id", h.Budgets.Delete)
		budgetRoutes.GET("/auto-suggest", h.Budgets.Suggest)
		budgetRoutes.GET("/forecast", h.Budgets.Forecast)
		budgetRoutes.GET("/history", h.Budgets.History)
		budgetRoutes.POST("/rollover", h.Budgets.Rollover)
	}

	savingsRoutes := api.Group("/savings", requireAuth)
	{
		savingsRoutes.POST("/goal", h.Savings.SetGoal)
		savingsRoutes.GET("/goal", h.Savings.GoalStatus)
		savingsRoutes.POST("/monthly", h.Savings.StoreMonthly)
		savingsRoutes.GET("/monthly", h.Savings.ListMonthly)
		savingsRoutes.POST("/month-end", h.Savings.MonthEnd)
	}

	analyticsRoutes := api.Group("/analytics", requireAuth)
	{
		analyticsRoutes.GET("/trends", h.Analytics.Trends)
		analyticsRoutes.GET("/budget-vs-actual", h.Analytics.BudgetVsActual)
		analyticsRoutes.GET("/seasonal", h.Analytics.Seasonal)
		analyticsRoutes.GET("/alerts", h.Analytics.Alerts)
		analyticsRoutes.GET("/health-score", h.Analytics.HealthScore)
	}

	// EventSource cannot send headers, so the stream also accepts ?token=
	api.GET("/events", middleware.Authenticate(auth, true), h.Events.Stream)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, tp coreport.TimeProvider, opts MiddlewareOptions) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, tp))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.ErrorHandler(logger, opts.ExposeInternal))
}
