package server

import (
	"net/http"

	"finance-hub/internal/config"
	"finance-hub/internal/handlers"
	"finance-hub/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// NewRouter builds the Echo instance with middleware and every route
func NewRouter(cfg *config.Config, db *gorm.DB, svc *Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsDevelopment()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
	}))
	e.Use(echomw.BodyLimit("1M"))

	health := handlers.NewHealthCheckHandler(db)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1",
		middleware.RateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		middleware.InvalidateOnWrite(svc.Dashboard),
	)

	accounts := handlers.NewAccountHandler(svc.Accounts)
	api.GET("/accounts", accounts.ListAccounts)
	api.POST("/accounts", accounts.CreateAccount)
	api.POST("/accounts/connect-demo", accounts.ConnectDemoBank)
	api.GET("/accounts/:id", accounts.GetAccount)
	api.PATCH("/accounts/:id", accounts.UpdateAccount)
	api.DELETE("/accounts/:id", accounts.DeleteAccount)

	transactions := handlers.NewTransactionHandler(svc.Transactions)
	api.GET("/transactions", transactions.ListTransactions)
	api.POST("/transactions", transactions.CreateTransaction)
	api.GET("/transactions/:id", transactions.GetTransaction)
	api.DELETE("/transactions/:id", transactions.DeleteTransaction)
	api.GET("/transactions/:id/explanation", transactions.ExplainTransaction)

	subscriptions := handlers.NewSubscriptionHandler(svc.Subscriptions)
	api.GET("/subscriptions", subscriptions.ListSubscriptions)
	api.POST("/subscriptions", subscriptions.CreateSubscription)
	api.GET("/subscriptions/summary", subscriptions.GetSummary)
	api.POST("/subscriptions/detect", subscriptions.DetectSubscriptions)
	api.POST("/subscriptions/:id/cancel", subscriptions.CancelSubscription)
	api.GET("/subscriptions/:id/cancel-guide", subscriptions.GetCancelGuide)
	api.DELETE("/subscriptions/:id", subscriptions.DeleteSubscription)

	budgets := handlers.NewBudgetHandler(svc.Budgets)
	api.GET("/budgets", budgets.ListBudgets)
	api.POST("/budgets", budgets.CreateBudget)
	api.GET("/budgets/overview", budgets.GetOverview)
	api.POST("/budgets/create-missing", budgets.CreateMissingBudgets)
	api.PATCH("/budgets/:id", budgets.UpdateBudgetLimit)
	api.DELETE("/budgets/:id", budgets.DeleteBudget)

	preferences := handlers.NewPreferencesHandler(svc.Preferences)
	api.GET("/preferences", preferences.GetPreferences)
	api.PUT("/preferences", preferences.SavePreferences)

	api.GET("/dashboard", handlers.NewDashboardHandler(svc.Dashboard).GetDashboard)

	export := handlers.NewExportHandler(svc.Export)
	api.GET("/export/transactions.csv", export.ExportTransactionsCSV)
	api.GET("/export/data.json", export.ExportJSON)

	settings := handlers.NewSettingsHandler(svc.DemoData)
	api.GET("/settings/stats", settings.GetStats)
	api.POST("/settings/demo-data", settings.SeedDemoData)
	api.DELETE("/settings/data", settings.WipeAll)

	if cfg.Demo.GeneratorEnabled {
		dev := handlers.NewDevHandler(svc.DemoData)
		api.POST("/dev/transactions/generate", dev.GenerateTransactions)
	}

	return e
}
