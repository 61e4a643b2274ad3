package server

import (
	"log/slog"

	"finance-hub/internal/config"
	"finance-hub/internal/events"
	"finance-hub/internal/repositories"
	"finance-hub/internal/services"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Services bundles the domain services exposed over HTTP
type Services struct {
	Accounts      services.AccountServiceInterface
	Transactions  services.TransactionServiceInterface
	Subscriptions services.SubscriptionServiceInterface
	Budgets       services.BudgetServiceInterface
	Preferences   services.PreferencesServiceInterface
	Dashboard     services.DashboardServiceInterface
	Export        services.ExportServiceInterface
	DemoData      services.DemoDataServiceInterface
}

// NewServices wires every service on top of one database handle. Domain
// metrics are registered with reg; events go to publisher.
func NewServices(cfg *config.Config, db *gorm.DB, publisher events.Publisher, reg prometheus.Registerer, logger *slog.Logger) *Services {
	store := repositories.NewStore(db)

	metrics := services.NewPrometheusMetrics(reg)
	activityLogger := services.NewActivityLogger(logger)
	breaker := services.NewEventCircuitBreaker(activityLogger, metrics)
	notifier := services.NewEventNotifier(publisher, breaker, activityLogger, metrics)
	dashboardCache := cache.New(cfg.Cache.DashboardTTL, cfg.Cache.CleanupInterval)

	return &Services{
		Accounts:      services.NewAccountService(store.Accounts, activityLogger, metrics, cfg.Demo.BankConnectDelay, logger),
		Transactions:  services.NewTransactionService(store.Transactions, logger),
		Subscriptions: services.NewSubscriptionService(store.Subscriptions, store.Transactions, notifier, activityLogger, metrics, logger),
		Budgets:       services.NewBudgetService(store.Budgets, store.Transactions, store.Prefs, notifier, activityLogger, metrics, logger),
		Preferences:   services.NewPreferencesService(store.Prefs, logger),
		Dashboard:     services.NewDashboardService(store, dashboardCache, metrics, logger),
		Export:        services.NewExportService(store, activityLogger, metrics, logger),
		DemoData:      services.NewDemoDataService(store, services.NewTransactionGenerator(), notifier, activityLogger, metrics, logger),
	}
}
