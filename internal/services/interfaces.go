package services

import (
	"context"
	"time"

	"finance-hub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	ListAccounts(sortKey string) ([]models.Account, error)
	GetAccount(id uuid.UUID) (*models.Account, error)
	CreateAccount(account *models.Account) (*models.Account, error)
	UpdateAccount(id uuid.UUID, fields map[string]interface{}) (*models.Account, error)
	DeleteAccount(id uuid.UUID) error
	ConnectDemoBank(ctx context.Context) ([]models.Account, error)
}

// TransactionServiceInterface defines transaction operations. Transactions
// have no edit path.
type TransactionServiceInterface interface {
	ListTransactions(filters models.TransactionFilters, sortKey string) ([]models.Transaction, error)
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	CreateTransaction(transaction *models.Transaction) (*models.Transaction, error)
	DeleteTransaction(id uuid.UUID) error
	ExplainTransaction(id uuid.UUID) (*models.TransactionExplanation, error)
}

// SubscriptionServiceInterface defines subscription operations including
// recurring-charge detection
type SubscriptionServiceInterface interface {
	ListSubscriptions(sortKey string) ([]models.Subscription, error)
	CreateSubscription(subscription *models.Subscription) (*models.Subscription, error)
	CancelSubscription(ctx context.Context, id uuid.UUID) (*models.Subscription, error)
	DeleteSubscription(id uuid.UUID) error
	GetCancelGuide(id uuid.UUID) (*models.CancelGuide, error)
	DetectSubscriptions(ctx context.Context) ([]models.Subscription, error)
	GetSummary(ctx context.Context) (*models.SubscriptionSummary, error)
}

// BudgetServiceInterface defines budget operations for the current month
type BudgetServiceInterface interface {
	ListBudgets(sortKey string) ([]models.Budget, error)
	CreateBudget(budget *models.Budget) (*models.Budget, error)
	UpdateBudgetLimit(id uuid.UUID, limit decimal.Decimal) (*models.Budget, error)
	DeleteBudget(id uuid.UUID) error
	GetOverview(ctx context.Context) (*models.BudgetOverview, error)
	CreateMissingBudgets(ctx context.Context) ([]models.Budget, error)
}

// PreferencesServiceInterface reads and writes the single preferences record
type PreferencesServiceInterface interface {
	GetPreferences() (prefs *models.UserPrefs, stored bool, err error)
	SavePreferences(prefs *models.UserPrefs) (*models.UserPrefs, error)
}

// DashboardServiceInterface builds the home screen summary
type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
	Invalidate()
}

// ExportServiceInterface produces downloadable exports
type ExportServiceInterface interface {
	ExportTransactionsCSV(ctx context.Context) (filename string, content []byte, err error)
	ExportJSON(ctx context.Context) (filename string, export *models.DataExport, err error)
}

// DemoDataServiceInterface manages demo data and record statistics
type DemoDataServiceInterface interface {
	SeedDemoData(ctx context.Context) (*models.RecordCounts, error)
	SeedIfEmpty(ctx context.Context) (bool, error)
	WipeAll(ctx context.Context) error
	Stats(ctx context.Context) (*models.RecordCounts, error)
	GenerateTransactions(ctx context.Context, count int) ([]models.Transaction, error)
}

// TransactionGeneratorInterface produces random transactions for development
type TransactionGeneratorInterface interface {
	GetMerchantPool() []MerchantInfo
	SelectRandomMerchant() MerchantInfo
	GenerateAmount(category string) decimal.Decimal
	GenerateDate(start, end models.Date) models.Date
	GenerateTransactions(accountIDs []uuid.UUID, count int, now time.Time) []models.Transaction
}

// MetricsRecorderInterface records domain metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ActivityLoggerInterface emits structured log records for domain activity
type ActivityLoggerInterface interface {
	LogSubscriptionsDetected(ctx context.Context, proposals int, durationMs int64)
	LogSubscriptionCanceled(ctx context.Context, subscriptionID uuid.UUID, name string)
	LogBudgetSpendRefreshed(ctx context.Context, monthYear string, refreshed int, durationMs int64)
	LogBudgetsCreated(ctx context.Context, monthYear string, created int)
	LogBudgetOverLimit(ctx context.Context, budgetID uuid.UUID, category string, spend, limit string)
	LogDemoDataSeeded(ctx context.Context, counts models.RecordCounts)
	LogDataWiped(ctx context.Context)
	LogDemoBankConnected(ctx context.Context, accounts int)
	LogExportGenerated(ctx context.Context, format string, records int)
	LogEventPublishFailed(ctx context.Context, eventType string, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

// CircuitBreakerInterface guards calls to an unreliable dependency
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// EventNotifierInterface publishes domain events without failing the caller
type EventNotifierInterface interface {
	Notify(ctx context.Context, eventType string, payload interface{})
}
