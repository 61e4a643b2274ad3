package services

import (
	"context"
	"log/slog"
	"time"

	"finance-hub/internal/aggregator"
	"finance-hub/internal/models"
	"finance-hub/internal/repositories"

	"github.com/patrickmn/go-cache"
)

const (
	dashboardCacheKeyPrefix = "dashboard:"
	topAccountsLimit        = 3
	recentTransactionsLimit = 5
	activeSubscriptionLimit = 4
)

type dashboardService struct {
	loader  snapshotLoader
	cache   *cache.Cache
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

// NewDashboardService creates a dashboard service. Built dashboards are kept
// in dashboardCache until it expires or Invalidate is called.
func NewDashboardService(
	store *repositories.Store,
	dashboardCache *cache.Cache,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &dashboardService{
		loader: snapshotLoader{
			accountRepo:      store.Accounts,
			transactionRepo:  store.Transactions,
			subscriptionRepo: store.Subscriptions,
			prefsRepo:        store.Prefs,
		},
		cache:   dashboardCache,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	now := s.now()
	// Keyed by day so a cached dashboard never outlives the date it was built for.
	cacheKey := dashboardCacheKeyPrefix + models.DateOf(now).String()

	if cached, found := s.cache.Get(cacheKey); found {
		s.metrics.IncrementCounter(MetricDashboardCache, map[string]string{"result": "hit"})
		return cached.(*models.Dashboard), nil
	}
	s.metrics.IncrementCounter(MetricDashboardCache, map[string]string{"result": "miss"})

	startTime := time.Now()
	snap, err := s.loader.load(ctx, withAccounts|withTransactions|withSubscriptions|withPrefs)
	if err != nil {
		s.logger.Error("failed to load records for dashboard", "error", err)
		return nil, err
	}

	dashboard := buildDashboard(snap, now)
	s.cache.Set(cacheKey, dashboard, cache.DefaultExpiration)

	s.metrics.RecordProcessingTime(MetricDashboardBuild, time.Since(startTime))
	s.metrics.RecordGauge(MetricSafeToSpend, dashboard.SafeToSpendToday.InexactFloat64(), nil)
	return dashboard, nil
}

// Invalidate drops every cached dashboard
func (s *dashboardService) Invalidate() {
	s.cache.Flush()
}

func buildDashboard(snap *snapshot, now time.Time) *models.Dashboard {
	prefs := snap.aggregationPrefs()
	monthly := aggregator.MonthlyTotals(snap.Transactions, now)
	active := aggregator.ActiveSubscriptions(snap.Subscriptions)

	topAccounts := snap.Accounts
	if len(topAccounts) > topAccountsLimit {
		topAccounts = topAccounts[:topAccountsLimit]
	}
	shownSubscriptions := active
	if len(shownSubscriptions) > activeSubscriptionLimit {
		shownSubscriptions = shownSubscriptions[:activeSubscriptionLimit]
	}

	return &models.Dashboard{
		GeneratedAt:             now,
		CurrencySymbol:          prefs.CurrencySymbol,
		TotalBalance:            aggregator.TotalBalance(snap.Accounts),
		Month:                   aggregator.CurrentMonth(now).MonthYear(),
		MonthlyTotals:           monthly,
		MonthlySubscriptionCost: aggregator.MonthlySubscriptionCost(snap.Subscriptions),
		ActiveSubscriptionCount: len(active),
		SafeToSpendToday:        aggregator.SafeToSpend(prefs.MonthlyIncome, monthly.Expenses, now),
		DaysRemainingInMonth:    aggregator.DaysRemaining(now),
		TopAccounts:             topAccounts,
		RecentTransactions:      aggregator.RecentTransactions(snap.Transactions, recentTransactionsLimit),
		ActiveSubscriptions:     shownSubscriptions,
	}
}
