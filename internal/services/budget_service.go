package services

import (
	"context"
	"log/slog"
	"time"

	"finance-hub/internal/aggregator"
	"finance-hub/internal/events"
	"finance-hub/internal/models"
	"finance-hub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo     repositories.BudgetRepositoryInterface
	loader         snapshotLoader
	notifier       EventNotifierInterface
	activityLogger ActivityLoggerInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
	now            func() time.Time
}

// NewBudgetService creates a budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	prefsRepo repositories.UserPrefsRepositoryInterface,
	notifier EventNotifierInterface,
	activityLogger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo: budgetRepo,
		loader: snapshotLoader{
			transactionRepo: transactionRepo,
			budgetRepo:      budgetRepo,
			prefsRepo:       prefsRepo,
		},
		notifier:       notifier,
		activityLogger: activityLogger,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *budgetService) ListBudgets(sortKey string) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.List(sortKey)
	if err != nil {
		return nil, storeError(err, nil, nil, "list budgets")
	}
	return budgets, nil
}

// CreateBudget stores a budget. Duplicates for the same category and month
// are not detected.
func (s *budgetService) CreateBudget(budget *models.Budget) (*models.Budget, error) {
	if err := budget.Validate(); err != nil {
		return nil, validationError(err)
	}
	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, storeError(err, nil, nil, "create budget")
	}
	return budget, nil
}

func (s *budgetService) UpdateBudgetLimit(id uuid.UUID, limit decimal.Decimal) (*models.Budget, error) {
	if limit.IsNegative() {
		return nil, ErrInvalidMonthlyLimit
	}

	budget, err := s.budgetRepo.Update(id, map[string]interface{}{"monthly_limit": limit})
	if err != nil {
		return nil, storeError(err, repositories.ErrBudgetNotFound, ErrBudgetNotFound, "update budget limit")
	}

	s.logger.Info("budget limit updated", "budget_id", id, "monthly_limit", limit.String())
	return budget, nil
}

func (s *budgetService) DeleteBudget(id uuid.UUID) error {
	if err := s.budgetRepo.Delete(id); err != nil {
		return storeError(err, repositories.ErrBudgetNotFound, ErrBudgetNotFound, "delete budget")
	}
	return nil
}

// GetOverview refreshes current_spend of every current-month budget, writing
// only the values that changed, and derives totals, statuses and the
// safe-to-spend amount.
func (s *budgetService) GetOverview(ctx context.Context) (*models.BudgetOverview, error) {
	startTime := time.Now()
	now := s.now()

	snap, err := s.loader.load(ctx, withBudgets|withTransactions|withPrefs)
	if err != nil {
		s.logger.Error("failed to load records for budget overview", "error", err)
		return nil, err
	}

	spends := aggregator.SpendByCategory(snap.Budgets, snap.Transactions, now)
	budgets := make([]models.Budget, 0, len(spends))
	refreshed := 0
	var newlyOver []models.Budget

	for _, spend := range spends {
		if spend.Changed {
			if _, err := s.budgetRepo.Update(spend.Budget.ID, map[string]interface{}{"current_spend": spend.Spend}); err != nil {
				return nil, storeError(err, repositories.ErrBudgetNotFound, ErrBudgetNotFound, "refresh budget spend")
			}
			refreshed++
			s.metrics.IncrementCounter(MetricBudgetRefreshWrite, nil)

			if aggregator.ClassifyBudget(spend.Budget).Status == models.BudgetStatusOver {
				newlyOver = append(newlyOver, spend.Budget)
			}
		}
		budgets = append(budgets, spend.Budget)
	}

	window := aggregator.CurrentMonth(now)
	duration := time.Since(startTime)
	s.activityLogger.LogBudgetSpendRefreshed(ctx, window.MonthYear(), refreshed, duration.Milliseconds())
	s.metrics.RecordProcessingTime(MetricBudgetRefreshTime, duration)

	prefs := snap.aggregationPrefs()
	monthly := aggregator.MonthlyTotals(snap.Transactions, now)
	totals := aggregator.SummarizeBudgets(budgets)

	overview := &models.BudgetOverview{
		MonthYear:            window.MonthYear(),
		Budgets:              make([]models.BudgetLine, 0, len(budgets)),
		TotalBudget:          totals.TotalBudget,
		TotalSpent:           totals.TotalSpent,
		Remaining:            totals.Remaining,
		MonthlyExpenses:      monthly.Expenses,
		SafeToSpendToday:     aggregator.SafeToSpend(prefs.MonthlyIncome, monthly.Expenses, now),
		DaysRemainingInMonth: aggregator.DaysRemaining(now),
		RefreshedCount:       refreshed,
		CurrencySymbol:       prefs.CurrencySymbol,
	}

	overLimit := 0
	for _, budget := range budgets {
		status := aggregator.ClassifyBudget(budget)
		if status.Status == models.BudgetStatusOver {
			overLimit++
		}
		overview.Budgets = append(overview.Budgets, models.BudgetLine{
			Budget:            budget,
			Percentage:        status.Percentage,
			DisplayPercentage: status.DisplayPercentage,
			Status:            status.Status,
			Remaining:         budget.MonthlyLimit.Sub(budget.CurrentSpend),
		})
	}
	s.metrics.RecordGauge(MetricBudgetsOverLimit, float64(overLimit), nil)

	for _, budget := range newlyOver {
		s.activityLogger.LogBudgetOverLimit(ctx, budget.ID, budget.Category, budget.CurrentSpend.String(), budget.MonthlyLimit.String())
		s.notifier.Notify(ctx, events.TypeBudgetOverLimit, map[string]interface{}{
			"budget_id":     budget.ID,
			"category":      budget.Category,
			"month_year":    budget.MonthYear,
			"current_spend": budget.CurrentSpend,
			"monthly_limit": budget.MonthlyLimit,
		})
	}

	return overview, nil
}

// CreateMissingBudgets creates a current-month budget with the default limit
// for every spending category that has none yet.
func (s *budgetService) CreateMissingBudgets(ctx context.Context) ([]models.Budget, error) {
	now := s.now()

	snap, err := s.loader.load(ctx, withBudgets)
	if err != nil {
		return nil, err
	}

	monthYear := aggregator.CurrentMonth(now).MonthYear()
	existing := make(map[string]bool)
	for _, budget := range aggregator.CurrentMonthBudgets(snap.Budgets, now) {
		existing[budget.Category] = true
	}

	missing := make([]models.Budget, 0)
	for _, category := range models.SpendingCategories() {
		if existing[category] {
			continue
		}
		missing = append(missing, models.Budget{
			Category:     category,
			MonthlyLimit: models.DefaultMonthlyLimit(category),
			MonthYear:    monthYear,
			CurrentSpend: decimal.Zero,
		})
	}

	if len(missing) == 0 {
		return missing, nil
	}

	created, err := s.budgetRepo.BulkCreate(missing)
	if err != nil {
		return nil, storeError(err, nil, nil, "create missing budgets")
	}

	s.activityLogger.LogBudgetsCreated(ctx, monthYear, len(created))
	for range created {
		s.metrics.IncrementCounter(MetricBudgetsCreated, nil)
	}
	return created, nil
}
