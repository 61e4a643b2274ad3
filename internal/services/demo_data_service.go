package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-hub/internal/aggregator"
	"finance-hub/internal/events"
	"finance-hub/internal/models"
	"finance-hub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const maxGeneratedTransactions = 500

type demoDataService struct {
	store          *repositories.Store
	generator      TransactionGeneratorInterface
	notifier       EventNotifierInterface
	activityLogger ActivityLoggerInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
	now            func() time.Time
}

// NewDemoDataService creates the service behind demo seeding, wiping and
// record statistics
func NewDemoDataService(
	store *repositories.Store,
	generator TransactionGeneratorInterface,
	notifier EventNotifierInterface,
	activityLogger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DemoDataServiceInterface {
	return &demoDataService{
		store:          store,
		generator:      generator,
		notifier:       notifier,
		activityLogger: activityLogger,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

// SeedDemoData wipes the store and loads the canned demo data set
func (s *demoDataService) SeedDemoData(ctx context.Context) (*models.RecordCounts, error) {
	if err := s.WipeAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear previous data: %w", err)
	}

	now := s.now()
	today := models.DateOf(now)

	accounts, err := s.store.Accounts.BulkCreate(demoAccounts())
	if err != nil {
		return nil, storeError(err, nil, nil, "create demo accounts")
	}

	var checkingID, creditID uuid.UUID
	for _, account := range accounts {
		switch account.Name {
		case "Demo Checking":
			checkingID = account.ID
		case "Demo Credit Card":
			creditID = account.ID
		}
	}
	if checkingID == uuid.Nil || creditID == uuid.Nil {
		return nil, errors.New("demo accounts were not created")
	}

	transactions, err := s.store.Transactions.BulkCreate(demoTransactions(checkingID, creditID, today))
	if err != nil {
		return nil, storeError(err, nil, nil, "create demo transactions")
	}

	subscriptions, err := s.store.Subscriptions.BulkCreate(demoSubscriptions(today))
	if err != nil {
		return nil, storeError(err, nil, nil, "create demo subscriptions")
	}

	budgets, err := s.store.Budgets.BulkCreate(demoBudgets(aggregator.CurrentMonth(now).MonthYear()))
	if err != nil {
		return nil, storeError(err, nil, nil, "create demo budgets")
	}

	prefs := &models.UserPrefs{
		MonthlyIncome:        decimal.NewFromInt(5000),
		CurrencySymbol:       models.DefaultCurrencySymbol,
		NotificationsEnabled: true,
	}
	if err := s.store.Prefs.Create(prefs); err != nil {
		return nil, storeError(err, nil, nil, "create demo preferences")
	}

	counts := models.RecordCounts{
		Accounts:      int64(len(accounts)),
		Transactions:  int64(len(transactions)),
		Subscriptions: int64(len(subscriptions)),
		Budgets:       int64(len(budgets)),
	}

	s.activityLogger.LogDemoDataSeeded(ctx, counts)
	s.metrics.IncrementCounter(MetricDemoDataOperation, map[string]string{"operation": "seed"})
	s.notifier.Notify(ctx, events.TypeDemoDataSeeded, counts)
	return &counts, nil
}

// SeedIfEmpty seeds demo data when no account exists yet
func (s *demoDataService) SeedIfEmpty(ctx context.Context) (bool, error) {
	count, err := s.store.Accounts.Count()
	if err != nil {
		return false, storeError(err, nil, nil, "count accounts")
	}
	if count > 0 {
		return false, nil
	}

	if _, err := s.SeedDemoData(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// WipeAll deletes every record, one by one, transactions first and
// preferences last. A failing kind is logged and the remaining kinds are
// still cleared; the failures are returned together.
func (s *demoDataService) WipeAll(ctx context.Context) error {
	steps := []struct {
		kind string
		wipe func() error
	}{
		{"transactions", s.wipeTransactions},
		{"subscriptions", s.wipeSubscriptions},
		{"budgets", s.wipeBudgets},
		{"accounts", s.wipeAccounts},
		{"user preferences", s.wipePrefs},
	}

	var errs []error
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.wipe(); err != nil {
			s.logger.Error("failed to clear records", "kind", step.kind, "error", err)
			errs = append(errs, fmt.Errorf("failed to clear %s: %w", step.kind, err))
		}
	}

	s.activityLogger.LogDataWiped(ctx)
	s.metrics.IncrementCounter(MetricDemoDataOperation, map[string]string{"operation": "wipe"})
	return errors.Join(errs...)
}

func (s *demoDataService) wipeTransactions() error {
	return wipeKind(s.store.Transactions.List, transactionID, s.store.Transactions.Delete)
}

func (s *demoDataService) wipeSubscriptions() error {
	return wipeKind(s.store.Subscriptions.List, subscriptionID, s.store.Subscriptions.Delete)
}

func (s *demoDataService) wipeBudgets() error {
	return wipeKind(s.store.Budgets.List, budgetID, s.store.Budgets.Delete)
}

func (s *demoDataService) wipeAccounts() error {
	return wipeKind(s.store.Accounts.List, accountID, s.store.Accounts.Delete)
}

func (s *demoDataService) wipePrefs() error {
	return wipeKind(s.store.Prefs.List, prefsID, s.store.Prefs.Delete)
}

func wipeKind[T any](list func(string) ([]T, error), id func(*T) uuid.UUID, remove func(uuid.UUID) error) error {
	records, err := list("")
	if err != nil {
		return err
	}
	for i := range records {
		if err := remove(id(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

func transactionID(t *models.Transaction) uuid.UUID   { return t.ID }
func subscriptionID(s *models.Subscription) uuid.UUID { return s.ID }
func budgetID(b *models.Budget) uuid.UUID             { return b.ID }
func accountID(a *models.Account) uuid.UUID           { return a.ID }
func prefsID(p *models.UserPrefs) uuid.UUID           { return p.ID }

// Stats counts the stored records of every kind
func (s *demoDataService) Stats(ctx context.Context) (*models.RecordCounts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		counts models.RecordCounts
		g      errgroup.Group
	)
	g.Go(func() (err error) {
		counts.Accounts, err = s.store.Accounts.Count()
		return err
	})
	g.Go(func() (err error) {
		counts.Transactions, err = s.store.Transactions.Count()
		return err
	})
	g.Go(func() (err error) {
		counts.Subscriptions, err = s.store.Subscriptions.Count()
		return err
	})
	g.Go(func() (err error) {
		counts.Budgets, err = s.store.Budgets.Count()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	return &counts, nil
}

// GenerateTransactions creates count random transactions spread over the
// existing accounts
func (s *demoDataService) GenerateTransactions(ctx context.Context, count int) ([]models.Transaction, error) {
	if count < 1 || count > maxGeneratedTransactions {
		return nil, ErrInvalidGenerateCount
	}

	accounts, err := s.store.Accounts.List("")
	if err != nil {
		return nil, storeError(err, nil, nil, "list accounts")
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	ids := make([]uuid.UUID, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}

	created, err := s.store.Transactions.BulkCreate(s.generator.GenerateTransactions(ids, count, s.now()))
	if err != nil {
		return nil, storeError(err, nil, nil, "create generated transactions")
	}

	s.logger.InfoContext(ctx, "random transactions generated", "count", len(created))
	s.metrics.IncrementCounter(MetricDemoDataOperation, map[string]string{"operation": "generate"})
	return created, nil
}

func demoAccounts() []models.Account {
	return append(DemoBankAccounts(), models.Account{
		Name:               "Savings",
		Type:               models.AccountTypeSavings,
		Balance:            decimal.NewFromInt(10000),
		BankName:           "Demo Bank",
		AccountNumberLast4: "9012",
		IsDemo:             true,
	})
}

func demoTransactions(checkingID, creditID uuid.UUID, today models.Date) []models.Transaction {
	recurring := true
	tx := func(accountID uuid.UUID, daysAgo int, description, amount, category string) models.Transaction {
		return models.Transaction{
			AccountID:   accountID,
			Date:        today.AddDays(-daysAgo),
			Description: description,
			Amount:      decimal.RequireFromString(amount),
			Category:    category,
		}
	}

	netflix := tx(creditID, 3, "Netflix", "-15.99", models.CategorySubscriptions)
	netflix.IsRecurring = &recurring
	spotify := tx(creditID, 5, "Spotify", "-9.99", models.CategorySubscriptions)
	spotify.IsRecurring = &recurring

	return []models.Transaction{
		tx(checkingID, 15, "Paycheck", "2500", models.CategoryIncome),
		tx(checkingID, 30, "Paycheck", "2500", models.CategoryIncome),
		tx(checkingID, 1, "Rent", "-1500", models.CategoryRent),
		netflix,
		spotify,
		tx(creditID, 3, "Groceries at Safeway", "-124.30", models.CategoryGroceries),
		tx(creditID, 10, "Groceries at Trader Joe's", "-65.40", models.CategoryGroceries),
		tx(creditID, 4, "Dinner with friends", "-55.00", models.CategoryDining),
		tx(creditID, 11, "Amazon Purchase", "-49.99", models.CategoryShopping),
		tx(creditID, 8, "Gas at Shell", "-45.00", models.CategoryTransportation),
	}
}

func demoSubscriptions(today models.Date) []models.Subscription {
	return []models.Subscription{
		{
			Name:            "Netflix",
			MonthlyCost:     decimal.RequireFromString("15.99"),
			NextRenewalDate: today.AddDays(27),
			Category:        models.SubscriptionCategoryEntertainment,
		},
		{
			Name:            "Spotify",
			MonthlyCost:     decimal.RequireFromString("9.99"),
			NextRenewalDate: today.AddDays(25),
			Category:        models.SubscriptionCategoryMusic,
		},
	}
}

func demoBudgets(monthYear string) []models.Budget {
	categories := models.SpendingCategories()
	budgets := make([]models.Budget, 0, len(categories))
	for _, category := range categories {
		budgets = append(budgets, models.Budget{
			Category:     category,
			MonthlyLimit: models.DefaultMonthlyLimit(category),
			MonthYear:    monthYear,
			CurrentSpend: decimal.Zero,
		})
	}
	return budgets
}
