package services

import (
	"context"
	"errors"
	"fmt"

	"finance-hub/internal/models"
	"finance-hub/internal/repositories"

	"golang.org/x/sync/errgroup"
)

type recordSet uint8

const (
	withAccounts recordSet = 1 << iota
	withTransactions
	withSubscriptions
	withBudgets
	withPrefs
)

// transactionOrder is the order transactions are handed to the aggregator:
// oldest first, so the first member of a detected group is the earliest charge.
const transactionOrder = "date"

// snapshot is a point-in-time read of the record kinds a computation needs.
// Prefs is nil when no preferences are stored.
type snapshot struct {
	Accounts      []models.Account
	Transactions  []models.Transaction
	Subscriptions []models.Subscription
	Budgets       []models.Budget
	Prefs         *models.UserPrefs
}

// snapshotLoader fetches independent record kinds concurrently and joins
// before returning. The reads are not isolated from concurrent writers.
type snapshotLoader struct {
	accountRepo      repositories.AccountRepositoryInterface
	transactionRepo  repositories.TransactionRepositoryInterface
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	budgetRepo       repositories.BudgetRepositoryInterface
	prefsRepo        repositories.UserPrefsRepositoryInterface
}

func (l snapshotLoader) load(ctx context.Context, sets recordSet) (*snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		snap snapshot
		g    errgroup.Group
	)

	if sets&withAccounts != 0 {
		g.Go(func() error {
			accounts, err := l.accountRepo.List("")
			if err != nil {
				return fmt.Errorf("failed to load accounts: %w", err)
			}
			snap.Accounts = accounts
			return nil
		})
	}
	if sets&withTransactions != 0 {
		g.Go(func() error {
			transactions, err := l.transactionRepo.List(transactionOrder)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}
			snap.Transactions = transactions
			return nil
		})
	}
	if sets&withSubscriptions != 0 {
		g.Go(func() error {
			subscriptions, err := l.subscriptionRepo.List("")
			if err != nil {
				return fmt.Errorf("failed to load subscriptions: %w", err)
			}
			snap.Subscriptions = subscriptions
			return nil
		})
	}
	if sets&withBudgets != 0 {
		g.Go(func() error {
			budgets, err := l.budgetRepo.List("")
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}
			snap.Budgets = budgets
			return nil
		})
	}
	if sets&withPrefs != 0 {
		g.Go(func() error {
			prefs, err := l.prefsRepo.First()
			if err != nil {
				if errors.Is(err, repositories.ErrUserPrefsNotFound) {
					return nil
				}
				return fmt.Errorf("failed to load preferences: %w", err)
			}
			snap.Prefs = prefs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// aggregationPrefs returns the stored preferences or the aggregation defaults
func (s *snapshot) aggregationPrefs() models.UserPrefs {
	if s.Prefs != nil {
		return *s.Prefs
	}
	return models.AggregationDefaults()
}
