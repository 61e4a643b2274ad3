package repositories

import "gorm.io/gorm"

// Store groups the repositories of every record kind
type Store struct {
	Accounts      AccountRepositoryInterface
	Transactions  TransactionRepositoryInterface
	Subscriptions SubscriptionRepositoryInterface
	Budgets       BudgetRepositoryInterface
	Prefs         UserPrefsRepositoryInterface
}

// NewStore creates all repositories on top of one database handle
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Accounts:      NewAccountRepository(db),
		Transactions:  NewTransactionRepository(db),
		Subscriptions: NewSubscriptionRepository(db),
		Budgets:       NewBudgetRepository(db),
		Prefs:         NewUserPrefsRepository(db),
	}
}
