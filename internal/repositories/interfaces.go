package repositories

import (
	"finance-hub/internal/models"

	"github.com/google/uuid"
)

// Every record kind exposes the same store contract: List with an optional
// sort key ("field" ascending, "-field" descending, "" unspecified), Create,
// BulkCreate, Update with a partial field map, and Delete. Update and Delete
// return the kind's not-found sentinel when the id is unknown.

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	List(sortKey string) ([]models.Account, error)
	GetByID(id uuid.UUID) (*models.Account, error)
	Create(account *models.Account) error
	BulkCreate(accounts []models.Account) ([]models.Account, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*models.Account, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	List(sortKey string) ([]models.Transaction, error)
	ListWithFilters(filters models.TransactionFilters, sortKey string) ([]models.Transaction, error)
	GetByID(id uuid.UUID) (*models.Transaction, error)
	Create(transaction *models.Transaction) error
	BulkCreate(transactions []models.Transaction) ([]models.Transaction, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*models.Transaction, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// SubscriptionRepositoryInterface defines the contract for subscription repository operations
type SubscriptionRepositoryInterface interface {
	List(sortKey string) ([]models.Subscription, error)
	GetByID(id uuid.UUID) (*models.Subscription, error)
	Create(subscription *models.Subscription) error
	BulkCreate(subscriptions []models.Subscription) ([]models.Subscription, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*models.Subscription, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	List(sortKey string) ([]models.Budget, error)
	ListByMonth(monthYear string) ([]models.Budget, error)
	GetByID(id uuid.UUID) (*models.Budget, error)
	Create(budget *models.Budget) error
	BulkCreate(budgets []models.Budget) ([]models.Budget, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*models.Budget, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// UserPrefsRepositoryInterface defines the contract for preference repository operations
type UserPrefsRepositoryInterface interface {
	List(sortKey string) ([]models.UserPrefs, error)
	First() (*models.UserPrefs, error)
	GetByID(id uuid.UUID) (*models.UserPrefs, error)
	Create(prefs *models.UserPrefs) error
	BulkCreate(prefs []models.UserPrefs) ([]models.UserPrefs, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*models.UserPrefs, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}
