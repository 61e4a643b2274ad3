package repositories

import (
	"errors"
	"strings"

	"finance-hub/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	*recordStore[models.Transaction]
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		recordStore: newRecordStore[models.Transaction](db, "transactions", ErrTransactionNotFound,
			"date", "amount", "description", "category", "created_at"),
	}
}

// ListWithFilters lists transactions matching every filter that is set
func (r *transactionRepository) ListWithFilters(filters models.TransactionFilters, sortKey string) ([]models.Transaction, error) {
	query := r.db.Model(&models.Transaction{})

	if filters.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	switch filters.Type {
	case models.TransactionTypeIncome:
		query = query.Where("amount > 0")
	case models.TransactionTypeExpense:
		query = query.Where("amount < 0")
	}

	return r.find(query, sortKey)
}
