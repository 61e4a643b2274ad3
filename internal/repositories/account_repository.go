package repositories

import (
	"errors"

	"finance-hub/internal/models"

	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("account not found")

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	*recordStore[models.Account]
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		recordStore: newRecordStore[models.Account](db, "accounts", ErrAccountNotFound,
			"name", "type", "balance", "bank_name", "created_at", "updated_at"),
	}
}
