package dto

import (
	"finance-hub/internal/models"

	"github.com/google/uuid"
)

// CreateTransactionRequest represents the request payload for recording a transaction.
// A positive amount is income, a negative amount an expense.
type CreateTransactionRequest struct {
	AccountID   string         `json:"account_id" validate:"required,uuid"`
	Date        models.Date    `json:"date"`
	Description string         `json:"description" validate:"required,max=500"`
	Amount      LenientDecimal `json:"amount"`
	Category    string         `json:"category" validate:"required,transaction_category"`
	IsRecurring *bool          `json:"is_recurring"`
}

// ToModel converts the request into an unsaved transaction. The account id
// must already have passed validation.
func (r CreateTransactionRequest) ToModel() *models.Transaction {
	return &models.Transaction{
		AccountID:   uuid.MustParse(r.AccountID),
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount.Decimal,
		Category:    r.Category,
		IsRecurring: r.IsRecurring,
	}
}

// TransactionListQuery contains filtering and ordering options for transaction listings
type TransactionListQuery struct {
	Search    string `query:"search"`
	Category  string `query:"category" validate:"omitempty,transaction_category"`
	AccountID string `query:"account_id" validate:"omitempty,uuid"`
	Type      string `query:"type" validate:"transaction_type"`
	Sort      string `query:"sort"`
}

// Filters converts the query into store filters
func (q TransactionListQuery) Filters() models.TransactionFilters {
	filters := models.TransactionFilters{
		Search:   q.Search,
		Category: q.Category,
		Type:     q.Type,
	}
	if id, err := uuid.Parse(q.AccountID); err == nil {
		filters.AccountID = &id
	}
	return filters
}
