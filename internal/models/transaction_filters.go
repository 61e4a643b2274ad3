package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var ErrInvalidTransactionType = errors.New("transaction type must be income or expense")

// TransactionFilters contains filtering options for transaction listings
type TransactionFilters struct {
	Search    string
	Category  string
	AccountID *uuid.UUID
	Type      string
}

// IsEmpty reports whether no filter is set
func (f TransactionFilters) IsEmpty() bool {
	return f.Search == "" && f.Category == "" && f.AccountID == nil && f.Type == ""
}

// Matches reports whether a transaction passes every filter that is set.
// Search is a case-insensitive substring match on the description.
func (f TransactionFilters) Matches(t *Transaction) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.AccountID != nil && t.AccountID != *f.AccountID {
		return false
	}
	switch f.Type {
	case TransactionTypeIncome:
		return t.IsIncome()
	case TransactionTypeExpense:
		return t.IsExpense()
	}
	return true
}

// IsValidTransactionType checks the income/expense filter value
func IsValidTransactionType(value string) bool {
	return value == "" || value == TransactionTypeIncome || value == TransactionTypeExpense
}
