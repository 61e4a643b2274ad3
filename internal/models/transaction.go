package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategory         = errors.New("invalid transaction category")
	ErrTransactionDateRequired = errors.New("transaction date is required")
	ErrDescriptionRequired     = errors.New("transaction description is required")
	ErrAccountIDRequired       = errors.New("transaction account ID is required")
)

// Transaction is a single dated movement of money on an account. A positive
// amount is income, a negative amount is an expense.
type Transaction struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID               uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Date                    Date            `gorm:"not null;index" json:"date"`
	Description             string          `gorm:"type:text;not null" json:"description"`
	Amount                  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category                string          `gorm:"type:varchar(50);not null;index" json:"category"`
	IsRecurring             *bool           `json:"is_recurring,omitempty"`
	DetectedFromTransaction *uuid.UUID      `gorm:"type:uuid" json:"detected_from_transaction,omitempty"`
	CreatedAt               time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt               time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return ErrAccountIDRequired
	}
	if t.Date.IsEmpty() {
		return ErrTransactionDateRequired
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}
	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// TableName specifies the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// IsExpense reports whether the transaction moves money out
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction moves money in
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// Recurring reports the is_recurring flag, treating an unset flag as false
func (t *Transaction) Recurring() bool {
	return t.IsRecurring != nil && *t.IsRecurring
}
