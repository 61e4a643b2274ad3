package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MonthYearLayout = "2006-01"

	BudgetStatusGood    = "good"
	BudgetStatusWarning = "warning"
	BudgetStatusOver    = "over"
)

var (
	ErrInvalidBudgetCategory = errors.New("budget category must be a spending category")
	ErrInvalidMonthYear      = errors.New("month_year must have the form YYYY-MM")
	ErrNegativeMonthlyLimit  = errors.New("monthly limit cannot be negative")
	ErrNegativeCurrentSpend  = errors.New("current spend cannot be negative")

	monthYearPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)
)

// Budget is a monthly spending limit for one category. CurrentSpend is a cached
// projection of that month's expenses and is rewritten by budget refreshes.
type Budget struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category     string          `gorm:"type:varchar(50);not null;index:idx_budgets_category_month" json:"category"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"monthly_limit"`
	MonthYear    string          `gorm:"type:varchar(7);not null;index:idx_budgets_category_month" json:"month_year"`
	CurrentSpend decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_spend"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if !IsSpendingCategory(b.Category) {
		return ErrInvalidBudgetCategory
	}
	if !IsValidMonthYear(b.MonthYear) {
		return ErrInvalidMonthYear
	}
	if b.MonthlyLimit.IsNegative() {
		return ErrNegativeMonthlyLimit
	}
	if b.CurrentSpend.IsNegative() {
		return ErrNegativeCurrentSpend
	}
	return nil
}

// TableName specifies the table name for GORM
func (Budget) TableName() string {
	return "budgets"
}

// MonthYearOf formats the month containing t as YYYY-MM
func MonthYearOf(t time.Time) string {
	return t.Format(MonthYearLayout)
}

// IsValidMonthYear checks the YYYY-MM format
func IsValidMonthYear(monthYear string) bool {
	return monthYearPattern.MatchString(monthYear)
}

// DefaultMonthlyLimit is the limit given to budgets created automatically
func DefaultMonthlyLimit(category string) decimal.Decimal {
	switch category {
	case CategoryRent:
		return decimal.NewFromInt(1500)
	case CategoryGroceries:
		return decimal.NewFromInt(400)
	default:
		return decimal.NewFromInt(200)
	}
}
