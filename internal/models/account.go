package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "Checking"
	AccountTypeSavings    = "Savings"
	AccountTypeCreditCard = "Credit Card"
	AccountTypeInvestment = "Investment"
)

var (
	ErrInvalidAccountType  = errors.New("invalid account type")
	ErrAccountNameRequired = errors.New("account name is required")
	ErrInvalidAccountLast4 = errors.New("account number last 4 must be exactly 4 digits")
	lastFourDigitsPattern  = regexp.MustCompile(`^[0-9]{4}$`)
)

// Account represents a financial account the user tracks. Balance is signed:
// credit cards usually carry a negative balance.
type Account struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name               string          `gorm:"type:varchar(255);not null" json:"name"`
	Type               string          `gorm:"type:varchar(20);not null" json:"type"`
	Balance            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	BankName           string          `gorm:"type:varchar(255)" json:"bank_name,omitempty"`
	AccountNumberLast4 string          `gorm:"column:account_number_last_4;type:varchar(4)" json:"account_number_last_4,omitempty"`
	IsDemo             bool            `gorm:"not null;default:false" json:"is_demo"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameRequired
	}

	if !IsValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}

	if a.AccountNumberLast4 != "" && !lastFourDigitsPattern.MatchString(a.AccountNumberLast4) {
		return ErrInvalidAccountLast4
	}

	return nil
}

// TableName specifies the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard, AccountTypeInvestment:
		return true
	default:
		return false
	}
}

// AllAccountTypes returns every supported account type
func AllAccountTypes() []string {
	return []string{AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard, AccountTypeInvestment}
}
