package dto

import (
	"finance-hub/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name               string         `json:"name" validate:"required,max=255"`
	Type               string         `json:"type" validate:"required,account_type"`
	Balance            LenientDecimal `json:"balance"`
	BankName           string         `json:"bank_name" validate:"max=255"`
	AccountNumberLast4 string         `json:"account_number_last_4" validate:"omitempty,last_four"`
	IsDemo             bool           `json:"is_demo"`
}

// ToModel converts the request into an unsaved account
func (r CreateAccountRequest) ToModel() *models.Account {
	return &models.Account{
		Name:               r.Name,
		Type:               r.Type,
		Balance:            r.Balance.Decimal,
		BankName:           r.BankName,
		AccountNumberLast4: r.AccountNumberLast4,
		IsDemo:             r.IsDemo,
	}
}

// UpdateAccountRequest is a partial update; only fields present in the body change
type UpdateAccountRequest struct {
	Name               *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Type               *string         `json:"type" validate:"omitempty,account_type"`
	Balance            *LenientDecimal `json:"balance"`
	BankName           *string         `json:"bank_name" validate:"omitempty,max=255"`
	AccountNumberLast4 *string         `json:"account_number_last_4" validate:"omitempty,last_four"`
	IsDemo             *bool           `json:"is_demo"`
}

// Fields returns the column updates carried by the request
func (r UpdateAccountRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Type != nil {
		fields["type"] = *r.Type
	}
	if r.Balance != nil {
		fields["balance"] = r.Balance.Decimal
	}
	if r.BankName != nil {
		fields["bank_name"] = *r.BankName
	}
	if r.AccountNumberLast4 != nil {
		fields["account_number_last_4"] = *r.AccountNumberLast4
	}
	if r.IsDemo != nil {
		fields["is_demo"] = *r.IsDemo
	}
	return fields
}

// Account Response DTOs

// ConnectBankResponse represents the accounts created by the simulated bank connection
type ConnectBankResponse struct {
	Accounts []models.Account `json:"accounts"`
	Message  string           `json:"message"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
