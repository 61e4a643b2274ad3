package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Type      string `json:"type" validate:"required,account_type"`
	Last4     string `json:"account_number_last_4" validate:"omitempty,last_four"`
	Category  string `json:"category" validate:"omitempty,spending_category"`
	MonthYear string `json:"month_year" validate:"omitempty,month_year"`
	Filter    string `query:"type_filter" validate:"transaction_type"`
}

func TestValidator_AcceptsValidRequest(t *testing.T) {
	v := NewValidator()

	err := v.Struct(sampleRequest{
		Type:      "Credit Card",
		Last4:     "0042",
		Category:  "Dining",
		MonthYear: "2024-06",
		Filter:    "expense",
	})
	assert.NoError(t, err)
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Struct(sampleRequest{
		Type:      "Crypto",
		Last4:     "12345",
		Category:  "Income",
		MonthYear: "2024-13",
		Filter:    "refund",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	failed := make(map[string]string)
	for _, fe := range validationErrs {
		failed[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"type":                  "account_type",
		"account_number_last_4": "last_four",
		"category":              "spending_category",
		"month_year":            "month_year",
		"type_filter":           "transaction_type",
	}, failed)
}

func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
