package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"finance-hub/internal/models"

	"github.com/go-playground/validator/v10"
)

var lastFourPattern = regexp.MustCompile(`^\d{4}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("transaction_category", validateTransactionCategory)
	_ = v.RegisterValidation("spending_category", validateSpendingCategory)
	_ = v.RegisterValidation("subscription_category", validateSubscriptionCategory)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("month_year", validateMonthYear)
	_ = v.RegisterValidation("last_four", validateLastFour)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(fl.Field().String())
}

func validateTransactionCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateSpendingCategory accepts every transaction category except Income
func validateSpendingCategory(fl validator.FieldLevel) bool {
	return models.IsSpendingCategory(fl.Field().String())
}

func validateSubscriptionCategory(fl validator.FieldLevel) bool {
	return models.IsValidSubscriptionCategory(fl.Field().String())
}

// validateTransactionType accepts the income/expense list filter; empty means no filter
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateMonthYear validates the YYYY-MM budget month
func validateMonthYear(fl validator.FieldLevel) bool {
	return models.IsValidMonthYear(fl.Field().String())
}

func validateLastFour(fl validator.FieldLevel) bool {
	return lastFourPattern.MatchString(fl.Field().String())
}
