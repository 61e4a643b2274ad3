package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral        ErrorCode = "VALIDATION_001"
	ValidationRequiredField  ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat  ErrorCode = "VALIDATION_003"
	ValidationOutOfRange     ErrorCode = "VALIDATION_004"
	ValidationInvalidDate    ErrorCode = "VALIDATION_005"
	ValidationInvalidSortKey ErrorCode = "VALIDATION_006"
	ValidationInvalidID      ErrorCode = "VALIDATION_007"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound    ErrorCode = "ACCOUNT_001"
	AccountInvalidType ErrorCode = "ACCOUNT_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound        ErrorCode = "TRANSACTION_001"
	TransactionInvalidCategory ErrorCode = "TRANSACTION_002"
)

// Subscription error codes (SUBSCRIPTION_*)
const (
	SubscriptionNotFound        ErrorCode = "SUBSCRIPTION_001"
	SubscriptionAlreadyCanceled ErrorCode = "SUBSCRIPTION_002"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound        ErrorCode = "BUDGET_001"
	BudgetInvalidCategory ErrorCode = "BUDGET_002"
)

// Preferences error codes (PREFERENCES_*)
const (
	PreferencesInvalid ErrorCode = "PREFERENCES_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemFeatureDisabled    ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:        "Validation failed",
	ValidationRequiredField:  "Required field is missing",
	ValidationInvalidFormat:  "Invalid format",
	ValidationOutOfRange:     "Value is out of allowed range",
	ValidationInvalidDate:    "Invalid date, expected YYYY-MM-DD",
	ValidationInvalidSortKey: "Invalid sort key",
	ValidationInvalidID:      "Invalid identifier format",

	AccountNotFound:    "Account not found",
	AccountInvalidType: "Invalid account type",

	TransactionNotFound:        "Transaction not found",
	TransactionInvalidCategory: "Invalid transaction category",

	SubscriptionNotFound:        "Subscription not found",
	SubscriptionAlreadyCanceled: "Subscription is already canceled",

	BudgetNotFound:        "Budget not found",
	BudgetInvalidCategory: "Budgets can only be set for spending categories",

	PreferencesInvalid: "Invalid preferences",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "A database error occurred. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable. Please try again later",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemFeatureDisabled:    "This feature is disabled in the current environment",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
