package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate, ValidationInvalidSortKey, ValidationInvalidID,
		AccountNotFound, AccountInvalidType,
		TransactionNotFound, TransactionInvalidCategory,
		SubscriptionNotFound, SubscriptionAlreadyCanceled,
		BudgetNotFound, BudgetInvalidCategory,
		PreferencesInvalid,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
		SystemRateLimitExceeded, SystemFeatureDisabled, SystemRouteNotFound,
	}
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Validation General", code: ValidationGeneral, expected: "Validation failed"},
		{name: "Invalid Sort Key", code: ValidationInvalidSortKey, expected: "Invalid sort key"},
		{name: "Subscription Already Canceled", code: SubscriptionAlreadyCanceled, expected: "Subscription is already canceled"},
		{name: "Budget Invalid Category", code: BudgetInvalidCategory, expected: "Budgets can only be set for spending categories"},
		{name: "System Internal Error", code: SystemInternalError, expected: "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.True(IsValidErrorCode(code), string(code))
	}
	s.False(IsValidErrorCode("AUTH_001"))
	s.False(IsValidErrorCode(""))
}

// TestErrorCodeConstants_Uniqueness ensures no two constants share a value
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "duplicate error code %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format checks the DOMAIN_NNN shape
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	pattern := regexp.MustCompile(`^[A-Z]+_[0-9]{3}$`)
	for _, code := range allCodes() {
		s.Regexp(pattern, string(code))
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	s.Len(errorMessages, len(allCodes()))
	for _, code := range allCodes() {
		s.NotEmpty(GetErrorMessage(code))
	}
}
