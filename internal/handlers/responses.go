package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"finance-hub/internal/errors"
	"finance-hub/internal/models"
	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through two helpers:
//
//	SendError       client and business rule errors (4xx) with a catalogue code
//	SendSystemError store or unexpected failures; the cause is logged, not returned
//
// Service errors go through handleServiceError, which maps the service
// sentinels onto the catalogue and falls back to SendSystemError.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "Request failed",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// handleServiceError maps a service error onto the error catalogue
func handleServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, services.ErrSubscriptionNotFound):
		return SendError(c, errors.SubscriptionNotFound)
	case stderrors.Is(err, services.ErrBudgetNotFound):
		return SendError(c, errors.BudgetNotFound)
	case stderrors.Is(err, services.ErrSubscriptionAlreadyCanceled):
		return SendError(c, errors.SubscriptionAlreadyCanceled)
	case stderrors.Is(err, services.ErrInvalidSortKey):
		return SendError(c, errors.ValidationInvalidSortKey)
	case stderrors.Is(err, services.ErrInvalidMonthlyLimit),
		stderrors.Is(err, services.ErrInvalidGenerateCount):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrNoAccounts):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrValidation):
		return SendError(c, validationCode(err), errors.WithDetails(err.Error()))
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return SendError(c, errors.SystemServiceUnavailable)
	default:
		return SendSystemError(c, err)
	}
}

// validationCode picks the most specific code for a model validation failure
func validationCode(err error) errors.ErrorCode {
	switch {
	case stderrors.Is(err, models.ErrInvalidAccountType):
		return errors.AccountInvalidType
	case stderrors.Is(err, models.ErrInvalidCategory):
		return errors.TransactionInvalidCategory
	case stderrors.Is(err, models.ErrInvalidBudgetCategory):
		return errors.BudgetInvalidCategory
	case stderrors.Is(err, models.ErrNegativeDailyGoal):
		return errors.PreferencesInvalid
	case stderrors.Is(err, models.ErrInvalidMonthYear),
		stderrors.Is(err, models.ErrTransactionDateRequired),
		stderrors.Is(err, models.ErrRenewalDateRequired):
		return errors.ValidationInvalidDate
	default:
		return errors.ValidationGeneral
	}
}
