package services

import (
	"errors"
	"fmt"

	"finance-hub/internal/models"
	"finance-hub/internal/repositories"
)

var (
	ErrAccountNotFound             = errors.New("account not found")
	ErrTransactionNotFound         = errors.New("transaction not found")
	ErrSubscriptionNotFound        = errors.New("subscription not found")
	ErrBudgetNotFound              = errors.New("budget not found")
	ErrInvalidSortKey              = errors.New("invalid sort key")
	ErrValidation                  = errors.New("validation failed")
	ErrSubscriptionAlreadyCanceled = models.ErrSubscriptionAlreadyCanceled
	ErrInvalidMonthlyLimit         = errors.New("monthly limit must be zero or positive")
	ErrInvalidGenerateCount        = errors.New("count must be between 1 and 500")
	ErrNoAccounts                  = errors.New("at least one account is required")
)

// storeError translates a repository error into the service's vocabulary.
// notFound replaces the repository's not-found sentinel; anything else is
// wrapped with the attempted action.
func storeError(err error, repoNotFound, notFound error, action string) error {
	switch {
	case err == nil:
		return nil
	case repoNotFound != nil && errors.Is(err, repoNotFound):
		return notFound
	case errors.Is(err, repositories.ErrInvalidSortKey):
		return ErrInvalidSortKey
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// validationError marks a model validation failure while keeping the model
// sentinel reachable with errors.Is.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
