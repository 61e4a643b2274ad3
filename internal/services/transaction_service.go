package services

import (
	"log/slog"

	"finance-hub/internal/aggregator"
	"finance-hub/internal/models"
	"finance-hub/internal/repositories"

	"github.com/google/uuid"
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewTransactionService creates a transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ListTransactions returns transactions matching every filter that is set
func (s *transactionService) ListTransactions(filters models.TransactionFilters, sortKey string) ([]models.Transaction, error) {
	if !models.IsValidTransactionType(filters.Type) {
		return nil, validationError(models.ErrInvalidTransactionType)
	}
	if filters.Category != "" && !models.IsValidCategory(filters.Category) {
		return nil, validationError(models.ErrInvalidCategory)
	}

	var (
		transactions []models.Transaction
		err          error
	)
	if filters.IsEmpty() {
		transactions, err = s.transactionRepo.List(sortKey)
	} else {
		transactions, err = s.transactionRepo.ListWithFilters(filters, sortKey)
	}
	if err != nil {
		return nil, storeError(err, nil, nil, "list transactions")
	}
	return transactions, nil
}

func (s *transactionService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, storeError(err, repositories.ErrTransactionNotFound, ErrTransactionNotFound, "get transaction")
	}
	return transaction, nil
}

// CreateTransaction stores a transaction. The account id is an opaque
// reference and is not checked against stored accounts.
func (s *transactionService) CreateTransaction(transaction *models.Transaction) (*models.Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, storeError(err, nil, nil, "create transaction")
	}

	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"account_id", transaction.AccountID,
		"category", transaction.Category,
	)
	return transaction, nil
}

func (s *transactionService) DeleteTransaction(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		return storeError(err, repositories.ErrTransactionNotFound, ErrTransactionNotFound, "delete transaction")
	}
	return nil
}

// ExplainTransaction describes a stored transaction in plain language
func (s *transactionService) ExplainTransaction(id uuid.UUID) (*models.TransactionExplanation, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, storeError(err, repositories.ErrTransactionNotFound, ErrTransactionNotFound, "get transaction")
	}
	explanation := aggregator.ExplainTransaction(*transaction)
	return &explanation, nil
}
