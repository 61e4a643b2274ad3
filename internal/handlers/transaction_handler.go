package handlers

import (
	"net/http"

	"finance-hub/internal/dto"
	"finance-hub/internal/errors"
	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions returns transactions matching the query filters
// @Summary List transactions
// @Description Filters combine with AND. search matches the description case-insensitively;
// @Description type=income keeps positive amounts and type=expense negative ones.
// @Tags Transactions
// @Produce json
// @Param search query string false "Description substring"
// @Param category query string false "Category"
// @Param account_id query string false "Account ID (UUID)"
// @Param type query string false "income or expense"
// @Param sort query string false "Sort key, default -date"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filter"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionListQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, err := h.transactionService.ListTransactions(query.Filters(), query.Sort)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transactions)
}

// GetTransaction retrieves a transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// CreateTransaction records a transaction
// @Summary Record a transaction
// @Description Positive amounts are income, negative amounts expenses. Non-numeric amounts are stored as 0.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.CreateTransaction(req.ToModel())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// DeleteTransaction removes a transaction
// @Summary Delete a transaction
// @Tags Transactions
// @Param id path string true "Transaction ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ExplainTransaction describes a transaction and suggests a saving tip
// @Summary Explain a transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.TransactionExplanation
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid identifier format"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id}/explanation [get]
func (h *TransactionHandler) ExplainTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	explanation, err := h.transactionService.ExplainTransaction(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, explanation)
}
