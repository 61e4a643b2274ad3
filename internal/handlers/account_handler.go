package handlers

import (
	"net/http"

	"finance-hub/internal/dto"
	"finance-hub/internal/errors"
	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts returns every account
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Param sort query string false "Sort key, '-' prefix for descending (e.g. -balance)"
// @Success 200 {array} models.Account
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Unknown sort key"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.ListAccounts(c.QueryParam("sort"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, accounts)
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} models.Account
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.GetAccount(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// CreateAccount records a new account
// @Summary Create an account
// @Description Non-numeric balances are stored as 0
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} models.Account
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.CreateAccount(req.ToModel())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

// UpdateAccount applies a partial update
// @Summary Update an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} models.Account
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation error"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [patch]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("at least one field must be provided"))
	}

	account, err := h.accountService.UpdateAccount(id, fields)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account. Its transactions are kept.
// @Summary Delete an account
// @Tags Accounts
// @Param id path string true "Account ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.accountService.DeleteAccount(id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ConnectDemoBank simulates linking a bank and adds its demo accounts
// @Summary Connect a demo bank
// @Description Waits for the configured connection delay, then creates two demo accounts
// @Tags Accounts
// @Produce json
// @Success 201 {object} dto.ConnectBankResponse
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Request canceled while connecting"
// @Router /accounts/connect-demo [post]
func (h *AccountHandler) ConnectDemoBank(c echo.Context) error {
	accounts, err := h.accountService.ConnectDemoBank(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ConnectBankResponse{
		Accounts: accounts,
		Message:  "Bank connected successfully",
	})
}
