package handlers

import (
	"fmt"
	"net/http"

	"finance-hub/internal/dto"
	"finance-hub/internal/errors"
	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// Routes are registered only when the generator is enabled in config.
type DevHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoDataService services.DemoDataServiceInterface) *DevHandler {
	return &DevHandler{demoDataService: demoDataService}
}

// GenerateTransactions creates random transactions spread over the existing accounts
//
// Method: POST /api/v1/dev/transactions/generate
// Environment: Development only
//
// Body:
//   - count: number of transactions, 1 to 500
//
// Error Responses:
//   - 400: count out of range, or no accounts to attach transactions to
//   - 500: Internal server error
func (h *DevHandler) GenerateTransactions(c echo.Context) error {
	var req dto.GenerateTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	transactions, err := h.demoDataService.GenerateTransactions(c.Request().Context(), req.Count)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.GenerateTransactionsResponse{
		Transactions: transactions,
		Count:        len(transactions),
		Message:      fmt.Sprintf("Generated %d transaction(s)", len(transactions)),
	})
}
