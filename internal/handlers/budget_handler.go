package handlers

import (
	"fmt"
	"net/http"
	"time"

	"finance-hub/internal/aggregator"
	"finance-hub/internal/dto"
	"finance-hub/internal/errors"
	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	now           func() time.Time
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		now:           time.Now,
	}
}

// ListBudgets returns budgets of every month
// @Summary List budgets
// @Tags Budgets
// @Produce json
// @Param sort query string false "Sort key, default category"
// @Success 200 {array} models.Budget
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	budgets, err := h.budgetService.ListBudgets(c.QueryParam("sort"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, budgets)
}

// CreateBudget creates a budget, for the current month unless month_year is given
// @Summary Create a budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} models.Budget
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 - Category has no budget"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	currentMonth := aggregator.CurrentMonth(h.now()).MonthYear()
	budget, err := h.budgetService.CreateBudget(req.ToModel(currentMonth))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, budget)
}

// UpdateBudgetLimit changes a budget's monthly limit
// @Summary Edit a budget limit
// @Tags Budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.UpdateBudgetLimitRequest true "New limit"
// @Success 200 {object} models.Budget
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Negative limit"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [patch]
func (h *BudgetHandler) UpdateBudgetLimit(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateBudgetLimitRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	budget, err := h.budgetService.UpdateBudgetLimit(id, req.MonthlyLimit.Decimal)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget
// @Summary Delete a budget
// @Tags Budgets
// @Param id path string true "Budget ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.budgetService.DeleteBudget(id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOverview refreshes current-month spend and returns totals and statuses
// @Summary Budget overview
// @Tags Budgets
// @Produce json
// @Success 200 {object} models.BudgetOverview
// @Router /budgets/overview [get]
func (h *BudgetHandler) GetOverview(c echo.Context) error {
	overview, err := h.budgetService.GetOverview(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, overview)
}

// CreateMissingBudgets adds default-limit budgets for uncovered spending categories
// @Summary Create missing budgets
// @Tags Budgets
// @Produce json
// @Success 201 {object} dto.CreateMissingBudgetsResponse
// @Router /budgets/create-missing [post]
func (h *BudgetHandler) CreateMissingBudgets(c echo.Context) error {
	created, err := h.budgetService.CreateMissingBudgets(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateMissingBudgetsResponse{
		Budgets: created,
		Count:   len(created),
		Message: fmt.Sprintf("Created %d budget(s)", len(created)),
	})
}
