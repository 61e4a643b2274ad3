package handlers

import (
	"net/http"

	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the home screen summary
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns balances, monthly flow, safe-to-spend and the
// recent activity lists
// @Summary Dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.Dashboard
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.dashboardService.GetDashboard(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}
