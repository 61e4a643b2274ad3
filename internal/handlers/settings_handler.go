package handlers

import (
	"net/http"

	"finance-hub/internal/dto"
	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// SettingsHandler serves record statistics and the demo data controls
type SettingsHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(demoDataService services.DemoDataServiceInterface) *SettingsHandler {
	return &SettingsHandler{demoDataService: demoDataService}
}

// GetStats returns the number of stored records per kind
// @Summary Record statistics
// @Tags Settings
// @Produce json
// @Success 200 {object} models.RecordCounts
// @Router /settings/stats [get]
func (h *SettingsHandler) GetStats(c echo.Context) error {
	counts, err := h.demoDataService.Stats(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, counts)
}

// SeedDemoData wipes every record and loads the demo data set
// @Summary Load demo data
// @Tags Settings
// @Produce json
// @Success 201 {object} dto.SeedDemoDataResponse
// @Router /settings/demo-data [post]
func (h *SettingsHandler) SeedDemoData(c echo.Context) error {
	counts, err := h.demoDataService.SeedDemoData(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SeedDemoDataResponse{
		Counts:  *counts,
		Message: "Demo data loaded",
	})
}

// WipeAll deletes every record of every kind
// @Summary Delete all data
// @Tags Settings
// @Success 204
// @Router /settings/data [delete]
func (h *SettingsHandler) WipeAll(c echo.Context) error {
	if err := h.demoDataService.WipeAll(c.Request().Context()); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
