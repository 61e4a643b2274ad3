package handlers

import (
	"net/http"

	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// ExportHandler serves data downloads
type ExportHandler struct {
	exportService services.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService services.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportTransactionsCSV downloads every transaction as CSV
// @Summary Export transactions as CSV
// @Tags Export
// @Produce text/csv
// @Success 200 {string} string "Date,Account,Description,Category,Amount"
// @Router /export/transactions.csv [get]
func (h *ExportHandler) ExportTransactionsCSV(c echo.Context) error {
	filename, content, err := h.exportService.ExportTransactionsCSV(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	attachment(c, filename)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", content)
}

// ExportJSON downloads every record kind as one JSON document
// @Summary Export all data as JSON
// @Tags Export
// @Produce json
// @Success 200 {object} models.DataExport
// @Router /export/data.json [get]
func (h *ExportHandler) ExportJSON(c echo.Context) error {
	filename, export, err := h.exportService.ExportJSON(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	attachment(c, filename)
	return c.JSONPretty(http.StatusOK, export, "  ")
}
