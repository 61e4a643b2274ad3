package handlers

import (
	"net/http"

	"finance-hub/internal/dto"
	"finance-hub/internal/errors"
	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// PreferencesHandler serves the settings form
type PreferencesHandler struct {
	preferencesService services.PreferencesServiceInterface
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferencesService services.PreferencesServiceInterface) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// GetPreferences returns the saved preferences or the form defaults
// @Summary Get preferences
// @Description stored is false when nothing was saved yet and the defaults are returned
// @Tags Preferences
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Router /preferences [get]
func (h *PreferencesHandler) GetPreferences(c echo.Context) error {
	prefs, stored, err := h.preferencesService.GetPreferences()
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PreferencesResponse{
		Preferences: prefs,
		Stored:      stored,
	})
}

// SavePreferences updates the preferences record, creating it on first save
// @Summary Save preferences
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body dto.SavePreferencesRequest true "Preferences"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} errors.ErrorResponse "PREFERENCES_001 - Negative daily goal"
// @Router /preferences [put]
func (h *PreferencesHandler) SavePreferences(c echo.Context) error {
	var req dto.SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	prefs, err := h.preferencesService.SavePreferences(req.ToModel())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PreferencesResponse{
		Preferences: prefs,
		Stored:      true,
	})
}
