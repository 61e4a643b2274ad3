package handlers

import (
	"fmt"
	"net/http"

	"finance-hub/internal/dto"
	"finance-hub/internal/errors"
	"finance-hub/internal/services"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandler handles subscription-related HTTP requests
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService services.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// ListSubscriptions returns every subscription, canceled ones included
// @Summary List subscriptions
// @Tags Subscriptions
// @Produce json
// @Param sort query string false "Sort key, default next_renewal_date"
// @Success 200 {array} models.Subscription
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	subscriptions, err := h.subscriptionService.ListSubscriptions(c.QueryParam("sort"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, subscriptions)
}

// CreateSubscription adds a subscription by hand
// @Summary Create a subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body dto.CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation error"
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	var req dto.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	subscription, err := h.subscriptionService.CreateSubscription(req.ToModel())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, subscription)
}

// CancelSubscription marks a subscription canceled. Canceling is one-way.
// @Summary Cancel a subscription
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID (UUID)"
// @Success 200 {object} models.Subscription
// @Failure 404 {object} errors.ErrorResponse "SUBSCRIPTION_001 - Subscription not found"
// @Failure 409 {object} errors.ErrorResponse "SUBSCRIPTION_002 - Already canceled"
// @Router /subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) CancelSubscription(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	subscription, err := h.subscriptionService.CancelSubscription(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, subscription)
}

// DeleteSubscription removes a subscription
// @Summary Delete a subscription
// @Tags Subscriptions
// @Param id path string true "Subscription ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "SUBSCRIPTION_001 - Subscription not found"
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.subscriptionService.DeleteSubscription(id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCancelGuide returns how to cancel a subscription with its provider
// @Summary Get cancellation guide
// @Description Known providers link their cancellation page; others link a web search for the name.
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID (UUID)"
// @Success 200 {object} models.CancelGuide
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid identifier format"
// @Failure 404 {object} errors.ErrorResponse "SUBSCRIPTION_001 - Subscription not found"
// @Router /subscriptions/{id}/cancel-guide [get]
func (h *SubscriptionHandler) GetCancelGuide(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	guide, err := h.subscriptionService.GetCancelGuide(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, guide)
}

// DetectSubscriptions scans the last 90 days of expenses for recurring
// charges and stores every new proposal
// @Summary Detect subscriptions
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} dto.DetectSubscriptionsResponse
// @Router /subscriptions/detect [post]
func (h *SubscriptionHandler) DetectSubscriptions(c echo.Context) error {
	created, err := h.subscriptionService.DetectSubscriptions(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	message := "No new subscriptions found"
	if len(created) > 0 {
		message = fmt.Sprintf("Found %d new subscription(s)", len(created))
	}

	return c.JSON(http.StatusOK, dto.DetectSubscriptionsResponse{
		Subscriptions: created,
		Count:         len(created),
		Message:       message,
	})
}

// GetSummary returns subscription cost totals and upcoming renewals
// @Summary Subscription summary
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} models.SubscriptionSummary
// @Router /subscriptions/summary [get]
func (h *SubscriptionHandler) GetSummary(c echo.Context) error {
	summary, err := h.subscriptionService.GetSummary(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
