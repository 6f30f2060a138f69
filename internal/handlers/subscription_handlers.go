package handlers

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/requests"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
)

var subscriptionActions = []string{constants.PauseAction, constants.ResumeAction, constants.CancelAction}

// SubscriptionHandler handles meal-box subscriptions
type SubscriptionHandler struct {
	common *CommonServices
}

// NewSubscriptionHandler creates a new SubscriptionHandler instance
func NewSubscriptionHandler(common *CommonServices) *SubscriptionHandler {
	return &SubscriptionHandler{common: common}
}

// CreateSubscription godoc
// @Summary Subscribe to a meal box
// @Description Start a weekly, biweekly or monthly delivery of a product
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body requests.CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req requests.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sub, err := h.common.Subscriptions.CreateSubscription(c.Request.Context(), params.CreateSubscriptionParams{
		Email:       req.Email,
		Name:        req.Name,
		Plan:        req.Plan,
		ProductSlug: req.ProductSlug,
		Quantity:    req.Quantity,
	})
	if err != nil {
		handleServiceError(c, err, "Product not found")
		return
	}

	sendSuccess(c, http.StatusCreated, helpers.ToSubscriptionResponse(*sub))
}

// ListSubscriptions godoc
// @Summary List subscriptions
// @Tags admin
// @Produce json
// @Param status query string false "active, paused or cancelled"
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} responses.PaginatedResponse{data=[]responses.SubscriptionResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	subs, total, err := h.common.Subscriptions.ListSubscriptions(c.Request.Context(), params.ListSubscriptionsParams{
		Status: c.Query("status"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		handleServiceError(c, err, "Subscriptions not found")
		return
	}

	data := make([]responses.SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		data = append(data, helpers.ToSubscriptionResponse(s))
	}

	sendPaginatedSuccess(c, data, page, total)
}

// ApplyAction godoc
// @Summary Pause, resume or cancel a subscription
// @Description Resume recomputes the next delivery date from today
// @Tags admin
// @Produce json
// @Param id path string true "Subscription ID"
// @Param action path string true "pause, resume or cancel"
// @Success 200 {object} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/subscriptions/{id}/{action} [post]
func (h *SubscriptionHandler) ApplyAction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid subscription ID format", err)
		return
	}

	action := c.Param("action")
	if !slices.Contains(subscriptionActions, action) {
		sendError(c, http.StatusNotFound, "Unknown subscription action", nil)
		return
	}

	sub, err := h.common.Subscriptions.ApplyAction(c.Request.Context(), id, action)
	if err != nil {
		handleServiceError(c, err, "Subscription not found")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToSubscriptionResponse(*sub))
}
