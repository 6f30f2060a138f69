package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/requests"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
)

// TrackingHandler accepts storefront analytics events
type TrackingHandler struct {
	common *CommonServices
}

// NewTrackingHandler creates a new TrackingHandler instance
func NewTrackingHandler(common *CommonServices) *TrackingHandler {
	return &TrackingHandler{common: common}
}

// Track godoc
// @Summary Track an event
// @Description Record a storefront analytics event
// @Tags tracking
// @Accept json
// @Produce json
// @Param event body requests.TrackEventRequest true "Event"
// @Success 202 {object} responses.TrackEventResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 429 {object} responses.ErrorResponse
// @Router /track [post]
func (h *TrackingHandler) Track(c *gin.Context) {
	var req requests.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := h.common.Tracking.Track(c.Request.Context(), params.TrackEventParams{
		Event:      req.Event,
		SessionID:  req.SessionID,
		Page:       req.Page,
		Referrer:   req.Referrer,
		Properties: req.Properties,
	})
	if err != nil {
		handleServiceError(c, err, "Not found")
		return
	}

	sendSuccess(c, http.StatusAccepted, responses.TrackEventResponse{Status: "accepted"})
}
