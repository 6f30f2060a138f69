package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/interfaces"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/middleware"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
)

// CommonServices holds the services shared by all handlers
type CommonServices struct {
	Catalog       interfaces.CatalogService
	Orders        interfaces.OrderService
	Subscriptions interfaces.SubscriptionService
	Tracking      interfaces.TrackingService
	Metrics       interfaces.MetricsService
	Export        interfaces.ExportService
}

// sendError logs err and writes the JSON error envelope
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.JSON(statusCode, responses.ErrorResponse{Error: message, CorrelationID: correlationID})
}

// handleDBError maps missing rows to 404 and everything else to 500
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// handleServiceError maps service sentinel errors to status codes. Messages
// of validation errors are safe to show to callers.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case services.IsValidationError(err):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, services.ErrDuplicateSubscription):
		sendError(c, http.StatusConflict, err.Error(), err)
	case errors.Is(err, services.ErrOrderNotFound):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		handleDBError(c, err, notFoundMsg)
	}
}

// sendSuccess writes data as JSON
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendPaginatedSuccess writes a list page with its pagination metadata
func sendPaginatedSuccess(c *gin.Context, data interface{}, page helpers.PaginationParams, total int64) {
	totalPages := 0
	if page.Limit > 0 {
		totalPages = int((total + int64(page.Limit) - 1) / int64(page.Limit))
	}
	c.JSON(http.StatusOK, responses.PaginatedResponse{
		Data:    data,
		Object:  "list",
		HasMore: int64(page.Offset)+int64(page.Limit) < total,
		Pagination: responses.Pagination{
			CurrentPage: int(page.Page),
			PerPage:     int(page.Limit),
			TotalItems:  int(total),
			TotalPages:  totalPages,
		},
	})
}
