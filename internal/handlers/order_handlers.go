package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/requests"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
)

const (
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultExportDays = 30
)

// OrderHandler handles checkout and order administration
type OrderHandler struct {
	common *CommonServices
	now    func() time.Time
}

// NewOrderHandler creates a new OrderHandler instance
func NewOrderHandler(common *CommonServices) *OrderHandler {
	return &OrderHandler{common: common, now: time.Now}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Create an order from the cart. Totals are computed server side.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body requests.CreateOrderRequest true "Order"
// @Success 201 {object} responses.OrderResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req requests.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	items := make([]params.OrderLineParams, 0, len(req.Items))
	for i, item := range req.Items {
		line := params.OrderLineParams{Slug: item.Slug, Quantity: item.Quantity}
		if item.ProductID != "" {
			id, err := uuid.Parse(item.ProductID)
			if err != nil {
				sendError(c, http.StatusBadRequest, fmt.Sprintf("Invalid product ID in item %d", i), err)
				return
			}
			line.ProductID = id
		}
		items = append(items, line)
	}

	order, err := h.common.Orders.CreateOrder(c.Request.Context(), params.CreateOrderParams{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		Country:         req.Country,
		Currency:        req.Currency,
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
		Notes:           req.Notes,
		Language:        req.Language,
	})
	if err != nil {
		handleServiceError(c, err, "Product not found")
		return
	}

	sendSuccess(c, http.StatusCreated, helpers.ToOrderResponse(order.Order, order.Items))
}

// GetOrderForCustomer godoc
// @Summary Look up an order
// @Description Public order confirmation lookup. The email must match the order.
// @Tags orders
// @Produce json
// @Param order_number path string true "Order number"
// @Param email query string true "Customer email"
// @Success 200 {object} responses.OrderResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /orders/{order_number} [get]
func (h *OrderHandler) GetOrderForCustomer(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		sendError(c, http.StatusBadRequest, "email is required", nil)
		return
	}

	order, err := h.common.Orders.GetOrderForCustomer(c.Request.Context(), c.Param("order_number"), email)
	if err != nil {
		handleServiceError(c, err, "Order not found")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToOrderResponse(order.Order, order.Items))
}

// ListOrders godoc
// @Summary List orders
// @Description Admin list of orders, newest first
// @Tags admin
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} responses.PaginatedResponse{data=[]responses.OrderResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	orders, total, err := h.common.Orders.ListOrders(c.Request.Context(), params.ListOrdersParams{
		Status: c.Query("status"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		handleServiceError(c, err, "Orders not found")
		return
	}

	data := make([]responses.OrderResponse, 0, len(orders))
	for _, o := range orders {
		data = append(data, helpers.ToOrderResponse(o, nil))
	}

	sendPaginatedSuccess(c, data, page, total)
}

// GetOrder godoc
// @Summary Get order
// @Description Admin view of one order with its items
// @Tags admin
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} responses.OrderResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid order ID format", err)
		return
	}

	order, err := h.common.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Order not found")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToOrderResponse(order.Order, order.Items))
}

// UpdateOrderStatus godoc
// @Summary Change order status
// @Description Moves an order along pending, confirmed, shipped, delivered or cancels it
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body requests.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} responses.OrderResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid order ID format", err)
		return
	}

	var req requests.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	order, err := h.common.Orders.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err, "Order not found")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToOrderResponse(*order, nil))
}

// ExportOrders godoc
// @Summary Export orders
// @Description XLSX workbook of orders placed between from and to (inclusive days, UTC)
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "First day, YYYY-MM-DD (default 30 days ago)"
// @Param to query string false "Last day, YYYY-MM-DD (default today)"
// @Success 200 {file} file
// @Failure 400 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/orders/export [get]
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	to := helpers.StartOfDay(h.now())
	from := to.AddDate(0, 0, -(defaultExportDays - 1))

	var err error
	if s := c.Query("from"); s != "" {
		if from, err = helpers.ParseDate(s); err != nil {
			sendError(c, http.StatusBadRequest, "from must be YYYY-MM-DD", err)
			return
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = helpers.ParseDate(s); err != nil {
			sendError(c, http.StatusBadRequest, "to must be YYYY-MM-DD", err)
			return
		}
	}

	data, err := h.common.Export.ExportOrders(c.Request.Context(), params.ExportOrdersParams{
		From: from,
		To:   to.AddDate(0, 0, 1),
	})
	if err != nil {
		handleServiceError(c, err, "Orders not found")
		return
	}

	filename := fmt.Sprintf("orders-%s-%s.xlsx", helpers.DateKey(from), helpers.DateKey(to))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
