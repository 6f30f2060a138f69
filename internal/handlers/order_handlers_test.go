package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/requests"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

func testOrderDetails() *business.OrderDetails {
	id := uuid.New()
	productID := uuid.New()
	created := pgtype.Timestamptz{Time: fixedNow, Valid: true}
	return &business.OrderDetails{
		Order: db.Order{
			ID:              id,
			OrderNumber:     "RF-20250314-TEST01",
			CustomerName:    "Layla Hassan",
			CustomerEmail:   "layla@example.com",
			CustomerPhone:   "+971 50 123 4567",
			ShippingAddress: "Villa 12, Al Wasl Road",
			City:            "Dubai",
			Country:         "AE",
			Currency:        "USD",
			PaymentMethod:   "cod",
			Status:          "pending",
			SubtotalCents:   3000,
			ShippingCents:   500,
			TotalCents:      3500,
			Language:        "en",
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		Items: []db.OrderItem{{
			ID:             uuid.New(),
			OrderID:        id,
			ProductID:      productID,
			ProductName:    "Chicken Machboos",
			Quantity:       2,
			UnitPriceCents: 1500,
			LineTotalCents: 3000,
		}},
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	env := newTestEnv(t)
	h := NewOrderHandler(env.common)
	env.router.POST("/orders", h.CreateOrder)

	productID := uuid.New()
	details := testOrderDetails()

	env.orders.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p params.CreateOrderParams) (*business.OrderDetails, error) {
			assert.Equal(t, "Layla Hassan", p.CustomerName)
			assert.Equal(t, "USD", p.Currency)
			require.Len(t, p.Items, 2)
			assert.Equal(t, productID, p.Items[0].ProductID)
			assert.Equal(t, int32(2), p.Items[0].Quantity)
			assert.Equal(t, uuid.Nil, p.Items[1].ProductID)
			assert.Equal(t, "harees", p.Items[1].Slug)
			return details, nil
		})

	w := env.do(t, http.MethodPost, "/orders", requests.CreateOrderRequest{
		CustomerName:    "Layla Hassan",
		CustomerEmail:   "layla@example.com",
		CustomerPhone:   "+971 50 123 4567",
		ShippingAddress: "Villa 12, Al Wasl Road",
		City:            "Dubai",
		Country:         "AE",
		Currency:        "USD",
		PaymentMethod:   "cod",
		Items: []requests.OrderItemRequest{
			{ProductID: productID.String(), Quantity: 2},
			{Slug: "harees", Quantity: 1},
		},
	})
	mustStatus(t, w, http.StatusCreated)

	resp := decode[responses.OrderResponse](t, w)
	assert.Equal(t, "RF-20250314-TEST01", resp.OrderNumber)
	assert.Equal(t, "order", resp.Object)
	assert.Equal(t, "$35.00", resp.Total.Formatted)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "$30.00", resp.Items[0].LineTotal.Formatted)
}

func TestOrderHandler_CreateOrderErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed body",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name: "bad product id",
			body: requests.CreateOrderRequest{
				Items: []requests.OrderItemRequest{{ProductID: "nope", Quantity: 1}},
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid product ID in item 0",
		},
		{
			name: "unpriced currency",
			body: requests.CreateOrderRequest{
				Currency: "AED",
				Items:    []requests.OrderItemRequest{{Slug: "harees", Quantity: 1}},
			},
			serviceErr: services.ErrPriceUnavailable,
			wantStatus: http.StatusBadRequest,
			wantError:  services.ErrPriceUnavailable.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			h := NewOrderHandler(env.common)
			env.router.POST("/orders", h.CreateOrder)

			if tt.serviceErr != nil {
				env.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, tt.serviceErr)
			}

			w := env.do(t, http.MethodPost, "/orders", tt.body)
			mustStatus(t, w, tt.wantStatus)
			assert.Equal(t, tt.wantError, decode[responses.ErrorResponse](t, w).Error)
		})
	}
}

func TestOrderHandler_GetOrderForCustomer(t *testing.T) {
	t.Run("email required", func(t *testing.T) {
		env := newTestEnv(t)
		env.router.GET("/orders/:order_number", NewOrderHandler(env.common).GetOrderForCustomer)

		w := env.do(t, http.MethodGet, "/orders/RF-20250314-TEST01", nil)
		mustStatus(t, w, http.StatusBadRequest)
	})

	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.router.GET("/orders/:order_number", NewOrderHandler(env.common).GetOrderForCustomer)

		env.orders.EXPECT().
			GetOrderForCustomer(gomock.Any(), "RF-20250314-TEST01", "layla@example.com").
			Return(testOrderDetails(), nil)

		w := env.do(t, http.MethodGet, "/orders/RF-20250314-TEST01?email=layla@example.com", nil)
		mustStatus(t, w, http.StatusOK)
		assert.Equal(t, "pending", decode[responses.OrderResponse](t, w).Status)
	})

	t.Run("email mismatch", func(t *testing.T) {
		env := newTestEnv(t)
		env.router.GET("/orders/:order_number", NewOrderHandler(env.common).GetOrderForCustomer)

		env.orders.EXPECT().
			GetOrderForCustomer(gomock.Any(), "RF-20250314-TEST01", "someone@example.com").
			Return(nil, services.ErrOrderNotFound)

		w := env.do(t, http.MethodGet, "/orders/RF-20250314-TEST01?email=someone@example.com", nil)
		mustStatus(t, w, http.StatusNotFound)
		assert.Equal(t, "Order not found", decode[responses.ErrorResponse](t, w).Error)
	})
}

type orderPage struct {
	Data    []responses.OrderResponse `json:"data"`
	HasMore bool                      `json:"has_more"`
}

func TestOrderHandler_ListOrders(t *testing.T) {
	env := newTestEnv(t)
	env.router.GET("/admin/orders", NewOrderHandler(env.common).ListOrders)

	details := testOrderDetails()
	env.orders.EXPECT().
		ListOrders(gomock.Any(), params.ListOrdersParams{Status: "pending", Limit: 20}).
		Return([]db.Order{details.Order}, int64(1), nil)

	w := env.do(t, http.MethodGet, "/admin/orders?status=pending", nil)
	mustStatus(t, w, http.StatusOK)

	page := decode[orderPage](t, w)
	require.Len(t, page.Data, 1)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.Data[0].Items)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	env := newTestEnv(t)
	env.router.GET("/admin/orders/:id", NewOrderHandler(env.common).GetOrder)

	w := env.do(t, http.MethodGet, "/admin/orders/not-a-uuid", nil)
	mustStatus(t, w, http.StatusBadRequest)

	details := testOrderDetails()
	env.orders.EXPECT().GetOrder(gomock.Any(), details.Order.ID).Return(details, nil)

	w = env.do(t, http.MethodGet, "/admin/orders/"+details.Order.ID.String(), nil)
	mustStatus(t, w, http.StatusOK)
	assert.Len(t, decode[responses.OrderResponse](t, w).Items, 1)
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "confirmed", wantStatus: http.StatusOK},
		{name: "bad transition", err: services.ErrInvalidStatusTransition, wantStatus: http.StatusBadRequest},
		{name: "unknown order", err: services.ErrOrderNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.router.PATCH("/admin/orders/:id/status", NewOrderHandler(env.common).UpdateOrderStatus)

			order := testOrderDetails().Order
			order.Status = "confirmed"
			call := env.orders.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID, "confirmed")
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&order, nil)
			}

			w := env.do(t, http.MethodPatch, "/admin/orders/"+order.ID.String()+"/status",
				requests.UpdateOrderStatusRequest{Status: "confirmed"})
			mustStatus(t, w, tt.wantStatus)
			if tt.err == nil {
				assert.Equal(t, "confirmed", decode[responses.OrderResponse](t, w).Status)
			}
		})
	}
}

func TestOrderHandler_ExportOrders(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name         string
		query        string
		wantFrom     time.Time
		wantTo       time.Time
		wantFilename string
	}{
		{
			name:         "explicit range is inclusive",
			query:        "?from=2025-03-01&to=2025-03-07",
			wantFrom:     day("2025-03-01"),
			wantTo:       day("2025-03-08"),
			wantFilename: `attachment; filename="orders-2025-03-01-2025-03-07.xlsx"`,
		},
		{
			name:         "defaults to the last 30 days",
			wantFrom:     day("2025-02-13"),
			wantTo:       day("2025-03-15"),
			wantFilename: `attachment; filename="orders-2025-02-13-2025-03-14.xlsx"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			h := NewOrderHandler(env.common)
			h.now = func() time.Time { return fixedNow }
			env.router.GET("/admin/orders/export", h.ExportOrders)

			workbook := []byte("PK\x03\x04workbook")
			env.export.EXPECT().
				ExportOrders(gomock.Any(), params.ExportOrdersParams{From: tt.wantFrom, To: tt.wantTo}).
				Return(workbook, nil)

			w := env.do(t, http.MethodGet, "/admin/orders/export"+tt.query, nil)
			mustStatus(t, w, http.StatusOK)
			assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantFilename, w.Header().Get("Content-Disposition"))
			assert.Equal(t, workbook, w.Body.Bytes())
		})
	}
}

func TestOrderHandler_ExportOrdersBadDates(t *testing.T) {
	env := newTestEnv(t)
	h := NewOrderHandler(env.common)
	env.router.GET("/admin/orders/export", h.ExportOrders)

	for _, q := range []string{"?from=03/01/2025", "?to=yesterday"} {
		w := env.do(t, http.MethodGet, "/admin/orders/export"+q, nil)
		mustStatus(t, w, http.StatusBadRequest)
	}
}

func TestOrderHandler_ExportOrdersInvertedRange(t *testing.T) {
	env := newTestEnv(t)
	h := NewOrderHandler(env.common)
	env.router.GET("/admin/orders/export", h.ExportOrders)

	env.export.EXPECT().ExportOrders(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidDateRange)

	w := env.do(t, http.MethodGet, "/admin/orders/export?from=2025-03-10&to=2025-03-01", nil)
	mustStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, services.ErrInvalidDateRange.Error(), decode[responses.ErrorResponse](t, w).Error)
}
