package helpers

import (
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
)

// ToOrderResponse converts an order and its items to the API shape.
func ToOrderResponse(o db.Order, items []db.OrderItem) responses.OrderResponse {
	resp := responses.OrderResponse{
		ID:              o.ID.String(),
		Object:          "order",
		OrderNumber:     o.OrderNumber,
		Status:          o.Status,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: o.ShippingAddress,
		City:            o.City,
		Country:         o.Country,
		Currency:        o.Currency,
		PaymentMethod:   o.PaymentMethod,
		Subtotal:        NewMoneyAmount(o.SubtotalCents, o.Currency),
		Shipping:        NewMoneyAmount(o.ShippingCents, o.Currency),
		Total:           NewMoneyAmount(o.TotalCents, o.Currency),
		Notes:           TextOrEmpty(o.Notes),
		Language:        o.Language,
		CreatedAt:       o.CreatedAt.Time.Unix(),
		UpdatedAt:       o.UpdatedAt.Time.Unix(),
	}

	for _, item := range items {
		resp.Items = append(resp.Items, responses.OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   NewMoneyAmount(item.UnitPriceCents, o.Currency),
			LineTotal:   NewMoneyAmount(item.LineTotalCents, o.Currency),
		})
	}

	return resp
}

// ToSubscriptionResponse converts a subscription to the API shape.
func ToSubscriptionResponse(s db.Subscription) responses.SubscriptionResponse {
	resp := responses.SubscriptionResponse{
		ID:        s.ID.String(),
		Object:    "subscription",
		Email:     s.Email,
		Name:      s.Name,
		Plan:      s.Plan,
		ProductID: s.ProductID.String(),
		Quantity:  s.Quantity,
		Status:    s.Status,
		CreatedAt: s.CreatedAt.Time.Unix(),
		UpdatedAt: s.UpdatedAt.Time.Unix(),
	}
	if s.NextDeliveryDate.Valid {
		resp.NextDeliveryDate = DateKey(s.NextDeliveryDate.Time)
	}
	return resp
}
