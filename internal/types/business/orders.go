package business

import (
	"time"

	"github.com/google/uuid"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
)

// OrderDetails is an order with its line items.
type OrderDetails struct {
	Order db.Order
	Items []db.OrderItem
}

// OrderEvent is the message published to the order-events queue.
type OrderEvent struct {
	Type           string    `json:"type"`
	OrderID        uuid.UUID `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// CartLine is one resolved line of a new order.
type CartLine struct {
	Product        db.Product
	Quantity       int32
	UnitPriceCents int64
}

// LineTotal returns quantity times unit price.
func (l CartLine) LineTotal() int64 {
	return int64(l.Quantity) * l.UnitPriceCents
}

// OrderTotals holds computed order amounts in minor units.
type OrderTotals struct {
	SubtotalCents int64
	ShippingCents int64
	TotalCents    int64
}
