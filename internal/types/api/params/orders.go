package params

import (
	"time"

	"github.com/google/uuid"
)

// OrderLineParams identifies a product in the cart by ID or slug
type OrderLineParams struct {
	ProductID uuid.UUID
	Slug      string
	Quantity  int32
}

// CreateOrderParams contains parameters for placing an order
type CreateOrderParams struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	City            string
	Country         string
	Currency        string
	PaymentMethod   string
	Items           []OrderLineParams
	Notes           string
	Language        string
}

// ListOrdersParams contains parameters for the admin order list
type ListOrdersParams struct {
	Status string
	Limit  int32
	Offset int32
}

// ExportOrdersParams bounds an order export by creation time. To is exclusive.
type ExportOrdersParams struct {
	From time.Time
	To   time.Time
}
