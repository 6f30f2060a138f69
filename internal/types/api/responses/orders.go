package responses

import "github.com/reachfood2024-code/reachfood-sub000/internal/types/business"

// OrderItemResponse represents one order line
type OrderItemResponse struct {
	ProductID   string               `json:"product_id"`
	ProductName string               `json:"product_name"`
	Quantity    int32                `json:"quantity"`
	UnitPrice   business.MoneyAmount `json:"unit_price"`
	LineTotal   business.MoneyAmount `json:"line_total"`
}

// OrderResponse represents an order as returned to the storefront and admin
type OrderResponse struct {
	ID              string               `json:"id"`
	Object          string               `json:"object"`
	OrderNumber     string               `json:"order_number"`
	Status          string               `json:"status"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	CustomerPhone   string               `json:"customer_phone"`
	ShippingAddress string               `json:"shipping_address"`
	City            string               `json:"city"`
	Country         string               `json:"country"`
	Currency        string               `json:"currency"`
	PaymentMethod   string               `json:"payment_method"`
	Subtotal        business.MoneyAmount `json:"subtotal"`
	Shipping        business.MoneyAmount `json:"shipping"`
	Total           business.MoneyAmount `json:"total"`
	Notes           string               `json:"notes,omitempty"`
	Language        string               `json:"language"`
	Items           []OrderItemResponse  `json:"items,omitempty"`
	CreatedAt       int64                `json:"created_at"`
	UpdatedAt       int64                `json:"updated_at"`
}
