package requests

// OrderItemRequest is one cart line. Either ProductID or Slug identifies the product.
type OrderItemRequest struct {
	ProductID string `json:"product_id,omitempty"`
	Slug      string `json:"slug,omitempty"`
	Quantity  int32  `json:"quantity"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address"`
	City            string             `json:"city"`
	Country         string             `json:"country"`
	Currency        string             `json:"currency"`
	PaymentMethod   string             `json:"payment_method"`
	Items           []OrderItemRequest `json:"items"`
	Notes           string             `json:"notes,omitempty"`
	Language        string             `json:"language,omitempty"`
}

// UpdateOrderStatusRequest represents the request body for an admin status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
