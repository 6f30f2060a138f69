package requests

// CreateSubscriptionRequest represents the request body for a meal-box subscription
type CreateSubscriptionRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Plan        string `json:"plan"`
	ProductSlug string `json:"product_slug"`
	Quantity    int32  `json:"quantity,omitempty"`
}
