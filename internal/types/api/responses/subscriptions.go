package responses

// SubscriptionResponse represents a meal-box subscription
type SubscriptionResponse struct {
	ID               string `json:"id"`
	Object           string `json:"object"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Plan             string `json:"plan"`
	ProductID        string `json:"product_id"`
	Quantity         int32  `json:"quantity"`
	Status           string `json:"status"`
	NextDeliveryDate string `json:"next_delivery_date,omitempty"`
	CreatedAt        int64  `json:"created_at"`
	UpdatedAt        int64  `json:"updated_at"`
}

// TrackEventResponse acknowledges an accepted tracking event
type TrackEventResponse struct {
	Status string `json:"status"`
}
