package params

// CreateSubscriptionParams contains parameters for a new meal-box subscription
type CreateSubscriptionParams struct {
	Email       string
	Name        string
	Plan        string
	ProductSlug string
	Quantity    int32
}

// ListSubscriptionsParams contains parameters for the admin subscription list
type ListSubscriptionsParams struct {
	Status string
	Limit  int32
	Offset int32
}
