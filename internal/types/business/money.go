package business

// MoneyAmount represents a monetary value with currency
type MoneyAmount struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Formatted   string `json:"formatted"`
}
