package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
)

// MaxOrderLines bounds the number of distinct cart lines in one order.
const MaxOrderLines = 50

func lowerAllowed(allowed []string) func(interface{}) error {
	return func(value interface{}) error {
		str, _ := value.(string)
		for _, a := range allowed {
			if strings.EqualFold(str, a) {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
	}
}

// validateOrderItems checks each cart line is an object with a quantity and
// either a product_id or a slug.
func validateOrderItems(value interface{}) error {
	items, _ := value.([]interface{})
	if len(items) == 0 {
		return fmt.Errorf("must contain at least one item")
	}
	if len(items) > MaxOrderLines {
		return fmt.Errorf("must contain at most %d items", MaxOrderLines)
	}

	for i, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			return fmt.Errorf("item %d must be an object", i)
		}

		productID, _ := item["product_id"].(string)
		slug, _ := item["slug"].(string)
		switch {
		case productID == "" && slug == "":
			return fmt.Errorf("item %d needs product_id or slug", i)
		case productID != "":
			if _, err := uuid.Parse(productID); err != nil {
				return fmt.Errorf("item %d product_id must be a valid UUID", i)
			}
		case !SlugRegex.MatchString(slug):
			return fmt.Errorf("item %d slug has an invalid format", i)
		}

		qty, ok := item["quantity"].(float64)
		if !ok || qty != float64(int64(qty)) {
			return fmt.Errorf("item %d quantity must be a whole number", i)
		}
		if qty < 1 || qty > 99 {
			return fmt.Errorf("item %d quantity must be between 1 and 99", i)
		}
	}
	return nil
}

// CreateOrderValidation checks POST /orders bodies
var CreateOrderValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{Field: "customer_name", Type: "string", Required: true, MinLength: 2, MaxLength: 100, Sanitize: true},
		{Field: "customer_email", Type: "email", Required: true},
		{Field: "customer_phone", Type: "string", Required: true, Pattern: PhoneRegex, Sanitize: true},
		{Field: "shipping_address", Type: "string", Required: true, MinLength: 5, MaxLength: 300, Sanitize: true},
		{Field: "city", Type: "string", Required: true, MaxLength: 100, Sanitize: true},
		{Field: "country", Type: "string", Required: true, MinLength: 2, MaxLength: 56, Sanitize: true},
		{Field: "currency", Type: "string", Required: true, Custom: lowerAllowed(constants.SupportedCurrencies)},
		{Field: "payment_method", Type: "string", Required: true, AllowedValues: constants.PaymentMethods},
		{Field: "items", Type: "array", Required: true, Custom: validateOrderItems},
		{Field: "notes", Type: "string", MaxLength: 500, Sanitize: true},
		{Field: "language", Type: "string", AllowedValues: []string{constants.EnglishLanguage, constants.ArabicLanguage}},
	},
}

// UpdateOrderStatusValidation checks admin status changes
var UpdateOrderStatusValidation = ValidationConfig{
	MaxBodySize: 1024,
	Rules: []ValidationRule{
		{
			Field:    "status",
			Type:     "string",
			Required: true,
			AllowedValues: []string{
				constants.OrderStatusConfirmed,
				constants.OrderStatusShipped,
				constants.OrderStatusDelivered,
				constants.OrderStatusCancelled,
			},
		},
	},
}

// CreateSubscriptionValidation checks POST /subscriptions bodies
var CreateSubscriptionValidation = ValidationConfig{
	MaxBodySize: 4 * 1024,
	Rules: []ValidationRule{
		{Field: "email", Type: "email", Required: true},
		{Field: "name", Type: "string", Required: true, MinLength: 2, MaxLength: 100, Sanitize: true},
		{Field: "plan", Type: "string", Required: true, AllowedValues: constants.SubscriptionPlans},
		{Field: "product_slug", Type: "string", Required: true, Pattern: SlugRegex},
		{Field: "quantity", Type: "number", Min: float64Ptr(1), Max: float64Ptr(20)},
	},
}

// TrackEventValidation checks POST /track bodies
var TrackEventValidation = ValidationConfig{
	MaxBodySize: 8 * 1024,
	Rules: []ValidationRule{
		{Field: "event", Type: "string", Required: true, AllowedValues: constants.TrackingEvents},
		{Field: "session_id", Type: "string", Required: true, MinLength: 8, MaxLength: 64, Sanitize: true},
		{Field: "page", Type: "string", MaxLength: 500, Sanitize: true},
		{Field: "referrer", Type: "string", MaxLength: 500, Sanitize: true},
		{Field: "properties", Type: "object"},
	},
}
