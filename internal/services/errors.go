package services

import "errors"

// Validation failures reported back to callers as 4xx responses.
var (
	ErrEmptyCart                     = errors.New("cart is empty")
	ErrInvalidQuantity               = errors.New("quantity must be between 1 and 99")
	ErrProductUnavailable            = errors.New("product is not available")
	ErrPriceUnavailable              = errors.New("product is not priced in the requested currency")
	ErrUnsupportedCurrency           = errors.New("unsupported currency")
	ErrInvalidPaymentMethod          = errors.New("unsupported payment method")
	ErrInvalidOrderStatus            = errors.New("invalid order status")
	ErrInvalidStatusTransition       = errors.New("order status transition not allowed")
	ErrOrderNotFound                 = errors.New("order not found")
	ErrInvalidPlan                   = errors.New("invalid subscription plan")
	ErrDuplicateSubscription         = errors.New("an open subscription already exists for this product")
	ErrInvalidSubscriptionTransition = errors.New("subscription status change not allowed")
	ErrInvalidSubscriptionStatus     = errors.New("invalid subscription status")
	ErrUnknownEvent                  = errors.New("unknown tracking event")
	ErrMissingSession                = errors.New("session_id is required")
	ErrUnknownMetric                 = errors.New("unknown metric")
	ErrInvalidDateRange              = errors.New("invalid date range")
)

// IsValidationError reports whether err is one of the caller-facing
// validation failures above.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyCart,
		ErrInvalidQuantity,
		ErrProductUnavailable,
		ErrPriceUnavailable,
		ErrUnsupportedCurrency,
		ErrInvalidPaymentMethod,
		ErrInvalidOrderStatus,
		ErrInvalidStatusTransition,
		ErrInvalidPlan,
		ErrInvalidSubscriptionTransition,
		ErrInvalidSubscriptionStatus,
		ErrUnknownEvent,
		ErrMissingSession,
		ErrUnknownMetric,
		ErrInvalidDateRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
