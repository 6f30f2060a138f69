package constants

// Tracking event names accepted by the tracking endpoint
const (
	EventPageView       = "page_view"
	EventAddToCart      = "add_to_cart"
	EventBeginCheckout  = "begin_checkout"
	EventPurchase       = "purchase"
	EventSubscribe      = "subscribe"
	EventLanguageChange = "language_change"
	EventCurrencyChange = "currency_change"
)

// TrackingEvents is the allow list for tracked event names.
var TrackingEvents = []string{
	EventPageView,
	EventAddToCart,
	EventBeginCheckout,
	EventPurchase,
	EventSubscribe,
	EventLanguageChange,
	EventCurrencyChange,
}

// Dashboard metric names
const (
	MetricRevenue           = "revenue"
	MetricOrders            = "orders"
	MetricAverageOrderValue = "average_order_value"
	MetricPageViews         = "page_views"
	MetricSessions          = "sessions"
	MetricSubscriptions     = "subscriptions"
	MetricAddToCart         = "add_to_cart"
)

// ChartMetrics lists metrics that can be charted.
var ChartMetrics = []string{
	MetricRevenue,
	MetricOrders,
	MetricAverageOrderValue,
	MetricPageViews,
	MetricSessions,
	MetricSubscriptions,
	MetricAddToCart,
}
