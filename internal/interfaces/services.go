package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

// CatalogService serves the public product catalog
type CatalogService interface {
	ListProducts(ctx context.Context, params params.ListProductsParams) ([]db.Product, []db.ProductPrice, int64, error)
	GetProductBySlug(ctx context.Context, slug string) (*db.Product, []db.ProductPrice, error)
}

// OrderService places and manages orders
type OrderService interface {
	CreateOrder(ctx context.Context, params params.CreateOrderParams) (*business.OrderDetails, error)
	GetOrderForCustomer(ctx context.Context, orderNumber, email string) (*business.OrderDetails, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*business.OrderDetails, error)
	ListOrders(ctx context.Context, params params.ListOrdersParams) ([]db.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*db.Order, error)
	ListOrdersForExport(ctx context.Context, params params.ExportOrdersParams) ([]business.OrderDetails, error)
}

// SubscriptionService manages meal-box subscriptions
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, params params.CreateSubscriptionParams) (*db.Subscription, error)
	ListSubscriptions(ctx context.Context, params params.ListSubscriptionsParams) ([]db.Subscription, int64, error)
	ApplyAction(ctx context.Context, id uuid.UUID, action string) (*db.Subscription, error)
}

// TrackingService records storefront analytics events
type TrackingService interface {
	Track(ctx context.Context, params params.TrackEventParams) error
}

// MetricsService rolls up and charts dashboard metrics
type MetricsService interface {
	RollupDay(ctx context.Context, day time.Time) (*business.DailyRollup, error)
	GetSummary(ctx context.Context, days int) (*business.MetricsSummary, error)
	RenderChart(ctx context.Context, params params.ChartParams) (*business.RenderedChart, error)
	CompareCharts(ctx context.Context, params params.CompareChartParams) ([]business.RenderedChart, error)
}

// ExportService builds spreadsheet exports
type ExportService interface {
	ExportOrders(ctx context.Context, params params.ExportOrdersParams) ([]byte, error)
}

// NotificationService reacts to order events
type NotificationService interface {
	HandleOrderEvent(ctx context.Context, event business.OrderEvent) error
}
