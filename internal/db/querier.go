package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=querier.go -destination=../mocks/mock_querier.go -package=mocks

type Querier interface {
	CountActiveProducts(ctx context.Context, category pgtype.Text) (int64, error)
	CountDistinctSessions(ctx context.Context, arg TimeWindowParams) (int64, error)
	CountOrders(ctx context.Context, status pgtype.Text) (int64, error)
	CountSubscriptions(ctx context.Context, status pgtype.Text) (int64, error)
	CountSubscriptionsCreated(ctx context.Context, arg TimeWindowParams) (int64, error)
	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	CreateSubscription(ctx context.Context, arg CreateSubscriptionParams) (Subscription, error)
	CreateTrackingEvent(ctx context.Context, arg CreateTrackingEventParams) (TrackingEvent, error)
	GetOpenSubscription(ctx context.Context, arg GetOpenSubscriptionParams) (Subscription, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (Order, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (Product, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, error)
	GetSubscription(ctx context.Context, id uuid.UUID) (Subscription, error)
	ListActiveProducts(ctx context.Context, arg ListActiveProductsParams) ([]Product, error)
	ListDailyMetrics(ctx context.Context, arg ListDailyMetricsParams) ([]DailyMetric, error)
	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)
	ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error)
	ListOrdersCreatedBetween(ctx context.Context, arg TimeWindowParams) ([]Order, error)
	ListPricesForProducts(ctx context.Context, productIds []uuid.UUID) ([]ProductPrice, error)
	ListSubscriptions(ctx context.Context, arg ListSubscriptionsParams) ([]Subscription, error)
	OrderTotalsByCurrency(ctx context.Context, arg TimeWindowParams) ([]OrderTotalsByCurrencyRow, error)
	SumDailyMetrics(ctx context.Context, arg SumDailyMetricsParams) ([]SumDailyMetricsRow, error)
	TrackingTotalsByEvent(ctx context.Context, arg TimeWindowParams) ([]TrackingTotalsByEventRow, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error)
	UpdateSubscriptionStatus(ctx context.Context, arg UpdateSubscriptionStatusParams) (Subscription, error)
	UpsertDailyMetric(ctx context.Context, arg UpsertDailyMetricParams) error
	UpsertProduct(ctx context.Context, arg UpsertProductParams) (Product, error)
	UpsertProductPrice(ctx context.Context, arg UpsertProductPriceParams) error
}

var _ Querier = (*Queries)(nil)
