package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/interfaces"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

const (
	maxLineQuantity        = 99
	orderNumberAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	orderNumberSuffixLen   = 6
	orderNumberMaxAttempts = 3
)

// orderTransitions lists the statuses each status may move to.
var orderTransitions = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusConfirmed, constants.OrderStatusCancelled},
	constants.OrderStatusConfirmed: {constants.OrderStatusShipped, constants.OrderStatusCancelled},
	constants.OrderStatusShipped:   {constants.OrderStatusDelivered},
}

// ShippingRule is a flat shipping fee waived once the subtotal reaches FreeOverCents.
type ShippingRule struct {
	FeeCents      int64
	FreeOverCents int64
}

// DefaultShippingRules are the storefront's shipping fees per currency.
var DefaultShippingRules = map[string]ShippingRule{
	constants.USDCurrency: {FeeCents: 500, FreeOverCents: 5000},
	constants.SARCurrency: {FeeCents: 1900, FreeOverCents: 19000},
	constants.AEDCurrency: {FeeCents: 1800, FreeOverCents: 18000},
}

// OrderServiceConfig contains the dependencies of OrderService
type OrderServiceConfig struct {
	Queries       db.Querier
	TxRunner      db.TxRunner
	Publisher     interfaces.OrderEventPublisher
	ShippingRules map[string]ShippingRule
	Now           func() time.Time
	OrderNumber   func(time.Time) string
}

// OrderService places and manages storefront orders
type OrderService struct {
	queries     db.Querier
	txRunner    db.TxRunner
	publisher   interfaces.OrderEventPublisher
	shipping    map[string]ShippingRule
	logger      *zap.Logger
	now         func() time.Time
	orderNumber func(time.Time) string
}

// NewOrderService creates a new order service
func NewOrderService(cfg OrderServiceConfig) *OrderService {
	if cfg.ShippingRules == nil {
		cfg.ShippingRules = DefaultShippingRules
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.OrderNumber == nil {
		cfg.OrderNumber = NewOrderNumber
	}

	return &OrderService{
		queries:     cfg.Queries,
		txRunner:    cfg.TxRunner,
		publisher:   cfg.Publisher,
		shipping:    cfg.ShippingRules,
		logger:      logger.Log,
		now:         cfg.Now,
		orderNumber: cfg.OrderNumber,
	}
}

// NewOrderNumber returns an order number of the form RF-YYYYMMDD-XXXXXX.
func NewOrderNumber(at time.Time) string {
	var b strings.Builder
	b.WriteString("RF-")
	b.WriteString(at.UTC().Format("20060102"))
	b.WriteByte('-')

	limit := big.NewInt(int64(len(orderNumberAlphabet)))
	for range orderNumberSuffixLen {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic(fmt.Sprintf("crypto/rand failed: %v", err))
		}
		b.WriteByte(orderNumberAlphabet[n.Int64()])
	}
	return b.String()
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	return slices.Contains(orderTransitions[from], to)
}

// IsOrderStatus reports whether status is a known order status.
func IsOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending,
		constants.OrderStatusConfirmed,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
		return true
	}
	return false
}

// CalculateTotals sums the cart and applies the shipping rule for currency.
func (s *OrderService) CalculateTotals(lines []business.CartLine, currency string) business.OrderTotals {
	var totals business.OrderTotals
	for _, line := range lines {
		totals.SubtotalCents += line.LineTotal()
	}

	if rule, ok := s.shipping[currency]; ok {
		if rule.FreeOverCents <= 0 || totals.SubtotalCents < rule.FreeOverCents {
			totals.ShippingCents = rule.FeeCents
		}
	}

	totals.TotalCents = totals.SubtotalCents + totals.ShippingCents
	return totals
}

// CreateOrder validates the cart, prices it server side and stores the order
// with its items in one transaction. An order.created event is published
// once the transaction has committed.
func (s *OrderService) CreateOrder(ctx context.Context, p params.CreateOrderParams) (*business.OrderDetails, error) {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	p.CustomerEmail = strings.ToLower(strings.TrimSpace(p.CustomerEmail))
	if p.Language == "" {
		p.Language = constants.EnglishLanguage
	}

	if !slices.Contains(constants.SupportedCurrencies, p.Currency) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, p.Currency)
	}
	if !slices.Contains(constants.PaymentMethods, p.PaymentMethod) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, p.PaymentMethod)
	}

	lines, err := s.resolveCart(ctx, p.Items, p.Currency)
	if err != nil {
		return nil, err
	}

	totals := s.CalculateTotals(lines, p.Currency)

	var details *business.OrderDetails
	for attempt := 1; attempt <= orderNumberMaxAttempts; attempt++ {
		details, err = s.insertOrder(ctx, p, lines, totals)
		if err == nil {
			break
		}
		if !helpers.IsUniqueViolation(err) || attempt == orderNumberMaxAttempts {
			s.logger.Error("Failed to create order", zap.Error(err))
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		s.logger.Warn("Order number collision, retrying", zap.Int("attempt", attempt))
	}

	s.logger.Info("Order created",
		zap.String("order_id", details.Order.ID.String()),
		zap.String("order_number", details.Order.OrderNumber),
		zap.String("currency", details.Order.Currency),
		zap.Int64("total_cents", details.Order.TotalCents),
		zap.Int("items", len(details.Items)))

	s.publish(ctx, business.OrderEvent{
		Type:        constants.OrderCreatedEvent,
		OrderID:     details.Order.ID,
		OrderNumber: details.Order.OrderNumber,
		Status:      details.Order.Status,
		OccurredAt:  s.now().UTC(),
	})

	return details, nil
}

func (s *OrderService) insertOrder(ctx context.Context, p params.CreateOrderParams, lines []business.CartLine, totals business.OrderTotals) (*business.OrderDetails, error) {
	var details business.OrderDetails

	err := s.txRunner.RunInTx(ctx, func(q db.Querier) error {
		order, err := q.CreateOrder(ctx, db.CreateOrderParams{
			OrderNumber:     s.orderNumber(s.now()),
			CustomerName:    strings.TrimSpace(p.CustomerName),
			CustomerEmail:   p.CustomerEmail,
			CustomerPhone:   strings.TrimSpace(p.CustomerPhone),
			ShippingAddress: strings.TrimSpace(p.ShippingAddress),
			City:            strings.TrimSpace(p.City),
			Country:         strings.TrimSpace(p.Country),
			Currency:        p.Currency,
			PaymentMethod:   p.PaymentMethod,
			Status:          constants.OrderStatusPending,
			SubtotalCents:   totals.SubtotalCents,
			ShippingCents:   totals.ShippingCents,
			TotalCents:      totals.TotalCents,
			Notes:           helpers.StringToNullableText(strings.TrimSpace(p.Notes)),
			Language:        p.Language,
		})
		if err != nil {
			return err
		}

		items := make([]db.OrderItem, 0, len(lines))
		for _, line := range lines {
			item, err := q.CreateOrderItem(ctx, db.CreateOrderItemParams{
				OrderID:        order.ID,
				ProductID:      line.Product.ID,
				ProductName:    line.Product.Name,
				Quantity:       line.Quantity,
				UnitPriceCents: line.UnitPriceCents,
				LineTotalCents: line.LineTotal(),
			})
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			items = append(items, item)
		}

		details = business.OrderDetails{Order: order, Items: items}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// resolveCart loads each product, merges repeated lines and prices them in currency.
func (s *OrderService) resolveCart(ctx context.Context, items []params.OrderLineParams, currency string) ([]business.CartLine, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var lines []business.CartLine
	index := make(map[uuid.UUID]int)

	for _, item := range items {
		if item.Quantity < 1 || item.Quantity > maxLineQuantity {
			return nil, ErrInvalidQuantity
		}

		product, err := s.lookupProduct(ctx, item)
		if err != nil {
			return nil, err
		}

		if i, ok := index[product.ID]; ok {
			lines[i].Quantity += item.Quantity
			if lines[i].Quantity > maxLineQuantity {
				return nil, ErrInvalidQuantity
			}
			continue
		}

		index[product.ID] = len(lines)
		lines = append(lines, business.CartLine{Product: product, Quantity: item.Quantity})
	}

	ids := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		ids[i] = line.Product.ID
	}

	prices, err := s.queries.ListPricesForProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}

	priceOf := make(map[uuid.UUID]int64, len(prices))
	for _, price := range prices {
		if price.Currency == currency {
			priceOf[price.ProductID] = price.AmountCents
		}
	}

	for i := range lines {
		amount, ok := priceOf[lines[i].Product.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrPriceUnavailable, lines[i].Product.Slug, currency)
		}
		lines[i].UnitPriceCents = amount
	}

	return lines, nil
}

func (s *OrderService) lookupProduct(ctx context.Context, item params.OrderLineParams) (db.Product, error) {
	var (
		product db.Product
		err     error
		ref     string
	)

	switch {
	case item.ProductID != uuid.Nil:
		ref = item.ProductID.String()
		product, err = s.queries.GetProductByID(ctx, item.ProductID)
	case item.Slug != "":
		ref = item.Slug
		product, err = s.queries.GetProductBySlug(ctx, item.Slug)
	default:
		return db.Product{}, fmt.Errorf("%w: missing product reference", ErrProductUnavailable)
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Product{}, fmt.Errorf("%w: %s", ErrProductUnavailable, ref)
		}
		return db.Product{}, fmt.Errorf("failed to load product %s: %w", ref, err)
	}

	if !product.Active || !product.InStock {
		return db.Product{}, fmt.Errorf("%w: %s", ErrProductUnavailable, ref)
	}

	return product, nil
}

// GetOrderForCustomer returns an order by number when email matches the
// customer email. A mismatch is reported as ErrOrderNotFound.
func (s *OrderService) GetOrderForCustomer(ctx context.Context, orderNumber, email string) (*business.OrderDetails, error) {
	order, err := s.queries.GetOrderByNumber(ctx, strings.ToUpper(strings.TrimSpace(orderNumber)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !strings.EqualFold(order.CustomerEmail, strings.TrimSpace(email)) {
		return nil, ErrOrderNotFound
	}

	return s.withItems(ctx, order)
}

// GetOrder returns an order with its items by ID.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*business.OrderDetails, error) {
	order, err := s.queries.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return s.withItems(ctx, order)
}

func (s *OrderService) withItems(ctx context.Context, order db.Order) (*business.OrderDetails, error) {
	items, err := s.queries.ListOrderItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return &business.OrderDetails{Order: order, Items: items}, nil
}

// ListOrders returns a page of orders, newest first, and the total count.
func (s *OrderService) ListOrders(ctx context.Context, p params.ListOrdersParams) ([]db.Order, int64, error) {
	var status pgtype.Text
	if p.Status != "" {
		if !IsOrderStatus(p.Status) {
			return nil, 0, fmt.Errorf("%w: %q", ErrInvalidOrderStatus, p.Status)
		}
		status = helpers.StringToNullableText(p.Status)
	}

	orders, err := s.queries.ListOrders(ctx, db.ListOrdersParams{
		Status: status,
		Limit:  p.Limit,
		Offset: p.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	total, err := s.queries.CountOrders(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return orders, total, nil
}

// UpdateOrderStatus moves an order along the allowed status transitions and
// publishes order.status_changed.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*db.Order, error) {
	if !IsOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrderStatus, status)
	}

	current, err := s.queries.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !CanTransition(current.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
	}

	updated, err := s.queries.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ID:         id,
		Status:     status,
		FromStatus: current.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// the order changed status concurrently
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("from", current.Status),
		zap.String("to", status))

	s.publish(ctx, business.OrderEvent{
		Type:           constants.OrderStatusChangedEvent,
		OrderID:        updated.ID,
		OrderNumber:    updated.OrderNumber,
		Status:         updated.Status,
		PreviousStatus: current.Status,
		OccurredAt:     s.now().UTC(),
	})

	return &updated, nil
}

// ListOrdersForExport returns every order created in [From, To) with its items.
func (s *OrderService) ListOrdersForExport(ctx context.Context, p params.ExportOrdersParams) ([]business.OrderDetails, error) {
	if p.From.IsZero() || p.To.IsZero() || !p.From.Before(p.To) {
		return nil, ErrInvalidDateRange
	}

	orders, err := s.queries.ListOrdersCreatedBetween(ctx, db.TimeWindowParams{
		From: helpers.TimeToNullableTimestamptz(p.From),
		To:   helpers.TimeToNullableTimestamptz(p.To),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for export: %w", err)
	}

	out := make([]business.OrderDetails, 0, len(orders))
	for _, order := range orders {
		details, err := s.withItems(ctx, order)
		if err != nil {
			return nil, err
		}
		out = append(out, *details)
	}
	return out, nil
}

func (s *OrderService) publish(ctx context.Context, event business.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		// the order is already committed; notification delivery is best effort
		s.logger.Error("Failed to publish order event",
			zap.String("type", event.Type),
			zap.String("order_number", event.OrderNumber),
			zap.Error(err))
	}
}
