package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, order_number, customer_name, customer_email, customer_phone, shipping_address, city, country, currency, payment_method, status, subtotal_cents, shipping_cents, total_cents, notes, language, created_at, updated_at`

const countOrders = `-- name: CountOrders :one
SELECT COUNT(*) FROM orders
WHERE ($1::text IS NULL OR status = $1::text)
`

func (q *Queries) CountOrders(ctx context.Context, status pgtype.Text) (int64, error) {
	row := q.db.QueryRow(ctx, countOrders, status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders (
    order_number, customer_name, customer_email, customer_phone, shipping_address,
    city, country, currency, payment_method, status, subtotal_cents, shipping_cents,
    total_cents, notes, language
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + orderColumns

type CreateOrderParams struct {
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	City            string      `json:"city"`
	Country         string      `json:"country"`
	Currency        string      `json:"currency"`
	PaymentMethod   string      `json:"payment_method"`
	Status          string      `json:"status"`
	SubtotalCents   int64       `json:"subtotal_cents"`
	ShippingCents   int64       `json:"shipping_cents"`
	TotalCents      int64       `json:"total_cents"`
	Notes           pgtype.Text `json:"notes"`
	Language        string      `json:"language"`
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.OrderNumber,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.ShippingAddress,
		arg.City,
		arg.Country,
		arg.Currency,
		arg.PaymentMethod,
		arg.Status,
		arg.SubtotalCents,
		arg.ShippingCents,
		arg.TotalCents,
		arg.Notes,
		arg.Language,
	)
	return scanOrder(row)
}

const createOrderItem = `-- name: CreateOrderItem :one
INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents, line_total_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, order_id, product_id, product_name, quantity, unit_price_cents, line_total_cents, created_at
`

type CreateOrderItemParams struct {
	OrderID        uuid.UUID `json:"order_id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem,
		arg.OrderID,
		arg.ProductID,
		arg.ProductName,
		arg.Quantity,
		arg.UnitPriceCents,
		arg.LineTotalCents,
	)
	return scanOrderItem(row)
}

const getOrderByID = `-- name: GetOrderByID :one
SELECT ` + orderColumns + ` FROM orders
WHERE id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderByID, id))
}

const getOrderByNumber = `-- name: GetOrderByNumber :one
SELECT ` + orderColumns + ` FROM orders
WHERE order_number = $1
`

func (q *Queries) GetOrderByNumber(ctx context.Context, orderNumber string) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderByNumber, orderNumber))
}

const listOrderItems = `-- name: ListOrderItems :many
SELECT id, order_id, product_id, product_name, quantity, unit_price_cents, line_total_cents, created_at FROM order_items
WHERE order_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (OrderItem, error) {
		return scanOrderItem(row)
	})
}

const listOrders = `-- name: ListOrders :many
SELECT ` + orderColumns + ` FROM orders
WHERE ($1::text IS NULL OR status = $1::text)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListOrdersParams struct {
	Status pgtype.Text `json:"status"`
	Limit  int32       `json:"limit"`
	Offset int32       `json:"offset"`
}

func (q *Queries) ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

const listOrdersCreatedBetween = `-- name: ListOrdersCreatedBetween :many
SELECT ` + orderColumns + ` FROM orders
WHERE created_at >= $1 AND created_at < $2
ORDER BY created_at
`

func (q *Queries) ListOrdersCreatedBetween(ctx context.Context, arg TimeWindowParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersCreatedBetween, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

const updateOrderStatus = `-- name: UpdateOrderStatus :one
UPDATE orders
SET status = $2, updated_at = NOW()
WHERE id = $1 AND status = $3
RETURNING ` + orderColumns

type UpdateOrderStatusParams struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	FromStatus string    `json:"from_status"`
}

// UpdateOrderStatus only matches while the order is still in FromStatus, so
// concurrent transitions surface as pgx.ErrNoRows.
func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, updateOrderStatus, arg.ID, arg.Status, arg.FromStatus))
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Order, error) {
		return scanOrder(row)
	})
}

func scanOrder(row pgx.Row) (Order, error) {
	var i Order
	err := row.Scan(
		&i.ID,
		&i.OrderNumber,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CustomerPhone,
		&i.ShippingAddress,
		&i.City,
		&i.Country,
		&i.Currency,
		&i.PaymentMethod,
		&i.Status,
		&i.SubtotalCents,
		&i.ShippingCents,
		&i.TotalCents,
		&i.Notes,
		&i.Language,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanOrderItem(row pgx.Row) (OrderItem, error) {
	var i OrderItem
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.ProductID,
		&i.ProductName,
		&i.Quantity,
		&i.UnitPriceCents,
		&i.LineTotalCents,
		&i.CreatedAt,
	)
	return i, err
}
