package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const subscriptionColumns = `id, email, name, plan, product_id, quantity, status, next_delivery_date, created_at, updated_at`

const createSubscription = `-- name: CreateSubscription :one
INSERT INTO subscriptions (email, name, plan, product_id, quantity, status, next_delivery_date)
VALUES ($1, $2, $3, $4, $5, 'active', $6)
RETURNING ` + subscriptionColumns

type CreateSubscriptionParams struct {
	Email            string      `json:"email"`
	Name             string      `json:"name"`
	Plan             string      `json:"plan"`
	ProductID        uuid.UUID   `json:"product_id"`
	Quantity         int32       `json:"quantity"`
	NextDeliveryDate pgtype.Date `json:"next_delivery_date"`
}

func (q *Queries) CreateSubscription(ctx context.Context, arg CreateSubscriptionParams) (Subscription, error) {
	row := q.db.QueryRow(ctx, createSubscription,
		arg.Email,
		arg.Name,
		arg.Plan,
		arg.ProductID,
		arg.Quantity,
		arg.NextDeliveryDate,
	)
	return scanSubscription(row)
}

const getOpenSubscription = `-- name: GetOpenSubscription :one
SELECT ` + subscriptionColumns + ` FROM subscriptions
WHERE lower(email) = lower($1) AND product_id = $2 AND status <> 'cancelled'
LIMIT 1
`

type GetOpenSubscriptionParams struct {
	Email     string    `json:"email"`
	ProductID uuid.UUID `json:"product_id"`
}

func (q *Queries) GetOpenSubscription(ctx context.Context, arg GetOpenSubscriptionParams) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, getOpenSubscription, arg.Email, arg.ProductID))
}

const getSubscription = `-- name: GetSubscription :one
SELECT ` + subscriptionColumns + ` FROM subscriptions
WHERE id = $1
`

func (q *Queries) GetSubscription(ctx context.Context, id uuid.UUID) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, getSubscription, id))
}

const listSubscriptions = `-- name: ListSubscriptions :many
SELECT ` + subscriptionColumns + ` FROM subscriptions
WHERE ($1::text IS NULL OR status = $1::text)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListSubscriptionsParams struct {
	Status pgtype.Text `json:"status"`
	Limit  int32       `json:"limit"`
	Offset int32       `json:"offset"`
}

func (q *Queries) ListSubscriptions(ctx context.Context, arg ListSubscriptionsParams) ([]Subscription, error) {
	rows, err := q.db.Query(ctx, listSubscriptions, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Subscription, error) {
		return scanSubscription(row)
	})
}

const countSubscriptions = `-- name: CountSubscriptions :one
SELECT COUNT(*) FROM subscriptions
WHERE ($1::text IS NULL OR status = $1::text)
`

func (q *Queries) CountSubscriptions(ctx context.Context, status pgtype.Text) (int64, error) {
	row := q.db.QueryRow(ctx, countSubscriptions, status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateSubscriptionStatus = `-- name: UpdateSubscriptionStatus :one
UPDATE subscriptions
SET status = $2, next_delivery_date = $3, updated_at = NOW()
WHERE id = $1
RETURNING ` + subscriptionColumns

type UpdateSubscriptionStatusParams struct {
	ID               uuid.UUID   `json:"id"`
	Status           string      `json:"status"`
	NextDeliveryDate pgtype.Date `json:"next_delivery_date"`
}

func (q *Queries) UpdateSubscriptionStatus(ctx context.Context, arg UpdateSubscriptionStatusParams) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, updateSubscriptionStatus, arg.ID, arg.Status, arg.NextDeliveryDate))
}

func scanSubscription(row pgx.Row) (Subscription, error) {
	var i Subscription
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Name,
		&i.Plan,
		&i.ProductID,
		&i.Quantity,
		&i.Status,
		&i.NextDeliveryDate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
