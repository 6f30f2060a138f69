package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTrackingEvent = `-- name: CreateTrackingEvent :one
INSERT INTO tracking_events (event, session_id, page, referrer, properties)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, event, session_id, page, referrer, properties, created_at
`

type CreateTrackingEventParams struct {
	Event      string      `json:"event"`
	SessionID  string      `json:"session_id"`
	Page       pgtype.Text `json:"page"`
	Referrer   pgtype.Text `json:"referrer"`
	Properties []byte      `json:"properties"`
}

func (q *Queries) CreateTrackingEvent(ctx context.Context, arg CreateTrackingEventParams) (TrackingEvent, error) {
	row := q.db.QueryRow(ctx, createTrackingEvent,
		arg.Event,
		arg.SessionID,
		arg.Page,
		arg.Referrer,
		arg.Properties,
	)
	var i TrackingEvent
	err := row.Scan(
		&i.ID,
		&i.Event,
		&i.SessionID,
		&i.Page,
		&i.Referrer,
		&i.Properties,
		&i.CreatedAt,
	)
	return i, err
}

// TimeWindowParams bounds a half-open [From, To) interval.
type TimeWindowParams struct {
	From pgtype.Timestamptz `json:"from"`
	To   pgtype.Timestamptz `json:"to"`
}

const orderTotalsByCurrency = `-- name: OrderTotalsByCurrency :many
SELECT currency, COUNT(*)::bigint AS orders, COALESCE(SUM(total_cents), 0)::bigint AS revenue_cents
FROM orders
WHERE created_at >= $1 AND created_at < $2 AND status <> 'cancelled'
GROUP BY currency
ORDER BY currency
`

type OrderTotalsByCurrencyRow struct {
	Currency     string `json:"currency"`
	Orders       int64  `json:"orders"`
	RevenueCents int64  `json:"revenue_cents"`
}

func (q *Queries) OrderTotalsByCurrency(ctx context.Context, arg TimeWindowParams) ([]OrderTotalsByCurrencyRow, error) {
	rows, err := q.db.Query(ctx, orderTotalsByCurrency, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (OrderTotalsByCurrencyRow, error) {
		var i OrderTotalsByCurrencyRow
		err := row.Scan(&i.Currency, &i.Orders, &i.RevenueCents)
		return i, err
	})
}

const trackingTotalsByEvent = `-- name: TrackingTotalsByEvent :many
SELECT event, COUNT(*)::bigint AS events
FROM tracking_events
WHERE created_at >= $1 AND created_at < $2
GROUP BY event
ORDER BY event
`

type TrackingTotalsByEventRow struct {
	Event  string `json:"event"`
	Events int64  `json:"events"`
}

func (q *Queries) TrackingTotalsByEvent(ctx context.Context, arg TimeWindowParams) ([]TrackingTotalsByEventRow, error) {
	rows, err := q.db.Query(ctx, trackingTotalsByEvent, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (TrackingTotalsByEventRow, error) {
		var i TrackingTotalsByEventRow
		err := row.Scan(&i.Event, &i.Events)
		return i, err
	})
}

const countDistinctSessions = `-- name: CountDistinctSessions :one
SELECT COUNT(DISTINCT session_id)::bigint FROM tracking_events
WHERE created_at >= $1 AND created_at < $2
`

func (q *Queries) CountDistinctSessions(ctx context.Context, arg TimeWindowParams) (int64, error) {
	row := q.db.QueryRow(ctx, countDistinctSessions, arg.From, arg.To)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countSubscriptionsCreated = `-- name: CountSubscriptionsCreated :one
SELECT COUNT(*)::bigint FROM subscriptions
WHERE created_at >= $1 AND created_at < $2
`

func (q *Queries) CountSubscriptionsCreated(ctx context.Context, arg TimeWindowParams) (int64, error) {
	row := q.db.QueryRow(ctx, countSubscriptionsCreated, arg.From, arg.To)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const upsertDailyMetric = `-- name: UpsertDailyMetric :exec
INSERT INTO daily_metrics (metric_date, metric, currency, value)
VALUES ($1, $2, $3, $4)
ON CONFLICT (metric_date, metric, currency) DO UPDATE SET
    value = EXCLUDED.value,
    updated_at = NOW()
`

type UpsertDailyMetricParams struct {
	MetricDate pgtype.Date `json:"metric_date"`
	Metric     string      `json:"metric"`
	Currency   string      `json:"currency"`
	Value      int64       `json:"value"`
}

func (q *Queries) UpsertDailyMetric(ctx context.Context, arg UpsertDailyMetricParams) error {
	_, err := q.db.Exec(ctx, upsertDailyMetric, arg.MetricDate, arg.Metric, arg.Currency, arg.Value)
	return err
}

const listDailyMetrics = `-- name: ListDailyMetrics :many
SELECT metric_date, metric, currency, value, updated_at FROM daily_metrics
WHERE metric = $1 AND currency = $2 AND metric_date BETWEEN $3 AND $4
ORDER BY metric_date
`

type ListDailyMetricsParams struct {
	Metric   string      `json:"metric"`
	Currency string      `json:"currency"`
	FromDate pgtype.Date `json:"from_date"`
	ToDate   pgtype.Date `json:"to_date"`
}

func (q *Queries) ListDailyMetrics(ctx context.Context, arg ListDailyMetricsParams) ([]DailyMetric, error) {
	rows, err := q.db.Query(ctx, listDailyMetrics, arg.Metric, arg.Currency, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (DailyMetric, error) {
		var i DailyMetric
		err := row.Scan(&i.MetricDate, &i.Metric, &i.Currency, &i.Value, &i.UpdatedAt)
		return i, err
	})
}

const sumDailyMetrics = `-- name: SumDailyMetrics :many
SELECT metric, currency, COALESCE(SUM(value), 0)::bigint AS total FROM daily_metrics
WHERE metric_date BETWEEN $1 AND $2
GROUP BY metric, currency
ORDER BY metric, currency
`

type SumDailyMetricsParams struct {
	FromDate pgtype.Date `json:"from_date"`
	ToDate   pgtype.Date `json:"to_date"`
}

type SumDailyMetricsRow struct {
	Metric   string `json:"metric"`
	Currency string `json:"currency"`
	Total    int64  `json:"total"`
}

func (q *Queries) SumDailyMetrics(ctx context.Context, arg SumDailyMetricsParams) ([]SumDailyMetricsRow, error) {
	rows, err := q.db.Query(ctx, sumDailyMetrics, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (SumDailyMetricsRow, error) {
		var i SumDailyMetricsRow
		err := row.Scan(&i.Metric, &i.Currency, &i.Total)
		return i, err
	})
}
