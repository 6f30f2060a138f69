package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DailyMetric struct {
	MetricDate pgtype.Date        `json:"metric_date"`
	Metric     string             `json:"metric"`
	Currency   string             `json:"currency"`
	Value      int64              `json:"value"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type Order struct {
	ID              uuid.UUID          `json:"id"`
	OrderNumber     string             `json:"order_number"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address"`
	City            string             `json:"city"`
	Country         string             `json:"country"`
	Currency        string             `json:"currency"`
	PaymentMethod   string             `json:"payment_method"`
	Status          string             `json:"status"`
	SubtotalCents   int64              `json:"subtotal_cents"`
	ShippingCents   int64              `json:"shipping_cents"`
	TotalCents      int64              `json:"total_cents"`
	Notes           pgtype.Text        `json:"notes"`
	Language        string             `json:"language"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type OrderItem struct {
	ID             uuid.UUID          `json:"id"`
	OrderID        uuid.UUID          `json:"order_id"`
	ProductID      uuid.UUID          `json:"product_id"`
	ProductName    string             `json:"product_name"`
	Quantity       int32              `json:"quantity"`
	UnitPriceCents int64              `json:"unit_price_cents"`
	LineTotalCents int64              `json:"line_total_cents"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type Product struct {
	ID            uuid.UUID          `json:"id"`
	Slug          string             `json:"slug"`
	Name          string             `json:"name"`
	NameAr        pgtype.Text        `json:"name_ar"`
	Description   pgtype.Text        `json:"description"`
	DescriptionAr pgtype.Text        `json:"description_ar"`
	Category      string             `json:"category"`
	ImageUrl      pgtype.Text        `json:"image_url"`
	InStock       bool               `json:"in_stock"`
	Active        bool               `json:"active"`
	SortOrder     int32              `json:"sort_order"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type ProductPrice struct {
	ProductID   uuid.UUID `json:"product_id"`
	Currency    string    `json:"currency"`
	AmountCents int64     `json:"amount_cents"`
}

type Subscription struct {
	ID               uuid.UUID          `json:"id"`
	Email            string             `json:"email"`
	Name             string             `json:"name"`
	Plan             string             `json:"plan"`
	ProductID        uuid.UUID          `json:"product_id"`
	Quantity         int32              `json:"quantity"`
	Status           string             `json:"status"`
	NextDeliveryDate pgtype.Date        `json:"next_delivery_date"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type TrackingEvent struct {
	ID         int64              `json:"id"`
	Event      string             `json:"event"`
	SessionID  string             `json:"session_id"`
	Page       pgtype.Text        `json:"page"`
	Referrer   pgtype.Text        `json:"referrer"`
	Properties []byte             `json:"properties"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
