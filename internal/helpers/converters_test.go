package helpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
)

func TestToProductResponse(t *testing.T) {
	id := uuid.New()
	other := uuid.New()
	p := db.Product{
		ID:       id,
		Slug:     "premium-dates",
		Name:     "Premium Medjool Dates",
		NameAr:   pgtype.Text{String: "تمر مجدول فاخر", Valid: true},
		Category: "pantry",
		InStock:  true,
	}
	prices := []db.ProductPrice{
		{ProductID: id, Currency: "USD", AmountCents: 1850},
		{ProductID: other, Currency: "USD", AmountCents: 999},
		{ProductID: id, Currency: "SAR", AmountCents: 6900},
	}

	resp := ToProductResponse(p, prices)

	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "product", resp.Object)
	assert.Equal(t, "تمر مجدول فاخر", resp.NameAr)
	assert.Empty(t, resp.Description)
	require.Len(t, resp.Prices, 2)
	assert.Equal(t, "$18.50", resp.Prices[0].Formatted)
	assert.Equal(t, "SAR 69.00", resp.Prices[1].Formatted)
}

func TestToOrderResponse(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	o := db.Order{
		ID:            uuid.New(),
		OrderNumber:   "RF-20240501-AB12CD",
		Status:        "pending",
		Currency:      "USD",
		SubtotalCents: 4999,
		ShippingCents: 500,
		TotalCents:    5499,
		CreatedAt:     pgtype.Timestamptz{Time: created, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: created, Valid: true},
	}
	items := []db.OrderItem{{
		ProductID:      uuid.New(),
		ProductName:    "Family Meal Box",
		Quantity:       1,
		UnitPriceCents: 4999,
		LineTotalCents: 4999,
	}}

	resp := ToOrderResponse(o, items)

	assert.Equal(t, "order", resp.Object)
	assert.Equal(t, "$54.99", resp.Total.Formatted)
	assert.Equal(t, "$5.00", resp.Shipping.Formatted)
	assert.Equal(t, created.Unix(), resp.CreatedAt)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "$49.99", resp.Items[0].LineTotal.Formatted)
}

func TestToSubscriptionResponse(t *testing.T) {
	s := db.Subscription{
		ID:               uuid.New(),
		Plan:             "weekly",
		Status:           "active",
		NextDeliveryDate: pgtype.Date{Time: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), Valid: true},
	}

	resp := ToSubscriptionResponse(s)
	assert.Equal(t, "2024-05-08", resp.NextDeliveryDate)

	s.NextDeliveryDate = pgtype.Date{}
	assert.Empty(t, ToSubscriptionResponse(s).NextDeliveryDate)
}
