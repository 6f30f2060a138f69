package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/mocks"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
)

func TestParseCatalog(t *testing.T) {
	t.Run("embedded catalog is valid", func(t *testing.T) {
		catalog, err := services.ParseCatalog(db.CatalogYAML)
		require.NoError(t, err)
		require.NotEmpty(t, catalog.Products)

		for _, p := range catalog.Products {
			prices := p.PriceCents()
			assert.Len(t, prices, 3, p.Slug)
		}
	})

	t.Run("prices as strings and numbers", func(t *testing.T) {
		catalog, err := services.ParseCatalog([]byte(`
products:
  - slug: dates
    name: Dates
    category: pantry
    prices:
      usd: "18.50"
      SAR: 69
`))
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"USD": 1850, "SAR": 6900}, catalog.Products[0].PriceCents())
	})

	tests := []struct {
		name string
		yaml string
	}{
		{"missing slug", "products:\n  - name: A\n    category: c\n    prices: {USD: 1}\n"},
		{"duplicate slug", "products:\n  - {slug: a, name: A, category: c, prices: {USD: 1}}\n  - {slug: a, name: B, category: c, prices: {USD: 1}}\n"},
		{"no prices", "products:\n  - {slug: a, name: A, category: c}\n"},
		{"unsupported currency", "products:\n  - {slug: a, name: A, category: c, prices: {EUR: 1}}\n"},
		{"bad amount", "products:\n  - {slug: a, name: A, category: c, prices: {USD: lots}}\n"},
		{"negative amount", "products:\n  - {slug: a, name: A, category: c, prices: {USD: -1}}\n"},
		{"not yaml", "products: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.ParseCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	q := mocks.NewMockQuerierForTest(t)
	runner := &mocks.InlineTxRunner{Queries: q}

	catalog, err := services.ParseCatalog([]byte(`
products:
  - slug: dates
    name: Dates
    category: pantry
    in_stock: false
    prices: {USD: 18.5, AED: 68}
  - slug: box
    name: Box
    category: meal-boxes
    prices: {USD: 49.99}
`))
	require.NoError(t, err)

	datesID, boxID := uuid.New(), uuid.New()
	q.EXPECT().UpsertProduct(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpsertProductParams) (db.Product, error) {
			switch arg.Slug {
			case "dates":
				assert.False(t, arg.InStock)
				assert.Equal(t, int32(0), arg.SortOrder)
				return db.Product{ID: datesID}, nil
			default:
				assert.True(t, arg.InStock)
				assert.True(t, arg.Active)
				assert.Equal(t, int32(1), arg.SortOrder)
				return db.Product{ID: boxID}, nil
			}
		}).Times(2)
	q.EXPECT().UpsertProductPrice(ctx, db.UpsertProductPriceParams{ProductID: datesID, Currency: "USD", AmountCents: 1850}).Return(nil)
	q.EXPECT().UpsertProductPrice(ctx, db.UpsertProductPriceParams{ProductID: datesID, Currency: "AED", AmountCents: 6800}).Return(nil)
	q.EXPECT().UpsertProductPrice(ctx, db.UpsertProductPriceParams{ProductID: boxID, Currency: "USD", AmountCents: 4999}).Return(nil)

	n, err := services.SeedCatalog(ctx, runner, catalog)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, runner.Calls)

	_, err = services.SeedCatalog(ctx, runner, nil)
	assert.Error(t, err)
}

func TestCatalogService(t *testing.T) {
	ctx := context.Background()
	product := db.Product{ID: uuid.New(), Slug: "premium-dates", Active: true}

	t.Run("list with category", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		svc := services.NewCatalogService(q)
		category := pgtype.Text{String: "pantry", Valid: true}

		q.EXPECT().ListActiveProducts(ctx, db.ListActiveProductsParams{Category: category, Limit: 20}).Return([]db.Product{product}, nil)
		q.EXPECT().CountActiveProducts(ctx, category).Return(int64(1), nil)
		q.EXPECT().ListPricesForProducts(ctx, []uuid.UUID{product.ID}).Return([]db.ProductPrice{{ProductID: product.ID, Currency: "USD", AmountCents: 1850}}, nil)

		products, prices, total, err := svc.ListProducts(ctx, params.ListProductsParams{Category: " pantry ", Limit: 20})
		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Len(t, prices, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("empty page skips price lookup", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		svc := services.NewCatalogService(q)
		q.EXPECT().ListActiveProducts(ctx, gomock.Any()).Return(nil, nil)
		q.EXPECT().CountActiveProducts(ctx, pgtype.Text{}).Return(int64(0), nil)

		products, prices, _, err := svc.ListProducts(ctx, params.ListProductsParams{Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, products)
		assert.Nil(t, prices)
	})

	t.Run("inactive product is not found", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		svc := services.NewCatalogService(q)
		inactive := product
		inactive.Active = false
		q.EXPECT().GetProductBySlug(ctx, product.Slug).Return(inactive, nil)

		_, _, err := svc.GetProductBySlug(ctx, product.Slug)
		assert.True(t, errors.Is(err, pgx.ErrNoRows))
	})
}
