package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
)

// CatalogProduct is one entry of the seed catalog file.
type CatalogProduct struct {
	Slug          string                 `yaml:"slug"`
	Name          string                 `yaml:"name"`
	NameAr        string                 `yaml:"name_ar"`
	Description   string                 `yaml:"description"`
	DescriptionAr string                 `yaml:"description_ar"`
	Category      string                 `yaml:"category"`
	Image         string                 `yaml:"image"`
	InStock       *bool                  `yaml:"in_stock"`
	Active        *bool                  `yaml:"active"`
	Prices        map[string]interface{} `yaml:"prices"`
}

// Catalog is the seed catalog file.
type Catalog struct {
	Products []CatalogProduct `yaml:"products"`
}

// ParseCatalog decodes and validates a YAML catalog. Prices may be written as
// numbers or strings in major units.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(catalog.Products))
	for i, p := range catalog.Products {
		if p.Slug == "" || p.Name == "" || p.Category == "" {
			return nil, fmt.Errorf("catalog product %d: slug, name and category are required", i)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("catalog product %q is listed twice", p.Slug)
		}
		seen[p.Slug] = true

		if len(p.Prices) == 0 {
			return nil, fmt.Errorf("catalog product %q has no prices", p.Slug)
		}
		for currency, raw := range p.Prices {
			if !slices.Contains(constants.SupportedCurrencies, strings.ToUpper(currency)) {
				return nil, fmt.Errorf("catalog product %q: %w %q", p.Slug, ErrUnsupportedCurrency, currency)
			}
			amount, err := cast.ToFloat64E(raw)
			if err != nil || amount < 0 {
				return nil, fmt.Errorf("catalog product %q: invalid %s price %v", p.Slug, currency, raw)
			}
		}
	}

	return &catalog, nil
}

// PriceCents returns the product's prices in minor units keyed by upper-case currency.
func (p CatalogProduct) PriceCents() map[string]int64 {
	out := make(map[string]int64, len(p.Prices))
	for currency, raw := range p.Prices {
		out[strings.ToUpper(currency)] = helpers.MinorUnits(cast.ToFloat64(raw))
	}
	return out
}

// CatalogService serves the public product catalog
type CatalogService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(queries db.Querier) *CatalogService {
	return &CatalogService{queries: queries, logger: logger.Log}
}

// ListProducts returns a page of active products with their prices and the total count.
func (s *CatalogService) ListProducts(ctx context.Context, p params.ListProductsParams) ([]db.Product, []db.ProductPrice, int64, error) {
	category := helpers.StringToNullableText(strings.TrimSpace(p.Category))

	products, err := s.queries.ListActiveProducts(ctx, db.ListActiveProductsParams{
		Category: category,
		Limit:    p.Limit,
		Offset:   p.Offset,
	})
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	total, err := s.queries.CountActiveProducts(ctx, category)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	prices, err := s.pricesFor(ctx, products...)
	if err != nil {
		return nil, nil, 0, err
	}

	return products, prices, total, nil
}

// GetProductBySlug returns an active product and its prices.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*db.Product, []db.ProductPrice, error) {
	product, err := s.queries.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !product.Active {
		return nil, nil, fmt.Errorf("product %s is inactive: %w", slug, pgx.ErrNoRows)
	}

	prices, err := s.pricesFor(ctx, product)
	if err != nil {
		return nil, nil, err
	}
	return &product, prices, nil
}

func (s *CatalogService) pricesFor(ctx context.Context, products ...db.Product) ([]db.ProductPrice, error) {
	if len(products) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	prices, err := s.queries.ListPricesForProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}
	return prices, nil
}

// SeedCatalog upserts every catalog product and its prices in one transaction.
func SeedCatalog(ctx context.Context, runner db.TxRunner, catalog *Catalog) (int, error) {
	if catalog == nil {
		return 0, errors.New("catalog is nil")
	}

	err := runner.RunInTx(ctx, func(q db.Querier) error {
		for i, cp := range catalog.Products {
			product, err := q.UpsertProduct(ctx, db.UpsertProductParams{
				Slug:          cp.Slug,
				Name:          cp.Name,
				NameAr:        helpers.StringToNullableText(cp.NameAr),
				Description:   helpers.StringToNullableText(cp.Description),
				DescriptionAr: helpers.StringToNullableText(cp.DescriptionAr),
				Category:      cp.Category,
				ImageUrl:      helpers.StringToNullableText(cp.Image),
				InStock:       boolOr(cp.InStock, true),
				Active:        boolOr(cp.Active, true),
				SortOrder:     int32(i),
			})
			if err != nil {
				return fmt.Errorf("failed to upsert product %s: %w", cp.Slug, err)
			}

			for currency, cents := range cp.PriceCents() {
				if err := q.UpsertProductPrice(ctx, db.UpsertProductPriceParams{
					ProductID:   product.ID,
					Currency:    currency,
					AmountCents: cents,
				}); err != nil {
					return fmt.Errorf("failed to upsert %s price for %s: %w", currency, cp.Slug, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Log.Info("Catalog seeded", zap.Int("products", len(catalog.Products)))
	return len(catalog.Products), nil
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
