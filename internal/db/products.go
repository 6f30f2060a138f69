package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const countActiveProducts = `-- name: CountActiveProducts :one
SELECT COUNT(*) FROM products
WHERE active = TRUE
  AND ($1::text IS NULL OR category = $1::text)
`

func (q *Queries) CountActiveProducts(ctx context.Context, category pgtype.Text) (int64, error) {
	row := q.db.QueryRow(ctx, countActiveProducts, category)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getProductByID = `-- name: GetProductByID :one
SELECT id, slug, name, name_ar, description, description_ar, category, image_url, in_stock, active, sort_order, created_at, updated_at FROM products
WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, id uuid.UUID) (Product, error) {
	row := q.db.QueryRow(ctx, getProductByID, id)
	return scanProduct(row)
}

const getProductBySlug = `-- name: GetProductBySlug :one
SELECT id, slug, name, name_ar, description, description_ar, category, image_url, in_stock, active, sort_order, created_at, updated_at FROM products
WHERE slug = $1
`

func (q *Queries) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	row := q.db.QueryRow(ctx, getProductBySlug, slug)
	return scanProduct(row)
}

const listActiveProducts = `-- name: ListActiveProducts :many
SELECT id, slug, name, name_ar, description, description_ar, category, image_url, in_stock, active, sort_order, created_at, updated_at FROM products
WHERE active = TRUE
  AND ($1::text IS NULL OR category = $1::text)
ORDER BY sort_order, name
LIMIT $2 OFFSET $3
`

type ListActiveProductsParams struct {
	Category pgtype.Text `json:"category"`
	Limit    int32       `json:"limit"`
	Offset   int32       `json:"offset"`
}

func (q *Queries) ListActiveProducts(ctx context.Context, arg ListActiveProductsParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, listActiveProducts, arg.Category, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPricesForProducts = `-- name: ListPricesForProducts :many
SELECT product_id, currency, amount_cents FROM product_prices
WHERE product_id = ANY($1::uuid[])
ORDER BY product_id, currency
`

func (q *Queries) ListPricesForProducts(ctx context.Context, productIds []uuid.UUID) ([]ProductPrice, error) {
	rows, err := q.db.Query(ctx, listPricesForProducts, productIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProductPrice{}
	for rows.Next() {
		var i ProductPrice
		if err := rows.Scan(&i.ProductID, &i.Currency, &i.AmountCents); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertProduct = `-- name: UpsertProduct :one
INSERT INTO products (slug, name, name_ar, description, description_ar, category, image_url, in_stock, active, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    name_ar = EXCLUDED.name_ar,
    description = EXCLUDED.description,
    description_ar = EXCLUDED.description_ar,
    category = EXCLUDED.category,
    image_url = EXCLUDED.image_url,
    in_stock = EXCLUDED.in_stock,
    active = EXCLUDED.active,
    sort_order = EXCLUDED.sort_order,
    updated_at = NOW()
RETURNING id, slug, name, name_ar, description, description_ar, category, image_url, in_stock, active, sort_order, created_at, updated_at
`

type UpsertProductParams struct {
	Slug          string      `json:"slug"`
	Name          string      `json:"name"`
	NameAr        pgtype.Text `json:"name_ar"`
	Description   pgtype.Text `json:"description"`
	DescriptionAr pgtype.Text `json:"description_ar"`
	Category      string      `json:"category"`
	ImageUrl      pgtype.Text `json:"image_url"`
	InStock       bool        `json:"in_stock"`
	Active        bool        `json:"active"`
	SortOrder     int32       `json:"sort_order"`
}

func (q *Queries) UpsertProduct(ctx context.Context, arg UpsertProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, upsertProduct,
		arg.Slug,
		arg.Name,
		arg.NameAr,
		arg.Description,
		arg.DescriptionAr,
		arg.Category,
		arg.ImageUrl,
		arg.InStock,
		arg.Active,
		arg.SortOrder,
	)
	return scanProduct(row)
}

const upsertProductPrice = `-- name: UpsertProductPrice :exec
INSERT INTO product_prices (product_id, currency, amount_cents)
VALUES ($1, $2, $3)
ON CONFLICT (product_id, currency) DO UPDATE SET amount_cents = EXCLUDED.amount_cents
`

type UpsertProductPriceParams struct {
	ProductID   uuid.UUID `json:"product_id"`
	Currency    string    `json:"currency"`
	AmountCents int64     `json:"amount_cents"`
}

func (q *Queries) UpsertProductPrice(ctx context.Context, arg UpsertProductPriceParams) error {
	_, err := q.db.Exec(ctx, upsertProductPrice, arg.ProductID, arg.Currency, arg.AmountCents)
	return err
}

func scanProduct(row pgx.Row) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.Name,
		&i.NameAr,
		&i.Description,
		&i.DescriptionAr,
		&i.Category,
		&i.ImageUrl,
		&i.InStock,
		&i.Active,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
