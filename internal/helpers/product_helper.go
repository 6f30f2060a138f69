package helpers

import (
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

// NewMoneyAmount builds a MoneyAmount with its display string.
func NewMoneyAmount(cents int64, currency string) business.MoneyAmount {
	return business.MoneyAmount{
		AmountCents: cents,
		Currency:    currency,
		Formatted:   FormatMoney(cents, currency),
	}
}

// ToProductResponse converts a product and its prices to the API shape.
func ToProductResponse(p db.Product, prices []db.ProductPrice) responses.ProductResponse {
	resp := responses.ProductResponse{
		ID:            p.ID.String(),
		Object:        "product",
		Slug:          p.Slug,
		Name:          p.Name,
		NameAr:        TextOrEmpty(p.NameAr),
		Description:   TextOrEmpty(p.Description),
		DescriptionAr: TextOrEmpty(p.DescriptionAr),
		Category:      p.Category,
		ImageURL:      TextOrEmpty(p.ImageUrl),
		InStock:       p.InStock,
		Prices:        make([]business.MoneyAmount, 0, len(prices)),
	}
	for _, price := range prices {
		if price.ProductID != p.ID {
			continue
		}
		resp.Prices = append(resp.Prices, NewMoneyAmount(price.AmountCents, price.Currency))
	}
	return resp
}
