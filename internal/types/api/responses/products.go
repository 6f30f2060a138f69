package responses

import "github.com/reachfood2024-code/reachfood-sub000/internal/types/business"

// ProductResponse represents a catalog product
type ProductResponse struct {
	ID            string                 `json:"id"`
	Object        string                 `json:"object"`
	Slug          string                 `json:"slug"`
	Name          string                 `json:"name"`
	NameAr        string                 `json:"name_ar,omitempty"`
	Description   string                 `json:"description,omitempty"`
	DescriptionAr string                 `json:"description_ar,omitempty"`
	Category      string                 `json:"category"`
	ImageURL      string                 `json:"image_url,omitempty"`
	InStock       bool                   `json:"in_stock"`
	Prices        []business.MoneyAmount `json:"prices"`
}
