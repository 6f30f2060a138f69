package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
)

// ProductHandler serves the public catalog
type ProductHandler struct {
	common *CommonServices
}

// NewProductHandler creates a new ProductHandler instance
func NewProductHandler(common *CommonServices) *ProductHandler {
	return &ProductHandler{common: common}
}

// ListProducts godoc
// @Summary List products
// @Description List active catalog products with their prices
// @Tags products
// @Produce json
// @Param category query string false "Category filter"
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} responses.PaginatedResponse{data=[]responses.ProductResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	products, prices, total, err := h.common.Catalog.ListProducts(c.Request.Context(), params.ListProductsParams{
		Category: strings.TrimSpace(c.Query("category")),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		handleDBError(c, err, "Products not found")
		return
	}

	data := make([]responses.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, helpers.ToProductResponse(p, prices))
	}

	sendPaginatedSuccess(c, data, page, total)
}

// GetProduct godoc
// @Summary Get product by slug
// @Description Get one active product with its prices
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} responses.ProductResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /products/{slug} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, prices, err := h.common.Catalog.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleDBError(c, err, "Product not found")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToProductResponse(*product, prices))
}
