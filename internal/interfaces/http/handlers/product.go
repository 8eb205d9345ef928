// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/market-store-gateway/internal/domain/catalog"
)

// ProductHandler proxies catalog lookups to the market API
type ProductHandler struct {
	catalog *catalog.Client
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogClient *catalog.Client) *ProductHandler {
	return &ProductHandler{
		catalog: catalogClient,
	}
}

// Search handles GET /products/search?sku=
func (h *ProductHandler) Search(c *gin.Context) {
	sku := c.Query("sku")
	if sku == "" {
		respondError(c, http.StatusBadRequest, "sku query parameter is required")
		return
	}

	products, err := h.catalog.SearchBySKU(c.Request.Context(), sku)
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadGateway)
		return
	}

	respondOK(c, http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadGateway)
		return
	}

	respondOK(c, http.StatusOK, product)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.catalog.List(c.Request.Context(), page, limit)
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadGateway)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Products,
		"meta": gin.H{
			"page":  result.Page,
			"limit": result.Limit,
			"total": result.Total,
		},
	})
}
