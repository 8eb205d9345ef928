// internal/domain/catalog/client.go
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/your-org/market-store-gateway/internal/pkg/upstream"
)

// Client provides product lookups against the market API
type Client struct {
	api *upstream.Client
}

// NewClient creates a catalog client
func NewClient(api *upstream.Client) *Client {
	return &Client{
		api: api,
	}
}

// SearchBySKU searches products by SKU code
func (c *Client) SearchBySKU(ctx context.Context, sku string) ([]Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, fmt.Errorf("sku is required")
	}

	params := url.Values{}
	params.Set("sku", sku)

	var products []Product
	if err := c.api.Get(ctx, "/products/search", params, &products); err != nil {
		return nil, fmt.Errorf("product search failed: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product
func (c *Client) GetByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.api.Get(ctx, "/products/"+id, nil, &product); err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &product, nil
}

// List retrieves one page of active products
func (c *Client) List(ctx context.Context, page, limit int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var products []Product
	meta, err := c.api.GetPaginated(ctx, "/products", page, limit, &products)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ProductPage{
		Products: products,
		Page:     meta.Page,
		Limit:    meta.Limit,
		Total:    meta.Total,
	}, nil
}
