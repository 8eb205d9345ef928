// internal/domain/catalog/client_test.go
package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/market-store-gateway/internal/config"
	"github.com/your-org/market-store-gateway/internal/pkg/upstream"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL
	cfg.Upstream.Timeout = 5 * time.Second

	return NewClient(upstream.NewClient(cfg))
}

func TestSearchBySKU(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		assert.Equal(t, "MILK-001", r.URL.Query().Get("sku"))
		w.Write([]byte(`{"success":true,"data":[
			{"id":"p1","sku":"MILK-001","name":"Whole Milk 1L","price":"1.35","is_active":true}
		]}`))
	}))

	products, err := client.SearchBySKU(context.Background(), "MILK-001")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Whole Milk 1L", products[0].Name)
	assert.Equal(t, "1.35", products[0].Price.String())
}

func TestSearchBySKUTrimsAndRequiresInput(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.SearchBySKU(context.Background(), "   ")
	assert.Error(t, err)
}

func TestGetByID(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/p1", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":"p1","sku":"MILK-001","name":"Whole Milk 1L","price":"1.35","color":"white","is_active":true}}`))
	}))

	product, err := client.GetByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "MILK-001", product.SKU)
	assert.Equal(t, "white", product.Color)
}

func TestGetByIDNotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"message":"Product not found"}}`))
	}))

	_, err := client.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product not found")
}

func TestListClampsPagination(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"success":true,"data":[],"meta":{"page":1,"limit":20,"total":0}}`))
	}))

	page, err := client.List(context.Background(), -3, 5000)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Empty(t, page.Products)
}
