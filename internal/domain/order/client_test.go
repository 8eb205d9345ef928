// internal/domain/order/client_test.go
package order

import (
	"context"
	"encoding/json"
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

func TestCreateOrder(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		var req CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 2)
		assert.Equal(t, "p1", req.Items[0].ProductID)
		assert.Equal(t, 2, req.Items[0].Quantity)
		assert.Equal(t, "see you at 5pm", req.Notes)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{
			"id":"ord-1","code":"AB12CD34","status":"PENDING","payment_status":"UNPAID",
			"subtotal":"350","tax":"73.5","total":"423.5"
		}}`))
	}))

	req := CreateRequest{
		Items: []CreateItem{
			{ProductID: "p1", SKU: "SKU-1", Quantity: 2},
			{ProductID: "p2", SKU: "SKU-2", Quantity: 3, Color: "red"},
		},
		Notes: "see you at 5pm",
	}

	ord, err := client.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", ord.Code)
	assert.Equal(t, StatusPending, ord.Status)
	assert.Equal(t, PaymentStatusUnpaid, ord.PaymentStatus)
	assert.Equal(t, "423.5", ord.Total.String())
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.Create(context.Background(), CreateRequest{})
	assert.Error(t, err)
}

func TestGetByCode(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/code/AB12CD34", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":"ord-1","code":"AB12CD34","status":"PENDING","payment_status":"UNPAID"}}`))
	}))

	ord, err := client.GetByCode(context.Background(), "AB12CD34")

	require.NoError(t, err)
	assert.Equal(t, "ord-1", ord.ID)
}

func TestGetByCodeRequiresCode(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.GetByCode(context.Background(), "")
	assert.Error(t, err)
}

func TestGetByIDForwardsCashierToken(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/ord-1", r.URL.Path)
		assert.Equal(t, "Bearer cashier-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"id":"ord-1","code":"AB12CD34","status":"PENDING","payment_status":"UNPAID"}}`))
	}))

	ord, err := client.GetByID(context.Background(), "cashier-token", "ord-1")

	require.NoError(t, err)
	assert.Equal(t, "ord-1", ord.ID)
}

func TestCompleteForwardsCashierToken(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/ord-1/complete", r.URL.Path)
		assert.Equal(t, "Bearer cashier-token", r.Header.Get("Authorization"))

		var req CompleteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, PaymentMethodCash, req.PaymentMethod)

		w.Write([]byte(`{"success":true,"data":{"id":"ord-1","code":"AB12CD34","status":"COMPLETED","payment_status":"PAID"}}`))
	}))

	ord, err := client.Complete(context.Background(), "cashier-token", "ord-1", CompleteRequest{
		PaymentMethod: PaymentMethodCash,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, ord.Status)
	assert.Equal(t, PaymentStatusPaid, ord.PaymentStatus)
}

func TestUpdateStatus(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/orders/ord-1/status", r.URL.Path)

		var body map[string]Status
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, StatusProcessing, body["status"])

		w.Write([]byte(`{"success":true,"data":{"id":"ord-1","code":"AB12CD34","status":"PROCESSING","payment_status":"UNPAID"}}`))
	}))

	ord, err := client.UpdateStatus(context.Background(), "cashier-token", "ord-1", StatusProcessing)

	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, ord.Status)
}
