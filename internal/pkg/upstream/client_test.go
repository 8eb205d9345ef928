// internal/pkg/upstream/client_test.go
package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/market-store-gateway/internal/config"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL
	cfg.Upstream.Timeout = 5 * time.Second

	return NewClient(cfg), server
}

func TestGetDecodesEnvelopedData(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/things/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"id":"42","name":"thing"}}`))
	}))

	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "/things/42", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "42", out.ID)
	assert.Equal(t, "thing", out.Name)
}

func TestGetTranslatesUpstreamErrorBody(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"message":"Order not found"}}`))
	}))

	err := client.Get(context.Background(), "/orders/nope", nil, nil)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Order not found", apiErr.Message)
}

func TestGetFallsBackToStatusMessage(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.Get(context.Background(), "/boom", nil, nil)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "Server error. Please try again later.", apiErr.Message)
}

func TestUnsuccessfulEnvelopeWithOKStatusIsAnError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"error":{"message":"Validation failed"}}`))
	}))

	err := client.Get(context.Background(), "/things", nil, nil)

	require.Error(t, err)
	assert.Equal(t, "Validation failed", err.Error())
}

func TestPostSendsJSONBody(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"ok":true}}`))
	}))

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.Post(context.Background(), "/things", map[string]string{"name": "x"}, &out)

	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestWithTokenAttachesBearerHeader(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer cashier-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true}`))
	}))

	err := client.WithToken("cashier-token").Get(context.Background(), "/secure", nil, nil)
	require.NoError(t, err)
}

func TestWithTokenStripsExistingBearerPrefix(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer cashier-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true}`))
	}))

	err := client.WithToken("Bearer cashier-token").Get(context.Background(), "/secure", nil, nil)
	require.NoError(t, err)
}

func TestGetPaginatedReturnsMeta(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"success":true,"data":[1,2,3],"meta":{"page":2,"limit":10,"total":23}}`))
	}))

	var out []int
	meta, err := client.GetPaginated(context.Background(), "/things", 2, 10, &out)

	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 23, meta.Total)
}

func TestNetworkErrorIsTranslated(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upstream.BaseURL = "http://127.0.0.1:1" // nothing listens here
	cfg.Upstream.Timeout = 500 * time.Millisecond

	client := NewClient(cfg)
	err := client.Get(context.Background(), "/things", nil, nil)

	require.Error(t, err)
	assert.Equal(t, "Network error. Please check your connection.", err.Error())
}
