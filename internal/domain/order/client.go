// internal/domain/order/client.go
package order

import (
	"context"
	"fmt"

	"github.com/your-org/market-store-gateway/internal/pkg/upstream"
)

// Client provides order operations against the market API
type Client struct {
	api *upstream.Client
}

// NewClient creates an order client
func NewClient(api *upstream.Client) *Client {
	return &Client{
		api: api,
	}
}

// Create places a new order and returns it with its customer-facing code
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var ord Order
	if err := c.api.Post(ctx, "/orders", req, &ord); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &ord, nil
}

// GetByCode retrieves an order by its customer-facing code
func (c *Client) GetByCode(ctx context.Context, code string) (*Order, error) {
	if code == "" {
		return nil, fmt.Errorf("order code is required")
	}

	var ord Order
	if err := c.api.Get(ctx, "/orders/code/"+code, nil, &ord); err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &ord, nil
}

// GetByID retrieves an order by ID. Requires a cashier token.
func (c *Client) GetByID(ctx context.Context, token, id string) (*Order, error) {
	var ord Order
	if err := c.api.WithToken(token).Get(ctx, "/orders/"+id, nil, &ord); err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &ord, nil
}

// Complete marks an order as paid and reconciled. Requires a cashier token.
func (c *Client) Complete(ctx context.Context, token, id string, req CompleteRequest) (*Order, error) {
	var ord Order
	if err := c.api.WithToken(token).Post(ctx, "/orders/"+id+"/complete", req, &ord); err != nil {
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}
	return &ord, nil
}

// UpdateStatus transitions an order's status. Requires a cashier token.
func (c *Client) UpdateStatus(ctx context.Context, token, id string, status Status) (*Order, error) {
	body := map[string]Status{"status": status}

	var ord Order
	if err := c.api.WithToken(token).Patch(ctx, "/orders/"+id+"/status", body, &ord); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &ord, nil
}
