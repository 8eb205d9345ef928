// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/market-store-gateway/internal/domain/cart"
	"github.com/your-org/market-store-gateway/internal/domain/order"
)

// Service turns a session's to-buy list into an order. The wishlist never
// participates in checkout.
type Service struct {
	carts  *cart.Manager
	orders *order.Client
	logger *logrus.Logger
}

// NewService creates a checkout service
func NewService(carts *cart.Manager, orders *order.Client, logger *logrus.Logger) *Service {
	return &Service{
		carts:  carts,
		orders: orders,
		logger: logger,
	}
}

// Result is what the storefront renders after checkout: the created order
// plus the totals the customer saw when submitting.
type Result struct {
	Order  *order.Order `json:"order"`
	Totals cart.Totals  `json:"totals"`
}

// PlaceOrder submits the session's to-buy list upstream and clears the cart
// on success. A failed submission leaves the cart untouched so the customer
// can retry.
func (s *Service) PlaceOrder(ctx context.Context, sessionID, notes string) (*Result, error) {
	store := s.carts.Get(ctx, sessionID)
	snap := store.Snapshot()

	if len(snap.ToBuy) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	// Totals as displayed at submission time; upstream re-prices on its own
	totals := store.Totals()

	req := order.CreateRequest{
		Items: make([]order.CreateItem, 0, len(snap.ToBuy)),
		Notes: notes,
	}
	for _, item := range snap.ToBuy {
		req.Items = append(req.Items, order.CreateItem{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			Color:     item.Color,
		})
	}

	ord, err := s.orders.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	store.Clear()

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"order_code": ord.Code,
		"items":      len(req.Items),
	}).Info("Order placed")

	return &Result{
		Order:  ord,
		Totals: totals,
	}, nil
}
