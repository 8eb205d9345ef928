// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
)

// ListType identifies one of the two cart lists
type ListType string

const (
	ListToBuy    ListType = "to_buy"
	ListWishlist ListType = "wishlist"
)

// Valid reports whether t names one of the two cart lists
func (t ListType) Valid() bool {
	return t == ListToBuy || t == ListWishlist
}

// LineItem represents a product bound into a cart list.
// Name and UnitPrice are snapshots taken at add time and are never
// re-fetched from the catalog. Membership is not a field: an item belongs
// to whichever list physically holds it.
type LineItem struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Color     string          `json:"color,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// Snapshot is the persisted and read-only view of cart state.
// Derived totals are never part of it.
type Snapshot struct {
	ToBuy    []LineItem `json:"to_buy"`
	Wishlist []LineItem `json:"wishlist"`
}

// List returns the snapshot entries for the given list
func (s Snapshot) List(t ListType) []LineItem {
	if t == ListWishlist {
		return s.Wishlist
	}
	return s.ToBuy
}

// Totals represents the derived cart calculations for rendering
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	ToBuyCount    int             `json:"to_buy_count"`
	WishlistCount int             `json:"wishlist_count"`
}
