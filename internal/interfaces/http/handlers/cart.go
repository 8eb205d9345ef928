// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/market-store-gateway/internal/domain/cart"
	"github.com/your-org/market-store-gateway/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts *cart.Manager
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager) *CartHandler {
	return &CartHandler{
		carts: carts,
	}
}

// CartView is the cart representation the storefront renders
type CartView struct {
	ToBuy    []cart.LineItem `json:"to_buy"`
	Wishlist []cart.LineItem `json:"wishlist"`
	Totals   cart.Totals     `json:"totals"`
}

// AddItemRequest represents an add-to-cart request. The candidate line item
// arrives fully populated from the product the customer picked; name and
// price become the stored snapshot.
type AddItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	SKU       string          `json:"sku" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Color     string          `json:"color"`
	ImageURL  string          `json:"image_url"`
	List      cart.ListType   `json:"list"`
}

// UpdateItemRequest represents a quantity update. Quantity 0 removes the
// item; the store itself never treats 0 as removal, that policy lives here.
type UpdateItemRequest struct {
	Quantity *int          `json:"quantity" binding:"required,min=0"`
	List     cart.ListType `json:"list"`
}

// MoveItemRequest represents a move between the two lists
type MoveItemRequest struct {
	From cart.ListType `json:"from" binding:"required"`
	To   cart.ListType `json:"to" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.store(c)

	snap := store.Snapshot()
	respondOK(c, http.StatusOK, CartView{
		ToBuy:    snap.ToBuy,
		Wishlist: snap.Wishlist,
		Totals:   store.Totals(),
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}
	if req.UnitPrice.IsNegative() {
		respondError(c, http.StatusBadRequest, "Unit price cannot be negative")
		return
	}

	list := req.List
	if list == "" {
		list = cart.ListToBuy
	}
	if !list.Valid() {
		respondError(c, http.StatusBadRequest, "Unknown cart list")
		return
	}

	store := h.store(c)
	store.AddItem(cart.LineItem{
		ProductID: req.ProductID,
		SKU:       req.SKU,
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Color:     req.Color,
		ImageURL:  req.ImageURL,
	}, list)

	h.respondCart(c, store)
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	list := req.List
	if list == "" {
		list = cart.ListToBuy
	}
	if !list.Valid() {
		respondError(c, http.StatusBadRequest, "Unknown cart list")
		return
	}

	store := h.store(c)
	productID := c.Param("id")

	if *req.Quantity == 0 {
		// Reduce-to-zero is removal, decided here at the calling layer
		store.RemoveItem(productID)
	} else {
		store.UpdateQuantity(productID, *req.Quantity, list)
	}

	h.respondCart(c, store)
}

// RemoveItem handles DELETE /cart/items/:id. Removal is global across both
// lists.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	store := h.store(c)
	store.RemoveItem(c.Param("id"))

	h.respondCart(c, store)
}

// MoveItem handles POST /cart/items/:id/move
func (h *CartHandler) MoveItem(c *gin.Context) {
	var req MoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}
	if !req.From.Valid() || !req.To.Valid() {
		respondError(c, http.StatusBadRequest, "Unknown cart list")
		return
	}

	store := h.store(c)
	store.MoveItem(c.Param("id"), req.From, req.To)

	h.respondCart(c, store)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.store(c)
	store.Clear()

	h.respondCart(c, store)
}

// GetCount handles GET /cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	list := cart.ListType(c.DefaultQuery("list", string(cart.ListToBuy)))
	if !list.Valid() {
		respondError(c, http.StatusBadRequest, "Unknown cart list")
		return
	}

	store := h.store(c)
	respondOK(c, http.StatusOK, gin.H{
		"list":  list,
		"count": store.ItemCount(list),
	})
}

func (h *CartHandler) store(c *gin.Context) *cart.Store {
	return h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
}

func (h *CartHandler) respondCart(c *gin.Context, store *cart.Store) {
	snap := store.Snapshot()
	respondOK(c, http.StatusOK, CartView{
		ToBuy:    snap.ToBuy,
		Wishlist: snap.Wishlist,
		Totals:   store.Totals(),
	})
}
