// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/your-org/market-store-gateway/internal/domain/checkout"
	"github.com/your-org/market-store-gateway/internal/domain/order"
	"github.com/your-org/market-store-gateway/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and order lookups
type OrderHandler struct {
	checkout *checkout.Service
	orders   *order.Client
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(checkoutService *checkout.Service, orders *order.Client) *OrderHandler {
	return &OrderHandler{
		checkout: checkoutService,
		orders:   orders,
	}
}

// CreateOrderRequest is the checkout submission from the storefront. The
// items come from the session cart, not the request body.
type CreateOrderRequest struct {
	Notes string `json:"notes"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request data")
			return
		}
	}

	sessionID := middleware.GetSessionID(c)
	result, err := h.checkout.PlaceOrder(c.Request.Context(), sessionID, req.Notes)
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadRequest)
		return
	}

	respondOK(c, http.StatusCreated, result)
}

// GetByCode handles GET /orders/code/:code
func (h *OrderHandler) GetByCode(c *gin.Context) {
	ord, err := h.orders.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadGateway)
		return
	}

	respondOK(c, http.StatusOK, ord)
}

// GetCodeQR handles GET /orders/code/:code/qr. It renders the order code as
// a PNG the cashier scans at the register.
func (h *OrderHandler) GetCodeQR(c *gin.Context) {
	code := c.Param("code")

	// Verify the code exists before handing out a scannable image
	ord, err := h.orders.GetByCode(c.Request.Context(), code)
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadGateway)
		return
	}

	png, err := qrcode.Encode(ord.Code, qrcode.Medium, 256)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// GetOrder handles GET /orders/:id, the cashier-side lookup. Requires the
// cashier's credentials, which are forwarded upstream.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		respondError(c, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}

	ord, err := h.orders.GetByID(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadGateway)
		return
	}

	respondOK(c, http.StatusOK, ord)
}

// CompleteOrder handles POST /orders/:id/complete, forwarding the cashier's
// credentials upstream.
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		respondError(c, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}

	var req order.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	ord, err := h.orders.Complete(c.Request.Context(), token, c.Param("id"), req)
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadGateway)
		return
	}

	respondOK(c, http.StatusOK, ord)
}

// UpdateStatusRequest represents a status transition request
type UpdateStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /orders/:id/status, forwarding the cashier's
// credentials upstream.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		respondError(c, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	ord, err := h.orders.UpdateStatus(c.Request.Context(), token, c.Param("id"), req.Status)
	if err != nil {
		respondUpstreamError(c, err, http.StatusBadGateway)
		return
	}

	respondOK(c, http.StatusOK, ord)
}
