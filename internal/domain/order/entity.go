// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// PaymentMethod represents how the customer pays at the register
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "CASH"
	PaymentMethodCard          PaymentMethod = "CARD"
	PaymentMethodMobilePayment PaymentMethod = "MOBILE_PAYMENT"
	PaymentMethodOther         PaymentMethod = "OTHER"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Item represents one line of a placed order
type Item struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Color     string          `json:"color,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Order represents an order as persisted by the market API. Code is the
// short customer-facing identifier the cashier reconciles against.
type Order struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Status        Status          `json:"status"`
	Items         []Item          `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// CreateItem is one line of an order creation request
type CreateItem struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
}

// CreateRequest represents an order creation request. The upstream service
// re-prices every line; the gateway's totals are display-only.
type CreateRequest struct {
	Items []CreateItem `json:"items"`
	Notes string       `json:"notes,omitempty"`
}

// CompleteRequest represents the cashier-side completion call
type CompleteRequest struct {
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}
