package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the only status this system models; orders are
// created pending and never transition.
const OrderStatusPending = "pending"

// Order is an immutable snapshot of the cart taken at placement time.
// Total carries the cart subtotal at that moment; the shipping/tax display
// figure shown at checkout is not persisted on the order.
type Order struct {
	ID        string          `json:"id"`
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Customer  CustomerDetails `json:"customer"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
