package models

import "github.com/shopspring/decimal"

// CartLine is a single entry in the shopping cart. It snapshots the product
// fields at the time the product was added; only Quantity changes afterwards.
// LineID is distinct from ProductID and unique across the cart.
type CartLine struct {
	LineID    string          `json:"line_id"`
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// CartTotals is the totals triple displayed on the cart and checkout views.
// Tax and Total are rounded to two decimal places for display.
type CartTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
