package models

import "github.com/shopspring/decimal"

// Product represents an entry in the store catalog.
// Products are immutable; the catalog is fixed at process start.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"` // display glyph
	Description string          `json:"description"`
	Rating      float64         `json:"rating"` // 0 to 5
	InStock     bool            `json:"in_stock"`
	Stock       int             `json:"stock"`
}
