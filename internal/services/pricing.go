package services

import (
	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

// Pricing convention, fixed system-wide: a flat shipping fee plus 10% tax on
// the subtotal. Every view that displays a total goes through ComputeTotals,
// so the cart and checkout pages cannot disagree.
var (
	shippingFee = decimal.RequireFromString("10.00")
	taxRate     = decimal.RequireFromString("0.1")
)

// ComputeTotals derives the display totals for a cart subtotal:
// total = subtotal + shipping + tax. Tax and Total round to two decimal
// places from the exact values, not from already-rounded intermediates.
func ComputeTotals(subtotal decimal.Decimal) models.CartTotals {
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(shippingFee).Add(tax)
	return models.CartTotals{
		Subtotal: subtotal.Round(2),
		Shipping: shippingFee,
		Tax:      tax.Round(2),
		Total:    total.Round(2),
	}
}
