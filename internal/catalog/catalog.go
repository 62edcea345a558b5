// Package catalog holds the static mock catalog the storefront runs against.
// There is no backing store; the data is fixed at compile time.
package catalog

import (
	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

// CategoryAll is the sentinel category meaning "no filter".
const CategoryAll = "All"

// Categories is the fixed category enumeration, including the All sentinel.
var Categories = []string{CategoryAll, "Electronics", "Accessories"}

// Products returns the catalog in display order.
func Products() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Wireless Headphones", Price: price("79.99"), Category: "Electronics", Image: "🎧", Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life", Rating: 4.5, InStock: true, Stock: 15},
		{ID: 2, Name: "Smart Watch", Price: price("199.99"), Category: "Electronics", Image: "⌚", Description: "Feature-rich smartwatch with health tracking and fitness monitoring", Rating: 4.8, InStock: true, Stock: 8},
		{ID: 3, Name: "Portable Charger", Price: price("34.99"), Category: "Accessories", Image: "🔌", Description: "Fast charging portable charger with 20000mAh capacity", Rating: 4.2, InStock: true, Stock: 25},
		{ID: 4, Name: "USB-C Cable", Price: price("12.99"), Category: "Accessories", Image: "🔗", Description: "Durable USB-C cable for fast charging and data transfer", Rating: 4.3, InStock: true, Stock: 50},
		{ID: 5, Name: "4K Webcam", Price: price("129.99"), Category: "Electronics", Image: "📷", Description: "4K resolution webcam with auto-focus for video conferencing", Rating: 4.6, InStock: true, Stock: 12},
		{ID: 6, Name: "Mechanical Keyboard", Price: price("99.99"), Category: "Accessories", Image: "⌨️", Description: "RGB mechanical keyboard with customizable switches", Rating: 4.7, InStock: true, Stock: 10},
		{ID: 7, Name: "Mouse Pad", Price: price("19.99"), Category: "Accessories", Image: "🖱️", Description: "Extended gaming mouse pad with non-slip base", Rating: 4.4, InStock: true, Stock: 30},
		{ID: 8, Name: "Laptop Stand", Price: price("44.99"), Category: "Accessories", Image: "📱", Description: "Adjustable laptop stand for ergonomic workspace", Rating: 4.5, InStock: true, Stock: 18},
		{ID: 9, Name: "Bluetooth Speaker", Price: price("59.99"), Category: "Electronics", Image: "🔊", Description: "Waterproof Bluetooth speaker with 360-degree sound", Rating: 4.6, InStock: false, Stock: 0},
		{ID: 10, Name: "Phone Case", Price: price("14.99"), Category: "Accessories", Image: "📞", Description: "Protective phone case with shock absorption", Rating: 4.3, InStock: true, Stock: 45},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
