package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines access to the session order history.
// The history is append-only; orders are never updated or deleted.
type OrderRepository interface {
	Append(order *models.Order) error
	GetAll() ([]models.Order, error)
}
