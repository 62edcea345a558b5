package repositories

import (
	"errors"

	"storefront/internal/models"
)

// ErrProductNotFound is returned when a product identifier is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines read-only access to the product catalog.
type CatalogRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
}
