package repositories

import (
	"fmt"

	"storefront/internal/models"
)

// StaticCatalogRepository is an in-memory, read-only implementation of
// CatalogRepository. It is populated once at construction and never mutated,
// so no locking is needed.
type StaticCatalogRepository struct {
	products []models.Product
	byID     map[int]int // product id -> index in products
}

// NewStaticCatalogRepository creates a catalog over the given products,
// preserving their order.
func NewStaticCatalogRepository(products []models.Product) *StaticCatalogRepository {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &StaticCatalogRepository{
		products: products,
		byID:     byID,
	}
}

// GetAll returns all products in catalog order.
func (r *StaticCatalogRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns the product with the given identifier, or ErrProductNotFound.
func (r *StaticCatalogRepository) GetByID(id int) (*models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	p := r.products[i]
	return &p, nil
}
