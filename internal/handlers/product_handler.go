package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"storefront/internal/catalog"
	"storefront/internal/repositories"
)

// ProductHandler serves the product listing and details views.
type ProductHandler struct {
	catalogRepo repositories.CatalogRepository
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogRepo repositories.CatalogRepository) *ProductHandler {
	return &ProductHandler{
		catalogRepo: catalogRepo,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Get("/categories", h.HandleListCategories)
}

// HandleListProducts returns the catalog, optionally filtered by the
// category query parameter. "All" (or no parameter) means no filter.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.catalogRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("error listing products")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	category := c.Query("category")
	if category != "" && category != catalog.CategoryAll {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// HandleGetProductByID returns a single product. An unknown or malformed
// identifier renders the not-found view.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", c.Params("id")),
		})
	}

	product, err := h.catalogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		log.Error().Err(err).Int("product_id", id).Msg("error getting product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleListCategories returns the fixed category enumeration.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": catalog.Categories,
	})
}
