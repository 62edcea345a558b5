package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"storefront/internal/repositories"
	"storefront/internal/services"
)

// CartHandler dispatches cart intents (add, remove, update quantity, clear)
// to the cart aggregate and renders the cart view. Stock clamping happens
// here, at the view boundary; the aggregate does not re-validate stock.
type CartHandler struct {
	cart        *services.CartService
	catalogRepo repositories.CatalogRepository
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *services.CartService, catalogRepo repositories.CatalogRepository) *CartHandler {
	return &CartHandler{
		cart:        cart,
		catalogRepo: catalogRepo,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:lineId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:lineId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// AddItemRequest is the body for adding a product to the cart.
type AddItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"` // optional, defaults to 1
}

// UpdateQuantityRequest is the body for setting a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleGetCart renders the cart view: the lines, the item count and, for a
// non-empty cart, the totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(h.cartView())
}

// HandleAddItem looks up the product, clamps the requested quantity against
// available stock and adds it to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn().Err(err).Msg("error parsing add item request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Quantity must be a positive integer",
		})
	}

	product, err := h.catalogRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", req.ProductID),
			})
		}
		log.Error().Err(err).Int("product_id", req.ProductID).Msg("error looking up product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	if !product.InStock || product.Stock == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": fmt.Sprintf("%s is out of stock", product.Name),
		})
	}
	// View-boundary clamp against available stock.
	if req.Quantity > product.Stock {
		req.Quantity = product.Stock
	}

	line, err := h.cart.AddItem(*product, req.Quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%s added to cart", product.Name),
		"line":    line,
		"cart":    h.cartView(),
	})
}

// HandleUpdateQuantity sets the quantity of a cart line. A quantity of zero
// or less removes the line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn().Err(err).Msg("error parsing update quantity request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.cart.UpdateQuantity(c.Params("lineId"), req.Quantity)
	return c.JSON(h.cartView())
}

// HandleRemoveItem deletes a cart line. Removing an absent line is a no-op.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	h.cart.RemoveItem(c.Params("lineId"))
	return c.JSON(h.cartView())
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.cart.Clear()
	return c.JSON(h.cartView())
}

// cartView builds the cart response. Totals are rendered only for a
// non-empty cart; the flat shipping fee has no meaning on an empty one.
func (h *CartHandler) cartView() fiber.Map {
	lines := h.cart.Lines()
	view := fiber.Map{
		"items":      lines,
		"item_count": h.cart.ItemCount(),
	}
	if len(lines) > 0 {
		view["totals"] = h.cart.Totals()
	}
	return view
}
