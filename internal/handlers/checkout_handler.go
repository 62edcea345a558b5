package handlers

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"storefront/internal/models"
	"storefront/internal/services"
)

const emptyCartNotice = "Your cart is empty. Please add items before checking out."

// CheckoutHandler serves the checkout view: the order summary, the form
// submission and the short-lived order confirmation.
//
// The confirmation mirrors the post-order success screen: it stays visible
// for a fixed window and is then cleared by a timer. The timer is held and
// explicitly stopped on replacement and on Close, so it never fires against
// a torn-down view.
type CheckoutHandler struct {
	cart         *services.CartService
	orderService *services.OrderService
	validator    *services.CheckoutValidator

	confirmWindow time.Duration

	mu           sync.Mutex
	confirmation *confirmation
	timer        *time.Timer
}

type confirmation struct {
	OrderID  string    `json:"order_id"`
	PlacedAt time.Time `json:"placed_at"`
}

// NewCheckoutHandler creates a new CheckoutHandler. confirmWindow is how
// long a placed order's confirmation stays available.
func NewCheckoutHandler(cart *services.CartService, orderService *services.OrderService, validator *services.CheckoutValidator, confirmWindow time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		cart:          cart,
		orderService:  orderService,
		validator:     validator,
		confirmWindow: confirmWindow,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/checkout", h.HandleGetCheckout)
	router.Post("/checkout", h.HandleSubmitCheckout)
	router.Get("/checkout/confirmation", h.HandleGetConfirmation)
}

// CheckoutRequest is the checkout form submission.
type CheckoutRequest struct {
	Customer models.CustomerDetails `json:"customer"`
	Payment  models.PaymentDetails  `json:"payment"`
}

// HandleGetCheckout renders the checkout summary. An empty cart yields the
// navigational notice pointing back to the catalog.
func (h *CheckoutHandler) HandleGetCheckout(c *fiber.Ctx) error {
	lines := h.cart.Lines()
	if len(lines) == 0 {
		return c.JSON(fiber.Map{
			"message":  emptyCartNotice,
			"redirect": "/api/v1/products",
		})
	}

	return c.JSON(fiber.Map{
		"items":  lines,
		"totals": h.cart.Totals(),
	})
}

// HandleSubmitCheckout validates the form and places the order. Validation
// failures come back field-indexed, one map per form half; the order is
// placed only when both are empty.
func (h *CheckoutHandler) HandleSubmitCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn().Err(err).Msg("error parsing checkout request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	customerErrs, paymentErrs := h.validator.Validate(req.Customer, req.Payment)
	if len(customerErrs) > 0 || len(paymentErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":        "Validation failed",
			"errors":         customerErrs,
			"payment_errors": paymentErrs,
		})
	}

	order, err := h.orderService.PlaceOrder(req.Customer)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message":  emptyCartNotice,
				"redirect": "/api/v1/products",
			})
		}
		log.Error().Err(err).Msg("error placing order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	h.setConfirmation(order.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order placed successfully",
		"order_id": order.ID,
	})
}

// HandleGetConfirmation returns the confirmation of the most recently placed
// order while its window is open, 404 after it expires.
func (h *CheckoutHandler) HandleGetConfirmation(c *fiber.Ctx) error {
	h.mu.Lock()
	conf := h.confirmation
	h.mu.Unlock()

	if conf == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No recent order confirmation",
		})
	}
	return c.JSON(fiber.Map{
		"message":      "Order placed successfully",
		"confirmation": conf,
	})
}

// Close stops the pending confirmation timer. Called at shutdown.
func (h *CheckoutHandler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.confirmation = nil
}

func (h *CheckoutHandler) setConfirmation(orderID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
	}
	h.confirmation = &confirmation{
		OrderID:  orderID,
		PlacedAt: time.Now(),
	}
	h.timer = time.AfterFunc(h.confirmWindow, h.expireConfirmation)
}

func (h *CheckoutHandler) expireConfirmation() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.confirmation = nil
	h.timer = nil
}
