package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ErrEmptyCart is returned when an order is placed against an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// EventPublisher publishes storefront events to a message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService is the order builder: it converts a non-empty cart plus
// customer details into an immutable order and keeps the session order
// history.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cart      *CartService
	publisher EventPublisher // optional; nil disables event publishing
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, cart *CartService, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cart:      cart,
		publisher: publisher,
	}
}

// PlaceOrder snapshots the current cart into a new pending order, appends it
// to the order history, clears the cart and returns the order. An empty cart
// yields ErrEmptyCart and leaves the history untouched.
//
// The order total is the cart subtotal at placement time; the
// shipping-and-tax figure shown at checkout is display-only and is not
// persisted.
func (s *OrderService) PlaceOrder(customer models.CustomerDetails) (*models.Order, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:        fmt.Sprintf("ORD-%s", uuid.New().String()),
		Items:     lines,
		Total:     s.cart.Subtotal(),
		Customer:  customer,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Append(order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}
	s.cart.Clear()

	s.publishOrderPlaced(order)

	return order, nil
}

// ListOrders returns the append-only order history in insertion order.
func (s *OrderService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// publishOrderPlaced emits an order.placed event. Publishing is best-effort:
// a missing publisher or a broker error never fails the order.
func (s *OrderService) publishOrderPlaced(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"orderID":   order.ID,
		"total":     order.Total,
		"status":    order.Status,
		"itemCount": len(order.Items),
		"createdAt": order.CreatedAt,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed to marshal order event")
		return
	}

	if err := s.publisher.Publish("order", "order.placed", body); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to publish order placed event")
		return
	}
	log.Info().Str("order_id", order.ID).Msg("published order placed event")
}
