package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

// ErrInvalidQuantity is returned when an item is added with a quantity below one.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// CartService is the in-memory cart aggregate. It owns the line collection
// explicitly; the instance is built in main and handed to the handlers, there
// is no package-level cart. Invariants: line ids are unique, every line has
// quantity >= 1, insertion order is preserved.
//
// The service does not validate quantities against product stock; clamping
// against available stock is the calling view layer's responsibility.
type CartService struct {
	mu    sync.RWMutex
	lines []models.CartLine
}

// NewCartService creates an empty cart.
func NewCartService() *CartService {
	return &CartService{}
}

// AddItem adds the product to the cart. If a line for the same product id
// already exists, its quantity is incremented by quantity (merge-by-id);
// otherwise a new line with a fresh unique line id is appended.
func (s *CartService) AddItem(product models.Product, quantity int) (models.CartLine, error) {
	if quantity < 1 {
		return models.CartLine{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == product.ID {
			s.lines[i].Quantity += quantity
			return s.lines[i], nil
		}
	}

	line := models.CartLine{
		LineID:    uuid.New().String(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	}
	s.lines = append(s.lines, line)
	return line, nil
}

// RemoveItem deletes the line with the given id. Removing an absent line is
// a no-op, not an error.
func (s *CartService) RemoveItem(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(lineID)
}

// UpdateQuantity sets the line's quantity to exactly the given value.
// A quantity of zero or less removes the line instead; a line with
// quantity <= 0 must never exist. Absent lines are a no-op.
func (s *CartService) UpdateQuantity(lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(lineID)
		return
	}
	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally. Idempotent.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartService) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Subtotal is the sum of price*quantity over all lines, computed fresh on
// every call; no cached state.
func (s *CartService) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return subtotalOf(s.lines)
}

// ItemCount is the sum of quantities over all lines.
func (s *CartService) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Totals returns the display totals for the current cart contents.
func (s *CartService) Totals() models.CartTotals {
	return ComputeTotals(s.Subtotal())
}

func (s *CartService) removeLocked(lineID string) {
	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

func subtotalOf(lines []models.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}
