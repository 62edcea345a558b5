package services_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Append(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	cart := services.NewCartService()
	service := services.NewOrderService(mockRepo, cart, nil)

	order, err := service.PlaceOrder(validCustomer())

	assert.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Nil(t, order)
	mockRepo.AssertNotCalled(t, "Append", mock.Anything)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	cart := services.NewCartService()
	service := services.NewOrderService(mockRepo, cart, nil)

	_, err := cart.AddItem(testProduct(1, "Wireless Headphones", "79.99"), 2)
	require.NoError(t, err)
	_, err = cart.AddItem(testProduct(3, "Portable Charger", "34.99"), 1)
	require.NoError(t, err)

	mockRepo.On("Append", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.PlaceOrder(validCustomer())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Regexp(t, `^ORD-`, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, "Jane", order.Customer.FirstName)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// The persisted total is the subtotal only; the shipping/tax figure is
	// display-only and never stored.
	assert.True(t, order.Total.Equal(decimal.RequireFromString("194.97")), "got %s", order.Total)

	// Placing the order clears the cart.
	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.ItemCount())

	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_UniqueIDs(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	cart := services.NewCartService()
	service := services.NewOrderService(mockRepo, cart, nil)

	mockRepo.On("Append", mock.AnythingOfType("*models.Order")).Return(nil).Twice()

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		_, err := cart.AddItem(testProduct(1, "Wireless Headphones", "79.99"), 1)
		require.NoError(t, err)
		order, err := service.PlaceOrder(validCustomer())
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "order id %s reused", order.ID)
		seen[order.ID] = true
	}
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_RepositoryError(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	cart := services.NewCartService()
	service := services.NewOrderService(mockRepo, cart, nil)

	_, err := cart.AddItem(testProduct(1, "Wireless Headphones", "79.99"), 1)
	require.NoError(t, err)

	mockRepo.On("Append", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("history full")).Once()

	order, err := service.PlaceOrder(validCustomer())
	assert.Error(t, err)
	assert.Nil(t, order)
	// A failed placement must not eat the cart.
	assert.Len(t, cart.Lines(), 1)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_PublishesEvent(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	cart := services.NewCartService()
	service := services.NewOrderService(mockRepo, cart, mockPublisher)

	_, err := cart.AddItem(testProduct(1, "Wireless Headphones", "79.99"), 1)
	require.NoError(t, err)

	mockRepo.On("Append", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPublisher.On("Publish", "order", "order.placed", mock.Anything).Return(nil).Once()

	_, err = service.PlaceOrder(validCustomer())
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	cart := services.NewCartService()
	service := services.NewOrderService(mockRepo, cart, mockPublisher)

	_, err := cart.AddItem(testProduct(1, "Wireless Headphones", "79.99"), 1)
	require.NoError(t, err)

	mockRepo.On("Append", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPublisher.On("Publish", "order", "order.placed", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	order, err := service.PlaceOrder(validCustomer())
	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_ListOrders(t *testing.T) {
	cart := services.NewCartService()
	orderRepo := repositories.NewMemoryOrderRepository()
	service := services.NewOrderService(orderRepo, cart, nil)

	orders, err := service.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)

	var placed []string
	for i := 0; i < 3; i++ {
		_, err := cart.AddItem(testProduct(i+1, "Product", "10.00"), 1)
		require.NoError(t, err)
		order, err := service.PlaceOrder(validCustomer())
		require.NoError(t, err)
		placed = append(placed, order.ID)
	}

	orders, err = service.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i, order := range orders {
		assert.Equal(t, placed[i], order.ID, "history must keep insertion order")
	}
}
