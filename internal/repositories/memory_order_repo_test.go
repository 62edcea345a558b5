package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

func TestMemoryOrderRepository_AppendKeepsInsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()

	orders, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, orders)

	for i := 0; i < 3; i++ {
		err := repo.Append(&models.Order{
			ID:     fmt.Sprintf("ORD-%d", i),
			Status: models.OrderStatusPending,
		})
		require.NoError(t, err)
	}

	orders, err = repo.GetAll()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i, order := range orders {
		assert.Equal(t, fmt.Sprintf("ORD-%d", i), order.ID)
	}
}

func TestMemoryOrderRepository_GetAllReturnsCopy(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	require.NoError(t, repo.Append(&models.Order{ID: "ORD-a"}))

	orders, err := repo.GetAll()
	require.NoError(t, err)
	orders[0].ID = "mutated"

	orders, err = repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "ORD-a", orders[0].ID)
}
