package impl

import (
	"context"
	"testing"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
	mockRepo "shopkeeper/internal/mocks/repository"
	"shopkeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(orderRepo)

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
	}
}

func TestOrderService_AddOrder_DefaultsStatusToPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = "order-1"
		}).
		Return(nil)

	order, err := fx.service.AddOrder(ctx, usecase.AddOrderInput{Supplier: "Dairy Direct"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "Dairy Direct", order.Supplier)
	assert.Equal(t, "order-1", order.ID)
}

func TestOrderService_AddOrder_KeepsExplicitStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.AddOrder(ctx, usecase.AddOrderInput{Status: "SHIPPED", Supplier: "Metro Packaging"})
	require.NoError(t, err)
	assert.Equal(t, "SHIPPED", order.Status)
}

func TestOrderService_ListOrders_RepoError(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		ListOrders(ctx).
		Return(nil, errors.New("backend unavailable"))

	orders, err := fx.service.ListOrders(ctx)
	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.Contains(t, err.Error(), "failed to list orders")
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	status := "DELIVERED"

	fx.orderRepo.EXPECT().
		UpdateOrder(ctx, "ghost", map[string]any{"status": "DELIVERED"}).
		Return(repository.ErrOrderNotFound)

	err := fx.service.UpdateOrder(ctx, "ghost", &entity.OrderPatch{Status: &status})
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderService_UpdateOrder_EmptyPatch(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.UpdateOrder(context.Background(), "order-1", &entity.OrderPatch{})
	require.NoError(t, err)
}

func TestOrderService_RemoveOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		DeleteOrder(ctx, "order-1").
		Return(nil)

	require.NoError(t, fx.service.RemoveOrder(ctx, "order-1"))
}
