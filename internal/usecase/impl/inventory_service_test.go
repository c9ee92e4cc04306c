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

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	inventoryRepo *mockRepo.MockInventoryRepository
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewInventoryService(inventoryRepo)

	return inventoryServiceFixtures{
		service:       service,
		inventoryRepo: inventoryRepo,
	}
}

func TestInventoryService_ListItems(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	expected := []*entity.InventoryItem{
		{ID: "item-1", ProductName: "Whole Milk 1L", Price: 60, Stock: 40, VendorID: "vendor-1"},
		{ID: "item-2", ProductName: "Paneer 200g", Price: 90, Stock: 15, VendorID: "vendor-2"},
	}

	fx.inventoryRepo.EXPECT().
		ListItems(ctx).
		Return(expected, nil)

	items, err := fx.service.ListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestInventoryService_ListItems_RepoError(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		ListItems(ctx).
		Return(nil, errors.New("backend unavailable"))

	items, err := fx.service.ListItems(ctx)
	assert.Error(t, err)
	assert.Nil(t, items)
	assert.Contains(t, err.Error(), "failed to list inventory items")
}

func TestInventoryService_AddItem(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := usecase.AddInventoryInput{
		ProductName: "Basmati Rice 5kg",
		Price:       450,
		Stock:       20,
		VendorID:    "vendor-3",
	}

	fx.inventoryRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.InventoryItem")).
		Run(func(_ context.Context, item *entity.InventoryItem) {
			item.ID = "item-9"
		}).
		Return(nil)

	item, err := fx.service.AddItem(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "item-9", item.ID)
	assert.Equal(t, input.ProductName, item.ProductName)
	assert.Equal(t, input.Price, item.Price)
	assert.Equal(t, input.Stock, item.Stock)
	assert.Equal(t, input.VendorID, item.VendorID)
}

func TestInventoryService_AddItem_RepoError(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.InventoryItem")).
		Return(errors.New("write rejected"))

	item, err := fx.service.AddItem(ctx, usecase.AddInventoryInput{ProductName: "Masala Chai 250g"})
	assert.Error(t, err)
	assert.Nil(t, item)
	assert.Contains(t, err.Error(), "failed to create inventory item")
}

func TestInventoryService_UpdateItem(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	price := entity.Number(475)
	patch := &entity.InventoryPatch{Price: &price}

	fx.inventoryRepo.EXPECT().
		UpdateItem(ctx, "item-1", map[string]any{"price": 475.0}).
		Return(nil)

	err := fx.service.UpdateItem(ctx, "item-1", patch)
	require.NoError(t, err)
}

func TestInventoryService_UpdateItem_EmptyPatch(t *testing.T) {
	fx := createTestInventoryService(t)

	// No repository call expected; an empty patch is a no-op.
	err := fx.service.UpdateItem(context.Background(), "item-1", &entity.InventoryPatch{})
	require.NoError(t, err)
}

func TestInventoryService_UpdateItem_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	stock := entity.Number(5)

	fx.inventoryRepo.EXPECT().
		UpdateItem(ctx, "ghost", map[string]any{"stock": 5.0}).
		Return(repository.ErrInventoryItemNotFound)

	err := fx.service.UpdateItem(ctx, "ghost", &entity.InventoryPatch{Stock: &stock})
	assert.ErrorIs(t, err, repository.ErrInventoryItemNotFound)
}

func TestInventoryService_RemoveItem(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		DeleteItem(ctx, "item-1").
		Return(nil)

	require.NoError(t, fx.service.RemoveItem(ctx, "item-1"))
}

func TestInventoryService_RemoveItem_RepoError(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		DeleteItem(ctx, "item-1").
		Return(errors.New("backend unavailable"))

	err := fx.service.RemoveItem(ctx, "item-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete inventory item")
}
