// Package impl contains the concrete application services.
package impl

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
	"shopkeeper/internal/errors"
	"shopkeeper/internal/usecase"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(inventoryRepo repository.InventoryRepository) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
	}
}

func (s *inventoryService) ListItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	items, err := s.inventoryRepo.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items")
	}

	return items, nil
}

func (s *inventoryService) AddItem(ctx context.Context, input usecase.AddInventoryInput) (*entity.InventoryItem, error) {
	item := &entity.InventoryItem{
		ProductName: input.ProductName,
		Price:       input.Price,
		Stock:       input.Stock,
		VendorID:    input.VendorID,
	}

	if err := s.inventoryRepo.CreateItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create inventory item")
	}

	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, patch *entity.InventoryPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		// Nothing to merge; an empty patch is a successful no-op.
		return nil
	}

	if err := s.inventoryRepo.UpdateItem(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to update inventory item")
	}

	return nil
}

func (s *inventoryService) RemoveItem(ctx context.Context, id string) error {
	if err := s.inventoryRepo.DeleteItem(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete inventory item")
	}

	return nil
}
