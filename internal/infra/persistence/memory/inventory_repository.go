package memory

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
)

type inventoryRepository struct {
	items *collection[entity.InventoryItem]
}

// NewInventoryRepository returns an empty in-memory inventory store.
func NewInventoryRepository() repository.InventoryRepository {
	return &inventoryRepository{items: newCollection[entity.InventoryItem]()}
}

func (repo *inventoryRepository) ListItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	docs := repo.items.snapshot()
	items := make([]*entity.InventoryItem, 0, len(docs))
	for _, d := range docs {
		item := d.val
		items = append(items, &item)
	}

	return items, nil
}

func (repo *inventoryRepository) CreateItem(ctx context.Context, item *entity.InventoryItem) error {
	stored := *item
	stored.ID = ""
	id := repo.items.insert(stored)

	repo.items.update(id, func(i *entity.InventoryItem) { i.ID = id })
	item.ID = id

	return nil
}

func (repo *inventoryRepository) UpdateItem(ctx context.Context, id string, fields map[string]any) error {
	ok := repo.items.update(id, func(item *entity.InventoryItem) {
		if v, ok := fields["productName"].(string); ok {
			item.ProductName = v
		}
		if v, ok := fields["price"].(float64); ok {
			item.Price = v
		}
		if v, ok := fields["stock"].(float64); ok {
			item.Stock = v
		}
		if v, ok := fields["vendorId"].(string); ok {
			item.VendorID = v
		}
	})
	if !ok {
		return repository.ErrInventoryItemNotFound
	}

	return nil
}

func (repo *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	repo.items.remove(id)

	return nil
}
