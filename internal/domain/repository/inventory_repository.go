// Package repository defines the persistence contracts for the five shop
// collections. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// InventoryRepository persists inventory items in the "inventory"
// collection. ListItems returns documents in store-native order.
type InventoryRepository interface {
	// ListItems returns every inventory item; an empty collection yields
	// an empty, non-nil slice.
	ListItems(ctx context.Context) ([]*entity.InventoryItem, error)

	// CreateItem stores a new item and fills in the generated id.
	CreateItem(ctx context.Context, item *entity.InventoryItem) error

	// UpdateItem merges fields into the document with the given id.
	// Returns ErrInventoryItemNotFound when the document does not exist.
	UpdateItem(ctx context.Context, id string, fields map[string]any) error

	// DeleteItem removes the document by id; deleting a missing id is a
	// successful no-op.
	DeleteItem(ctx context.Context, id string) error
}
