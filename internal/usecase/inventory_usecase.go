// Package usecase declares the application services sitting between the
// HTTP delivery and the repositories.
package usecase

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// AddInventoryInput carries the validated fields for a new inventory
// item. Presence of the required fields is checked at the delivery edge.
type AddInventoryInput struct {
	ProductName string
	Price       float64
	Stock       float64
	VendorID    string
}

// InventoryUsecase manages the inventory collection.
type InventoryUsecase interface {
	ListItems(ctx context.Context) ([]*entity.InventoryItem, error)
	AddItem(ctx context.Context, input AddInventoryInput) (*entity.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, patch *entity.InventoryPatch) error
	RemoveItem(ctx context.Context, id string) error
}
