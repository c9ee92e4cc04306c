package usecase

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// AddOrderInput carries the fields for a new order. An empty Status is
// defaulted by the service; the creation timestamp is store-assigned.
type AddOrderInput struct {
	Status   string
	Supplier string
}

// OrderUsecase manages the orders collection.
type OrderUsecase interface {
	// ListOrders returns orders newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	AddOrder(ctx context.Context, input AddOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id string, patch *entity.OrderPatch) error
	RemoveOrder(ctx context.Context, id string) error
}
