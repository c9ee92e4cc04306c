package repository

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// OrderRepository persists orders in the "orders" collection.
type OrderRepository interface {
	// ListOrders returns orders sorted by timestamp, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// CreateOrder stores a new order, fills in the generated id and the
	// server-assigned creation timestamp.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// UpdateOrder merges fields into the document with the given id.
	// Returns ErrOrderNotFound when the document does not exist.
	UpdateOrder(ctx context.Context, id string, fields map[string]any) error

	// DeleteOrder removes the document by id; idempotent.
	DeleteOrder(ctx context.Context, id string) error
}
