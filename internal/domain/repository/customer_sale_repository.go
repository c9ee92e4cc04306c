package repository

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// CustomerSaleRepository persists sale records in the "customer_sales"
// collection.
type CustomerSaleRepository interface {
	// ListSales returns sales sorted by timestamp, newest first.
	ListSales(ctx context.Context) ([]*entity.CustomerSale, error)

	// CreateSale stores a new sale, fills in the generated id and the
	// server-assigned creation timestamp.
	CreateSale(ctx context.Context, sale *entity.CustomerSale) error

	// UpdateSale merges fields into the document with the given id.
	// Returns ErrCustomerSaleNotFound when the document does not exist.
	UpdateSale(ctx context.Context, id string, fields map[string]any) error

	// DeleteSale removes the document by id; idempotent.
	DeleteSale(ctx context.Context, id string) error
}
