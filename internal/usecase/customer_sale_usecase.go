package usecase

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// AddCustomerSaleInput carries the fields for a new sale record. All
// fields are optional by contract; missing numerics arrive as 0.
type AddCustomerSaleInput struct {
	Price       float64
	ProductID   string
	ProductName string
	Quantity    float64
}

// CustomerSaleUsecase manages the customer_sales collection.
type CustomerSaleUsecase interface {
	// ListSales returns sales newest first.
	ListSales(ctx context.Context) ([]*entity.CustomerSale, error)
	AddSale(ctx context.Context, input AddCustomerSaleInput) (*entity.CustomerSale, error)
	UpdateSale(ctx context.Context, id string, patch *entity.CustomerSalePatch) error
	RemoveSale(ctx context.Context, id string) error
}
