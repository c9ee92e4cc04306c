package impl

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
	"shopkeeper/internal/errors"
	"shopkeeper/internal/usecase"
)

type customerSaleService struct {
	saleRepo repository.CustomerSaleRepository
}

// NewCustomerSaleService creates a new customer sale service instance
func NewCustomerSaleService(saleRepo repository.CustomerSaleRepository) usecase.CustomerSaleUsecase {
	return &customerSaleService{
		saleRepo: saleRepo,
	}
}

func (s *customerSaleService) ListSales(ctx context.Context) ([]*entity.CustomerSale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer sales")
	}

	return sales, nil
}

func (s *customerSaleService) AddSale(ctx context.Context, input usecase.AddCustomerSaleInput) (*entity.CustomerSale, error) {
	sale := &entity.CustomerSale{
		Price:       input.Price,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Quantity:    input.Quantity,
	}

	if err := s.saleRepo.CreateSale(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to create customer sale")
	}

	return sale, nil
}

func (s *customerSaleService) UpdateSale(ctx context.Context, id string, patch *entity.CustomerSalePatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}

	if err := s.saleRepo.UpdateSale(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrCustomerSaleNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to update customer sale")
	}

	return nil
}

func (s *customerSaleService) RemoveSale(ctx context.Context, id string) error {
	if err := s.saleRepo.DeleteSale(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete customer sale")
	}

	return nil
}
