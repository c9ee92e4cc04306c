package memory

import (
	"context"
	"sort"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
)

type customerSaleRepository struct {
	sales *collection[entity.CustomerSale]
}

// NewCustomerSaleRepository returns an empty in-memory sales store.
func NewCustomerSaleRepository() repository.CustomerSaleRepository {
	return &customerSaleRepository{sales: newCollection[entity.CustomerSale]()}
}

func (repo *customerSaleRepository) ListSales(ctx context.Context) ([]*entity.CustomerSale, error) {
	docs := repo.sales.snapshot()

	sort.SliceStable(docs, func(i, j int) bool {
		if !docs[i].val.Timestamp.Equal(docs[j].val.Timestamp) {
			return docs[i].val.Timestamp.After(docs[j].val.Timestamp)
		}

		return docs[i].seq > docs[j].seq
	})

	sales := make([]*entity.CustomerSale, 0, len(docs))
	for _, d := range docs {
		sale := d.val
		sales = append(sales, &sale)
	}

	return sales, nil
}

func (repo *customerSaleRepository) CreateSale(ctx context.Context, sale *entity.CustomerSale) error {
	stored := *sale
	stored.ID = ""
	stored.Timestamp = repo.sales.now()
	id := repo.sales.insert(stored)

	repo.sales.update(id, func(s *entity.CustomerSale) { s.ID = id })
	sale.ID = id
	sale.Timestamp = stored.Timestamp

	return nil
}

func (repo *customerSaleRepository) UpdateSale(ctx context.Context, id string, fields map[string]any) error {
	ok := repo.sales.update(id, func(sale *entity.CustomerSale) {
		if v, ok := fields["price"].(float64); ok {
			sale.Price = v
		}
		if v, ok := fields["productId"].(string); ok {
			sale.ProductID = v
		}
		if v, ok := fields["productname"].(string); ok {
			sale.ProductName = v
		}
		if v, ok := fields["quantity"].(float64); ok {
			sale.Quantity = v
		}
	})
	if !ok {
		return repository.ErrCustomerSaleNotFound
	}

	return nil
}

func (repo *customerSaleRepository) DeleteSale(ctx context.Context, id string) error {
	repo.sales.remove(id)

	return nil
}
