package firestore

import (
	"context"
	"time"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type customerSaleModel struct {
	Price       float64   `firestore:"price"`
	ProductID   string    `firestore:"productId"`
	ProductName string    `firestore:"productname"`
	Quantity    float64   `firestore:"quantity"`
	Timestamp   time.Time `firestore:"timestamp,serverTimestamp"`
}

func toCustomerSaleDomain(id string, m *customerSaleModel) *entity.CustomerSale {
	return &entity.CustomerSale{
		ID:          id,
		Price:       m.Price,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Timestamp:   m.Timestamp,
	}
}

// customerSaleRepository implements repository.CustomerSaleRepository.
type customerSaleRepository struct {
	client *firestore.Client
}

// NewCustomerSaleRepository is the constructor for customerSaleRepository.
func NewCustomerSaleRepository(client *firestore.Client) repository.CustomerSaleRepository {
	return &customerSaleRepository{client: client}
}

func (repo *customerSaleRepository) ListSales(ctx context.Context) ([]*entity.CustomerSale, error) {
	iter := repo.client.Collection(customerSalesCollection).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	sales := make([]*entity.CustomerSale, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate customer sales")
		}

		var m customerSaleModel
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode customer sale document")
		}
		sales = append(sales, toCustomerSaleDomain(doc.Ref.ID, &m))
	}

	return sales, nil
}

func (repo *customerSaleRepository) CreateSale(ctx context.Context, sale *entity.CustomerSale) error {
	m := &customerSaleModel{
		Price:       sale.Price,
		ProductID:   sale.ProductID,
		ProductName: sale.ProductName,
		Quantity:    sale.Quantity,
	}

	ref, wr, err := repo.client.Collection(customerSalesCollection).Add(ctx, m)
	if err != nil {
		return errors.Wrap(err, "failed to create customer sale")
	}
	sale.ID = ref.ID
	sale.Timestamp = wr.UpdateTime

	return nil
}

func (repo *customerSaleRepository) UpdateSale(ctx context.Context, id string, fields map[string]any) error {
	_, err := repo.client.Collection(customerSalesCollection).Doc(id).Update(ctx, fieldUpdates(fields))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrCustomerSaleNotFound
		}

		return errors.Wrap(err, "failed to update customer sale")
	}

	return nil
}

func (repo *customerSaleRepository) DeleteSale(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(customerSalesCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete customer sale")
	}

	return nil
}
