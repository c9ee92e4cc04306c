package firestore

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type inventoryModel struct {
	ProductName string  `firestore:"productName"`
	Price       float64 `firestore:"price"`
	Stock       float64 `firestore:"stock"`
	VendorID    string  `firestore:"vendorId"`
}

func toInventoryDomain(id string, m *inventoryModel) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:          id,
		ProductName: m.ProductName,
		Price:       m.Price,
		Stock:       m.Stock,
		VendorID:    m.VendorID,
	}
}

// inventoryRepository implements repository.InventoryRepository.
type inventoryRepository struct {
	client *firestore.Client
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(client *firestore.Client) repository.InventoryRepository {
	return &inventoryRepository{client: client}
}

func (repo *inventoryRepository) ListItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	iter := repo.client.Collection(inventoryCollection).Documents(ctx)
	defer iter.Stop()

	items := make([]*entity.InventoryItem, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate inventory")
		}

		var m inventoryModel
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode inventory document")
		}
		items = append(items, toInventoryDomain(doc.Ref.ID, &m))
	}

	return items, nil
}

func (repo *inventoryRepository) CreateItem(ctx context.Context, item *entity.InventoryItem) error {
	m := &inventoryModel{
		ProductName: item.ProductName,
		Price:       item.Price,
		Stock:       item.Stock,
		VendorID:    item.VendorID,
	}

	ref, _, err := repo.client.Collection(inventoryCollection).Add(ctx, m)
	if err != nil {
		return errors.Wrap(err, "failed to create inventory item")
	}
	item.ID = ref.ID

	return nil
}

func (repo *inventoryRepository) UpdateItem(ctx context.Context, id string, fields map[string]any) error {
	_, err := repo.client.Collection(inventoryCollection).Doc(id).Update(ctx, fieldUpdates(fields))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrInventoryItemNotFound
		}

		return errors.Wrap(err, "failed to update inventory item")
	}

	return nil
}

func (repo *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	// Firestore deletes are no-ops for missing documents, which keeps
	// DELETE idempotent at the API layer.
	if _, err := repo.client.Collection(inventoryCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete inventory item")
	}

	return nil
}
