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

type orderModel struct {
	Status   string `firestore:"status"`
	Supplier string `firestore:"supplier"`

	// The serverTimestamp option writes Firestore's clock when the field
	// is the zero time, so creation timestamps are never client-supplied.
	Timestamp time.Time `firestore:"timestamp,serverTimestamp"`
}

func toOrderDomain(id string, m *orderModel) *entity.Order {
	return &entity.Order{
		ID:        id,
		Status:    m.Status,
		Supplier:  m.Supplier,
		Timestamp: m.Timestamp,
	}
}

// orderRepository implements repository.OrderRepository.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	iter := repo.client.Collection(ordersCollection).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	orders := make([]*entity.Order, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate orders")
		}

		var m orderModel
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode order document")
		}
		orders = append(orders, toOrderDomain(doc.Ref.ID, &m))
	}

	return orders, nil
}

func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	m := &orderModel{
		Status:   order.Status,
		Supplier: order.Supplier,
	}

	ref, wr, err := repo.client.Collection(ordersCollection).Add(ctx, m)
	if err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	// Resolve the server timestamp synchronously instead of echoing the
	// sentinel back to the client: the write result's update time is the
	// same server clock value Firestore stored.
	order.ID = ref.ID
	order.Timestamp = wr.UpdateTime

	return nil
}

func (repo *orderRepository) UpdateOrder(ctx context.Context, id string, fields map[string]any) error {
	_, err := repo.client.Collection(ordersCollection).Doc(id).Update(ctx, fieldUpdates(fields))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

func (repo *orderRepository) DeleteOrder(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(ordersCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}
