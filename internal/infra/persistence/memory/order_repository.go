package memory

import (
	"context"
	"sort"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
)

type orderRepository struct {
	orders *collection[entity.Order]
}

// NewOrderRepository returns an empty in-memory order store.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{orders: newCollection[entity.Order]()}
}

func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	docs := repo.orders.snapshot()

	// Newest first; insertion order breaks timestamp ties from the
	// coarse wall clock.
	sort.SliceStable(docs, func(i, j int) bool {
		if !docs[i].val.Timestamp.Equal(docs[j].val.Timestamp) {
			return docs[i].val.Timestamp.After(docs[j].val.Timestamp)
		}

		return docs[i].seq > docs[j].seq
	})

	orders := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		order := d.val
		orders = append(orders, &order)
	}

	return orders, nil
}

func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	stored := *order
	stored.ID = ""
	stored.Timestamp = repo.orders.now()
	id := repo.orders.insert(stored)

	repo.orders.update(id, func(o *entity.Order) { o.ID = id })
	order.ID = id
	order.Timestamp = stored.Timestamp

	return nil
}

func (repo *orderRepository) UpdateOrder(ctx context.Context, id string, fields map[string]any) error {
	ok := repo.orders.update(id, func(order *entity.Order) {
		if v, ok := fields["status"].(string); ok {
			order.Status = v
		}
		if v, ok := fields["supplier"].(string); ok {
			order.Supplier = v
		}
	})
	if !ok {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) DeleteOrder(ctx context.Context, id string) error {
	repo.orders.remove(id)

	return nil
}
