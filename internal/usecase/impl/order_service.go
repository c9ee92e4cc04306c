package impl

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
	"shopkeeper/internal/errors"
	"shopkeeper/internal/usecase"
)

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repository.OrderRepository) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
	}
}

func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (s *orderService) AddOrder(ctx context.Context, input usecase.AddOrderInput) (*entity.Order, error) {
	status := input.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	order := &entity.Order{
		Status:   status,
		Supplier: input.Supplier,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return order, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id string, patch *entity.OrderPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}

	if err := s.orderRepo.UpdateOrder(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

func (s *orderService) RemoveOrder(ctx context.Context, id string) error {
	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}
