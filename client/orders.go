package client

import (
	"context"
	"net/http"

	"shopkeeper/internal/domain/entity"
)

const ordersPath = "/api/orders"

// ListOrders fetches every order, newest first.
func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.do(ctx, http.MethodGet, ordersPath, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// AddOrder creates an order from the given payload.
func (c *Client) AddOrder(ctx context.Context, payload any) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodPost, ordersPath, payload, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrder merges payload fields into the order with the given id.
func (c *Client) UpdateOrder(ctx context.Context, id string, payload any) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodPut, ordersPath+"/"+id, payload, &body); err != nil {
		return nil, err
	}

	return body, nil
}

// DeleteOrder removes the order with the given id.
func (c *Client) DeleteOrder(ctx context.Context, id string) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodDelete, ordersPath+"/"+id, nil, &body); err != nil {
		return nil, err
	}

	return body, nil
}
