package client

import (
	"context"
	"net/http"

	"shopkeeper/internal/domain/entity"
)

const inventoryPath = "/api/inventory"

// ListInventory fetches every inventory item.
func (c *Client) ListInventory(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	if err := c.do(ctx, http.MethodGet, inventoryPath, nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// AddInventory creates an inventory item from the given payload.
func (c *Client) AddInventory(ctx context.Context, payload any) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := c.do(ctx, http.MethodPost, inventoryPath, payload, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateInventory merges payload fields into the item with the given id.
func (c *Client) UpdateInventory(ctx context.Context, id string, payload any) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodPut, inventoryPath+"/"+id, payload, &body); err != nil {
		return nil, err
	}

	return body, nil
}

// DeleteInventory removes the item with the given id.
func (c *Client) DeleteInventory(ctx context.Context, id string) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodDelete, inventoryPath+"/"+id, nil, &body); err != nil {
		return nil, err
	}

	return body, nil
}
