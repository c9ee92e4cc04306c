package client

import (
	"context"
	"net/http"

	"shopkeeper/internal/domain/entity"
)

const customerSalesPath = "/api/customer_sales"

// ListCustomerSales fetches every recorded sale, newest first.
func (c *Client) ListCustomerSales(ctx context.Context) ([]entity.CustomerSale, error) {
	var sales []entity.CustomerSale
	if err := c.do(ctx, http.MethodGet, customerSalesPath, nil, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}

// AddCustomerSale records a sale from the given payload.
func (c *Client) AddCustomerSale(ctx context.Context, payload any) (*entity.CustomerSale, error) {
	var sale entity.CustomerSale
	if err := c.do(ctx, http.MethodPost, customerSalesPath, payload, &sale); err != nil {
		return nil, err
	}

	return &sale, nil
}

// UpdateCustomerSale merges payload fields into the sale with the given id.
func (c *Client) UpdateCustomerSale(ctx context.Context, id string, payload any) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodPut, customerSalesPath+"/"+id, payload, &body); err != nil {
		return nil, err
	}

	return body, nil
}

// DeleteCustomerSale removes the sale with the given id.
func (c *Client) DeleteCustomerSale(ctx context.Context, id string) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodDelete, customerSalesPath+"/"+id, nil, &body); err != nil {
		return nil, err
	}

	return body, nil
}
