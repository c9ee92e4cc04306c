package client

import (
	"context"
	"net/http"

	"shopkeeper/internal/domain/entity"
)

const vendorsPath = "/api/vendors"

// ListVendors fetches every vendor.
func (c *Client) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	if err := c.do(ctx, http.MethodGet, vendorsPath, nil, &vendors); err != nil {
		return nil, err
	}

	return vendors, nil
}

// AddVendor creates a vendor from the given payload.
func (c *Client) AddVendor(ctx context.Context, payload any) (*entity.Vendor, error) {
	var vendor entity.Vendor
	if err := c.do(ctx, http.MethodPost, vendorsPath, payload, &vendor); err != nil {
		return nil, err
	}

	return &vendor, nil
}

// UpdateVendor merges payload fields into the vendor with the given id.
func (c *Client) UpdateVendor(ctx context.Context, id string, payload any) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodPut, vendorsPath+"/"+id, payload, &body); err != nil {
		return nil, err
	}

	return body, nil
}

// DeleteVendor removes the vendor with the given id.
func (c *Client) DeleteVendor(ctx context.Context, id string) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodDelete, vendorsPath+"/"+id, nil, &body); err != nil {
		return nil, err
	}

	return body, nil
}
