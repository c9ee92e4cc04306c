package client

import (
	"context"
	"net/http"

	"shopkeeper/internal/domain/entity"
)

const pricingPath = "/api/pricing"

// ListPricing fetches every pricing rule.
func (c *Client) ListPricing(ctx context.Context) ([]entity.PricingRule, error) {
	var rules []entity.PricingRule
	if err := c.do(ctx, http.MethodGet, pricingPath, nil, &rules); err != nil {
		return nil, err
	}

	return rules, nil
}

// AddPricing creates a pricing rule from the given payload.
func (c *Client) AddPricing(ctx context.Context, payload any) (*entity.PricingRule, error) {
	var rule entity.PricingRule
	if err := c.do(ctx, http.MethodPost, pricingPath, payload, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

// UpdatePricing merges payload fields into the rule with the given id.
func (c *Client) UpdatePricing(ctx context.Context, id string, payload any) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodPut, pricingPath+"/"+id, payload, &body); err != nil {
		return nil, err
	}

	return body, nil
}

// DeletePricing removes the rule with the given id.
func (c *Client) DeletePricing(ctx context.Context, id string) (map[string]any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodDelete, pricingPath+"/"+id, nil, &body); err != nil {
		return nil, err
	}

	return body, nil
}
