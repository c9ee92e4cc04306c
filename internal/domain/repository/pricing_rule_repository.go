package repository

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// PricingRuleRepository persists pricing rules in the "pricing" collection.
type PricingRuleRepository interface {
	ListRules(ctx context.Context) ([]*entity.PricingRule, error)

	// CreateRule stores a new pricing rule and fills in the generated id.
	CreateRule(ctx context.Context, rule *entity.PricingRule) error

	// UpdateRule merges fields into the document with the given id.
	// Returns ErrPricingRuleNotFound when the document does not exist.
	UpdateRule(ctx context.Context, id string, fields map[string]any) error

	// DeleteRule removes the document by id; idempotent.
	DeleteRule(ctx context.Context, id string) error
}
