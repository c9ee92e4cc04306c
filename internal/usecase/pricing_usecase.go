package usecase

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// AddPricingRuleInput carries the fields for a new pricing rule.
type AddPricingRuleInput struct {
	ProductID        string
	BasePrice        float64
	RecommendedPrice float64
}

// PricingUsecase manages the pricing collection.
type PricingUsecase interface {
	ListRules(ctx context.Context) ([]*entity.PricingRule, error)
	AddRule(ctx context.Context, input AddPricingRuleInput) (*entity.PricingRule, error)
	UpdateRule(ctx context.Context, id string, patch *entity.PricingRulePatch) error
	RemoveRule(ctx context.Context, id string) error
}
