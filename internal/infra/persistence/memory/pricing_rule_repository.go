package memory

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
)

type pricingRuleRepository struct {
	rules *collection[entity.PricingRule]
}

// NewPricingRuleRepository returns an empty in-memory pricing store.
func NewPricingRuleRepository() repository.PricingRuleRepository {
	return &pricingRuleRepository{rules: newCollection[entity.PricingRule]()}
}

func (repo *pricingRuleRepository) ListRules(ctx context.Context) ([]*entity.PricingRule, error) {
	docs := repo.rules.snapshot()
	rules := make([]*entity.PricingRule, 0, len(docs))
	for _, d := range docs {
		rule := d.val
		rules = append(rules, &rule)
	}

	return rules, nil
}

func (repo *pricingRuleRepository) CreateRule(ctx context.Context, rule *entity.PricingRule) error {
	stored := *rule
	stored.ID = ""
	id := repo.rules.insert(stored)

	repo.rules.update(id, func(r *entity.PricingRule) { r.ID = id })
	rule.ID = id

	return nil
}

func (repo *pricingRuleRepository) UpdateRule(ctx context.Context, id string, fields map[string]any) error {
	ok := repo.rules.update(id, func(rule *entity.PricingRule) {
		if v, ok := fields["productId"].(string); ok {
			rule.ProductID = v
		}
		if v, ok := fields["basePrice"].(float64); ok {
			rule.BasePrice = v
		}
		if v, ok := fields["recommendedPrice"].(float64); ok {
			rule.RecommendedPrice = v
		}
	})
	if !ok {
		return repository.ErrPricingRuleNotFound
	}

	return nil
}

func (repo *pricingRuleRepository) DeleteRule(ctx context.Context, id string) error {
	repo.rules.remove(id)

	return nil
}
