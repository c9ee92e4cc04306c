package firestore

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type pricingRuleModel struct {
	ProductID        string  `firestore:"productId"`
	BasePrice        float64 `firestore:"basePrice"`
	RecommendedPrice float64 `firestore:"recommendedPrice"`
}

func toPricingRuleDomain(id string, m *pricingRuleModel) *entity.PricingRule {
	return &entity.PricingRule{
		ID:               id,
		ProductID:        m.ProductID,
		BasePrice:        m.BasePrice,
		RecommendedPrice: m.RecommendedPrice,
	}
}

// pricingRuleRepository implements repository.PricingRuleRepository.
type pricingRuleRepository struct {
	client *firestore.Client
}

// NewPricingRuleRepository is the constructor for pricingRuleRepository.
func NewPricingRuleRepository(client *firestore.Client) repository.PricingRuleRepository {
	return &pricingRuleRepository{client: client}
}

func (repo *pricingRuleRepository) ListRules(ctx context.Context) ([]*entity.PricingRule, error) {
	iter := repo.client.Collection(pricingCollection).Documents(ctx)
	defer iter.Stop()

	rules := make([]*entity.PricingRule, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate pricing rules")
		}

		var m pricingRuleModel
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode pricing document")
		}
		rules = append(rules, toPricingRuleDomain(doc.Ref.ID, &m))
	}

	return rules, nil
}

func (repo *pricingRuleRepository) CreateRule(ctx context.Context, rule *entity.PricingRule) error {
	m := &pricingRuleModel{
		ProductID:        rule.ProductID,
		BasePrice:        rule.BasePrice,
		RecommendedPrice: rule.RecommendedPrice,
	}

	ref, _, err := repo.client.Collection(pricingCollection).Add(ctx, m)
	if err != nil {
		return errors.Wrap(err, "failed to create pricing rule")
	}
	rule.ID = ref.ID

	return nil
}

func (repo *pricingRuleRepository) UpdateRule(ctx context.Context, id string, fields map[string]any) error {
	_, err := repo.client.Collection(pricingCollection).Doc(id).Update(ctx, fieldUpdates(fields))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrPricingRuleNotFound
		}

		return errors.Wrap(err, "failed to update pricing rule")
	}

	return nil
}

func (repo *pricingRuleRepository) DeleteRule(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(pricingCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete pricing rule")
	}

	return nil
}
