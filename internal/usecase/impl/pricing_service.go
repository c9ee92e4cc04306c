package impl

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
	"shopkeeper/internal/errors"
	"shopkeeper/internal/usecase"
)

type pricingService struct {
	pricingRepo repository.PricingRuleRepository
}

// NewPricingService creates a new pricing service instance
func NewPricingService(pricingRepo repository.PricingRuleRepository) usecase.PricingUsecase {
	return &pricingService{
		pricingRepo: pricingRepo,
	}
}

func (s *pricingService) ListRules(ctx context.Context) ([]*entity.PricingRule, error) {
	rules, err := s.pricingRepo.ListRules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules")
	}

	return rules, nil
}

func (s *pricingService) AddRule(ctx context.Context, input usecase.AddPricingRuleInput) (*entity.PricingRule, error) {
	rule := &entity.PricingRule{
		ProductID:        input.ProductID,
		BasePrice:        input.BasePrice,
		RecommendedPrice: input.RecommendedPrice,
	}

	if err := s.pricingRepo.CreateRule(ctx, rule); err != nil {
		return nil, errors.Wrap(err, "failed to create pricing rule")
	}

	return rule, nil
}

func (s *pricingService) UpdateRule(ctx context.Context, id string, patch *entity.PricingRulePatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}

	if err := s.pricingRepo.UpdateRule(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrPricingRuleNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to update pricing rule")
	}

	return nil
}

func (s *pricingService) RemoveRule(ctx context.Context, id string) error {
	if err := s.pricingRepo.DeleteRule(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete pricing rule")
	}

	return nil
}
