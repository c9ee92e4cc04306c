package impl

import (
	"context"
	"testing"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
	mockRepo "shopkeeper/internal/mocks/repository"
	"shopkeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pricingServiceFixtures holds all test dependencies for pricing service tests.
type pricingServiceFixtures struct {
	service     usecase.PricingUsecase
	pricingRepo *mockRepo.MockPricingRuleRepository
}

func createTestPricingService(t *testing.T) pricingServiceFixtures {
	pricingRepo := mockRepo.NewMockPricingRuleRepository(t)
	service := NewPricingService(pricingRepo)

	return pricingServiceFixtures{
		service:     service,
		pricingRepo: pricingRepo,
	}
}

func TestPricingService_AddRule(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	fx.pricingRepo.EXPECT().
		CreateRule(ctx, mock.AnythingOfType("*entity.PricingRule")).
		Run(func(_ context.Context, rule *entity.PricingRule) {
			rule.ID = "rule-1"
		}).
		Return(nil)

	rule, err := fx.service.AddRule(ctx, usecase.AddPricingRuleInput{
		ProductID:        "item-1",
		BasePrice:        100,
		RecommendedPrice: 112,
	})
	require.NoError(t, err)
	assert.Equal(t, "rule-1", rule.ID)
	assert.Equal(t, 100.0, rule.BasePrice)
	assert.Equal(t, 112.0, rule.RecommendedPrice)
	assert.InDelta(t, 12.0, rule.MarginImpact(), 1e-9)
}

func TestPricingService_ListRules_RepoError(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	fx.pricingRepo.EXPECT().
		ListRules(ctx).
		Return(nil, errors.New("backend unavailable"))

	rules, err := fx.service.ListRules(ctx)
	assert.Error(t, err)
	assert.Nil(t, rules)
	assert.Contains(t, err.Error(), "failed to list pricing rules")
}

func TestPricingService_UpdateRule_NotFound(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	base := entity.Number(95)

	fx.pricingRepo.EXPECT().
		UpdateRule(ctx, "ghost", map[string]any{"basePrice": 95.0}).
		Return(repository.ErrPricingRuleNotFound)

	err := fx.service.UpdateRule(ctx, "ghost", &entity.PricingRulePatch{BasePrice: &base})
	assert.ErrorIs(t, err, repository.ErrPricingRuleNotFound)
}

func TestPricingService_RemoveRule(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	fx.pricingRepo.EXPECT().
		DeleteRule(ctx, "rule-1").
		Return(nil)

	require.NoError(t, fx.service.RemoveRule(ctx, "rule-1"))
}
