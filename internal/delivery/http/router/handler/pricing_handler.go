package handler

import (
	"log/slog"

	"shopkeeper/internal/delivery/http/response"
	"shopkeeper/internal/domain/entity"
	domainerrors "shopkeeper/internal/domain/errors"
	"shopkeeper/internal/domain/repository"
	"shopkeeper/internal/errors"
	"shopkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PricingHandlerParams holds dependencies for PricingHandler, injected by Fx.
type PricingHandlerParams struct {
	fx.In

	PricingUC usecase.PricingUsecase
	Logger    *slog.Logger
}

// PricingHandler serves the /api/pricing collection.
type PricingHandler struct {
	pricingUC usecase.PricingUsecase
	logger    *slog.Logger
}

// NewPricingHandler is the constructor for PricingHandler
func NewPricingHandler(params PricingHandlerParams) *PricingHandler {
	return &PricingHandler{
		pricingUC: params.PricingUC,
		logger:    params.Logger,
	}
}

// CreatePricingRequest is the POST body. No field is required; numeric
// strings coerce and anything non-numeric stores 0.
type CreatePricingRequest struct {
	ProductID        string                `json:"productId"`
	BasePrice        entity.OptionalNumber `json:"basePrice"`
	RecommendedPrice entity.OptionalNumber `json:"recommendedPrice"`
}

// ListPricing handles GET /api/pricing
func (h *PricingHandler) ListPricing(c echo.Context) error {
	rules, err := h.pricingUC.ListRules(c.Request().Context())
	if err != nil {
		h.logger.Error("Error fetching pricing data", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrPricingFetchFailed)
	}

	return response.OK(c, rules)
}

// CreatePricing handles POST /api/pricing
func (h *PricingHandler) CreatePricing(c echo.Context) error {
	var req CreatePricingRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidRequestBody)
	}

	rule, err := h.pricingUC.AddRule(c.Request().Context(), usecase.AddPricingRuleInput{
		ProductID:        req.ProductID,
		BasePrice:        req.BasePrice.Float64(),
		RecommendedPrice: req.RecommendedPrice.Float64(),
	})
	if err != nil {
		h.logger.Error("Error creating pricing rule", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrPricingCreateFailed)
	}

	return response.Created(c, rule)
}

// UpdatePricing handles PUT /api/pricing/:id
func (h *PricingHandler) UpdatePricing(c echo.Context) error {
	id := c.Param("id")

	var patch entity.PricingRulePatch
	if err := bindPatch(c, &patch); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidUpdatePayload)
	}

	if err := h.pricingUC.UpdateRule(c.Request().Context(), id, &patch); err != nil {
		if errors.Is(err, repository.ErrPricingRuleNotFound) {
			return response.AppError(c, domainerrors.ErrPricingNotFound)
		}
		h.logger.Error("Error updating pricing rule", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrPricingUpdateFailed)
	}

	return response.OK(c, echo.Map{"message": "Pricing updated successfully"})
}

// DeletePricing handles DELETE /api/pricing/:id
func (h *PricingHandler) DeletePricing(c echo.Context) error {
	id := c.Param("id")

	if err := h.pricingUC.RemoveRule(c.Request().Context(), id); err != nil {
		h.logger.Error("Error deleting pricing rule", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrPricingDeleteFailed)
	}

	return response.OK(c, echo.Map{"message": "Pricing deleted successfully"})
}
