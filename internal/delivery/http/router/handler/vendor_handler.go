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

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler serves the /api/vendors collection.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

// CreateVendorRequest is the POST body. rating defaults to 0 when absent
// or non-numeric.
type CreateVendorRequest struct {
	Name     string                `json:"name" validate:"required"`
	Location string                `json:"location" validate:"required"`
	Rating   entity.OptionalNumber `json:"rating"`
}

// ListVendors handles GET /api/vendors
func (h *VendorHandler) ListVendors(c echo.Context) error {
	vendors, err := h.vendorUC.ListVendors(c.Request().Context())
	if err != nil {
		h.logger.Error("Error fetching vendors", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrVendorFetchFailed)
	}

	return response.OK(c, vendors)
}

// CreateVendor handles POST /api/vendors
func (h *VendorHandler) CreateVendor(c echo.Context) error {
	var req CreateVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidRequestBody)
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrVendorMissingFields)
	}

	vendor, err := h.vendorUC.AddVendor(c.Request().Context(), usecase.AddVendorInput{
		Name:     req.Name,
		Location: req.Location,
		Rating:   req.Rating.Float64(),
	})
	if err != nil {
		h.logger.Error("Error creating vendor", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrVendorCreateFailed)
	}

	return response.Created(c, vendor)
}

// UpdateVendor handles PUT /api/vendors/:id
func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	id := c.Param("id")

	var patch entity.VendorPatch
	if err := bindPatch(c, &patch); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidUpdatePayload)
	}

	if err := h.vendorUC.UpdateVendor(c.Request().Context(), id, &patch); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return response.AppError(c, domainerrors.ErrVendorNotFound)
		}
		h.logger.Error("Error updating vendor", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrVendorUpdateFailed)
	}

	return response.OK(c, echo.Map{"message": "Vendor updated successfully"})
}

// DeleteVendor handles DELETE /api/vendors/:id
func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	id := c.Param("id")

	if err := h.vendorUC.RemoveVendor(c.Request().Context(), id); err != nil {
		h.logger.Error("Error deleting vendor", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrVendorDeleteFailed)
	}

	return response.OK(c, echo.Map{"message": "Vendor deleted successfully"})
}
