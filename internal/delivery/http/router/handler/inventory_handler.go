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

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler serves the /api/inventory collection.
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// CreateInventoryRequest is the POST body. productName and vendorId must
// be non-empty; price and stock must be present but may be zero, and
// numeric strings coerce.
type CreateInventoryRequest struct {
	ProductName string         `json:"productName" validate:"required"`
	Price       *entity.Number `json:"price" validate:"required"`
	Stock       *entity.Number `json:"stock" validate:"required"`
	VendorID    string         `json:"vendorId" validate:"required"`
}

// ListInventory handles GET /api/inventory
func (h *InventoryHandler) ListInventory(c echo.Context) error {
	items, err := h.inventoryUC.ListItems(c.Request().Context())
	if err != nil {
		h.logger.Error("Error fetching inventory", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrInventoryFetchFailed)
	}

	return response.OK(c, items)
}

// CreateInventory handles POST /api/inventory
func (h *InventoryHandler) CreateInventory(c echo.Context) error {
	var req CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidRequestBody)
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrMissingRequiredFields)
	}

	item, err := h.inventoryUC.AddItem(c.Request().Context(), usecase.AddInventoryInput{
		ProductName: req.ProductName,
		Price:       req.Price.Float64(),
		Stock:       req.Stock.Float64(),
		VendorID:    req.VendorID,
	})
	if err != nil {
		h.logger.Error("Error creating product", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrInventoryCreateFailed)
	}

	return response.Created(c, item)
}

// UpdateInventory handles PUT /api/inventory/:id
func (h *InventoryHandler) UpdateInventory(c echo.Context) error {
	id := c.Param("id")

	var patch entity.InventoryPatch
	if err := bindPatch(c, &patch); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidUpdatePayload)
	}

	if err := h.inventoryUC.UpdateItem(c.Request().Context(), id, &patch); err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return response.AppError(c, domainerrors.ErrInventoryItemNotFound)
		}
		h.logger.Error("Error updating product", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrInventoryUpdateFailed)
	}

	return response.OK(c, echo.Map{
		"id":      id,
		"message": "Product updated successfully",
		"updates": patch.Fields(),
	})
}

// DeleteInventory handles DELETE /api/inventory/:id
func (h *InventoryHandler) DeleteInventory(c echo.Context) error {
	id := c.Param("id")

	if err := h.inventoryUC.RemoveItem(c.Request().Context(), id); err != nil {
		h.logger.Error("Error deleting product", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrInventoryDeleteFailed)
	}

	return response.OK(c, echo.Map{
		"id":      id,
		"message": "Product deleted successfully",
	})
}
