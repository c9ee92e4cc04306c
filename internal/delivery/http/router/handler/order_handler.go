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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the /api/orders collection.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest is the POST body. No field is required; an absent
// status defaults to PENDING and the timestamp is server-assigned.
type CreateOrderRequest struct {
	Status   string `json:"status"`
	Supplier string `json:"supplier"`
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		h.logger.Error("Error fetching orders", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrOrderFetchFailed)
	}

	return response.OK(c, orders)
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidRequestBody)
	}

	order, err := h.orderUC.AddOrder(c.Request().Context(), usecase.AddOrderInput{
		Status:   req.Status,
		Supplier: req.Supplier,
	})
	if err != nil {
		h.logger.Error("Error creating order", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrOrderCreateFailed)
	}

	return response.Created(c, order)
}

// UpdateOrder handles PUT /api/orders/:id
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id := c.Param("id")

	var patch entity.OrderPatch
	if err := bindPatch(c, &patch); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidUpdatePayload)
	}

	if err := h.orderUC.UpdateOrder(c.Request().Context(), id, &patch); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return response.AppError(c, domainerrors.ErrOrderNotFound)
		}
		h.logger.Error("Error updating order", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrOrderUpdateFailed)
	}

	return response.OK(c, echo.Map{"message": "Order updated successfully"})
}

// DeleteOrder handles DELETE /api/orders/:id
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id := c.Param("id")

	if err := h.orderUC.RemoveOrder(c.Request().Context(), id); err != nil {
		h.logger.Error("Error deleting order", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrOrderDeleteFailed)
	}

	return response.OK(c, echo.Map{"message": "Order deleted successfully"})
}
