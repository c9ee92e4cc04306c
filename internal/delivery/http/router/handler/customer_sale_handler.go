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

// CustomerSaleHandlerParams holds dependencies for CustomerSaleHandler, injected by Fx.
type CustomerSaleHandlerParams struct {
	fx.In

	SaleUC usecase.CustomerSaleUsecase
	Logger *slog.Logger
}

// CustomerSaleHandler serves the /api/customer_sales collection.
type CustomerSaleHandler struct {
	saleUC usecase.CustomerSaleUsecase
	logger *slog.Logger
}

// NewCustomerSaleHandler is the constructor for CustomerSaleHandler
func NewCustomerSaleHandler(params CustomerSaleHandlerParams) *CustomerSaleHandler {
	return &CustomerSaleHandler{
		saleUC: params.SaleUC,
		logger: params.Logger,
	}
}

// CreateCustomerSaleRequest is the POST body. No field is required;
// numeric strings coerce, anything non-numeric stores 0, and the
// timestamp is server-assigned. The lowercase "productname" key is part
// of the contract.
type CreateCustomerSaleRequest struct {
	Price       entity.OptionalNumber `json:"price"`
	ProductID   string                `json:"productId"`
	ProductName string                `json:"productname"`
	Quantity    entity.OptionalNumber `json:"quantity"`
}

// ListCustomerSales handles GET /api/customer_sales
func (h *CustomerSaleHandler) ListCustomerSales(c echo.Context) error {
	sales, err := h.saleUC.ListSales(c.Request().Context())
	if err != nil {
		h.logger.Error("Error fetching sales", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrSaleFetchFailed)
	}

	return response.OK(c, sales)
}

// CreateCustomerSale handles POST /api/customer_sales
func (h *CustomerSaleHandler) CreateCustomerSale(c echo.Context) error {
	var req CreateCustomerSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidRequestBody)
	}

	sale, err := h.saleUC.AddSale(c.Request().Context(), usecase.AddCustomerSaleInput{
		Price:       req.Price.Float64(),
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity.Float64(),
	})
	if err != nil {
		h.logger.Error("Error recording sale", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrSaleCreateFailed)
	}

	return response.Created(c, sale)
}

// UpdateCustomerSale handles PUT /api/customer_sales/:id
func (h *CustomerSaleHandler) UpdateCustomerSale(c echo.Context) error {
	id := c.Param("id")

	var patch entity.CustomerSalePatch
	if err := bindPatch(c, &patch); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidUpdatePayload)
	}

	if err := h.saleUC.UpdateSale(c.Request().Context(), id, &patch); err != nil {
		if errors.Is(err, repository.ErrCustomerSaleNotFound) {
			return response.AppError(c, domainerrors.ErrSaleNotFound)
		}
		h.logger.Error("Error updating sale", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrSaleUpdateFailed)
	}

	return response.OK(c, echo.Map{"message": "Sale record updated"})
}

// DeleteCustomerSale handles DELETE /api/customer_sales/:id
func (h *CustomerSaleHandler) DeleteCustomerSale(c echo.Context) error {
	id := c.Param("id")

	if err := h.saleUC.RemoveSale(c.Request().Context(), id); err != nil {
		h.logger.Error("Error deleting sale", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrSaleDeleteFailed)
	}

	return response.OK(c, echo.Map{"message": "Sale deleted successfully"})
}
