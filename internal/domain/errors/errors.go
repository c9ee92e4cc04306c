package errors

import (
	"net/http"

	"shopkeeper/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Public error message, the only detail a client sees
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the public error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error values. The messages are part of the public contract
// and must not change.
var (
	// Inventory
	ErrInventoryFetchFailed  = NewBaseError(http.StatusInternalServerError, "INVENTORY_FETCH_FAILED", "Failed to fetch inventory")
	ErrInventoryCreateFailed = NewBaseError(http.StatusInternalServerError, "INVENTORY_CREATE_FAILED", "Failed to add product")
	ErrInventoryUpdateFailed = NewBaseError(http.StatusInternalServerError, "INVENTORY_UPDATE_FAILED", "Failed to update product")
	ErrInventoryDeleteFailed = NewBaseError(http.StatusInternalServerError, "INVENTORY_DELETE_FAILED", "Failed to delete product")
	ErrInventoryItemNotFound = NewBaseError(http.StatusNotFound, "INVENTORY_ITEM_NOT_FOUND", "Product not found")
	ErrMissingRequiredFields = NewBaseError(http.StatusBadRequest, "MISSING_REQUIRED_FIELDS", "Missing required fields")

	// Vendors
	ErrVendorFetchFailed   = NewBaseError(http.StatusInternalServerError, "VENDOR_FETCH_FAILED", "Failed to fetch vendors")
	ErrVendorCreateFailed  = NewBaseError(http.StatusInternalServerError, "VENDOR_CREATE_FAILED", "Failed to add vendor")
	ErrVendorUpdateFailed  = NewBaseError(http.StatusInternalServerError, "VENDOR_UPDATE_FAILED", "Failed to update vendor")
	ErrVendorDeleteFailed  = NewBaseError(http.StatusInternalServerError, "VENDOR_DELETE_FAILED", "Failed to delete vendor")
	ErrVendorNotFound      = NewBaseError(http.StatusNotFound, "VENDOR_NOT_FOUND", "Vendor not found")
	ErrVendorMissingFields = NewBaseError(http.StatusBadRequest, "VENDOR_MISSING_FIELDS", "Missing fields")

	// Orders
	ErrOrderFetchFailed  = NewBaseError(http.StatusInternalServerError, "ORDER_FETCH_FAILED", "Failed to fetch orders")
	ErrOrderCreateFailed = NewBaseError(http.StatusInternalServerError, "ORDER_CREATE_FAILED", "Failed to create order")
	ErrOrderUpdateFailed = NewBaseError(http.StatusInternalServerError, "ORDER_UPDATE_FAILED", "Failed to update order")
	ErrOrderDeleteFailed = NewBaseError(http.StatusInternalServerError, "ORDER_DELETE_FAILED", "Failed to delete order")
	ErrOrderNotFound     = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")

	// Customer sales
	ErrSaleFetchFailed  = NewBaseError(http.StatusInternalServerError, "SALE_FETCH_FAILED", "Failed to fetch sales")
	ErrSaleCreateFailed = NewBaseError(http.StatusInternalServerError, "SALE_CREATE_FAILED", "Failed to record sale")
	ErrSaleUpdateFailed = NewBaseError(http.StatusInternalServerError, "SALE_UPDATE_FAILED", "Failed to update sale")
	ErrSaleDeleteFailed = NewBaseError(http.StatusInternalServerError, "SALE_DELETE_FAILED", "Failed to delete sale")
	ErrSaleNotFound     = NewBaseError(http.StatusNotFound, "SALE_NOT_FOUND", "Sale not found")

	// Pricing
	ErrPricingFetchFailed  = NewBaseError(http.StatusInternalServerError, "PRICING_FETCH_FAILED", "Failed to fetch pricing data")
	ErrPricingCreateFailed = NewBaseError(http.StatusInternalServerError, "PRICING_CREATE_FAILED", "Failed to add pricing data")
	ErrPricingUpdateFailed = NewBaseError(http.StatusInternalServerError, "PRICING_UPDATE_FAILED", "Failed to update pricing")
	ErrPricingDeleteFailed = NewBaseError(http.StatusInternalServerError, "PRICING_DELETE_FAILED", "Failed to delete pricing")
	ErrPricingNotFound     = NewBaseError(http.StatusNotFound, "PRICING_NOT_FOUND", "Pricing rule not found")

	// Requests
	ErrInvalidRequestBody   = NewBaseError(http.StatusBadRequest, "INVALID_REQUEST_BODY", "Invalid request body")
	ErrInvalidUpdatePayload = NewBaseError(http.StatusBadRequest, "INVALID_UPDATE_PAYLOAD", "Invalid update payload")
)
