// Package response writes the wire shapes of the shop API. The contract
// predates this service: list responses are bare JSON arrays, writes
// echo `{id, ...fields}` or `{message}` objects, and every failure is a
// flat `{"error": "..."}` body.
package response

import (
	"net/http"

	domainerrors "shopkeeper/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the only error envelope clients ever see.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK writes data verbatim with HTTP 200.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes data verbatim with HTTP 201.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// Error writes `{"error": message}` with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// AppError writes a domain error using its HTTP code and public message.
func AppError(c echo.Context, err domainerrors.AppError) error {
	return Error(c, err.HTTPCode(), err.Message())
}
