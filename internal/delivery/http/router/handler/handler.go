package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindPatch decodes a PUT body into a closed patch type. Unknown fields
// are rejected so updates cannot write arbitrary document keys.
func bindPatch(c echo.Context, patch any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	return dec.Decode(patch)
}
