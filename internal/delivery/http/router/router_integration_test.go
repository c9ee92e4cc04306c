package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopkeeper/internal/delivery/http/router/handler"
	"shopkeeper/internal/delivery/http/validator"
	"shopkeeper/internal/infra/persistence/memory"
	"shopkeeper/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEcho wires the full HTTP surface against in-memory repositories.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	params := RouterParams{
		InventoryHandler: handler.NewInventoryHandler(handler.InventoryHandlerParams{
			InventoryUC: impl.NewInventoryService(memory.NewInventoryRepository()),
			Logger:      logger,
		}),
		VendorHandler: handler.NewVendorHandler(handler.VendorHandlerParams{
			VendorUC: impl.NewVendorService(memory.NewVendorRepository()),
			Logger:   logger,
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: impl.NewOrderService(memory.NewOrderRepository()),
			Logger:  logger,
		}),
		CustomerSaleHandler: handler.NewCustomerSaleHandler(handler.CustomerSaleHandlerParams{
			SaleUC: impl.NewCustomerSaleService(memory.NewCustomerSaleRepository()),
			Logger: logger,
		}),
		PricingHandler: handler.NewPricingHandler(handler.PricingHandlerParams{
			PricingUC: impl.NewPricingService(memory.NewPricingRuleRepository()),
			Logger:    logger,
		}),
	}
	NewRouter(params).RegisterRoutes(e)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestInventory_EmptyListIsBareArray(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodGet, "/api/inventory", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInventory_CreateAndList(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/inventory", map[string]any{
		"productName": "Whole Milk 1L",
		"price":       60,
		"stock":       40,
		"vendorId":    "vendor-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Whole Milk 1L", created["productName"])
	assert.Equal(t, 60.0, created["price"])

	rec = doJSON(t, e, http.MethodGet, "/api/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	decodeBody(t, rec, &items)
	require.Len(t, items, 1)
	assert.Equal(t, created["id"], items[0]["id"])
}

func TestInventory_CreateCoercesNumericStrings(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/inventory", map[string]any{
		"productName": "Paneer 200g",
		"price":       "90",
		"stock":       "15",
		"vendorId":    "vendor-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, 90.0, created["price"])
	assert.Equal(t, 15.0, created["stock"])
}

func TestInventory_CreateZeroValuesAccepted(t *testing.T) {
	e := newTestEcho()

	// price and stock must be present but may be zero.
	rec := doJSON(t, e, http.MethodPost, "/api/inventory", map[string]any{
		"productName": "Free Sample",
		"price":       0,
		"stock":       0,
		"vendorId":    "vendor-1",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestInventory_CreateMissingFieldRejected(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/inventory", map[string]any{
		"productName": "Basmati Rice 5kg",
		"price":       450,
		"vendorId":    "vendor-1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())

	// The rejected document must not be stored.
	rec = doJSON(t, e, http.MethodGet, "/api/inventory", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInventory_Update(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/inventory", map[string]any{
		"productName": "Sunflower Oil 1L",
		"price":       140,
		"stock":       30,
		"vendorId":    "vendor-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	id := created["id"].(string)

	rec = doJSON(t, e, http.MethodPut, "/api/inventory/"+id, map[string]any{"price": 150})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated map[string]any
	decodeBody(t, rec, &updated)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, "Product updated successfully", updated["message"])
	assert.Equal(t, map[string]any{"price": 150.0}, updated["updates"])

	rec = doJSON(t, e, http.MethodGet, "/api/inventory", nil)
	var items []map[string]any
	decodeBody(t, rec, &items)
	require.Len(t, items, 1)
	assert.Equal(t, 150.0, items[0]["price"])
	assert.Equal(t, "Sunflower Oil 1L", items[0]["productName"])
}

func TestInventory_UpdateUnknownFieldRejected(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPut, "/api/inventory/some-id", map[string]any{"color": "red"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid update payload"}`, rec.Body.String())
}

func TestInventory_UpdateMissingID(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPut, "/api/inventory/no-such-id", map[string]any{"price": 10})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestInventory_DeleteIdempotent(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/inventory", map[string]any{
		"productName": "Masala Chai 250g",
		"price":       120,
		"stock":       25,
		"vendorId":    "vendor-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	id := created["id"].(string)

	for i := 0; i < 2; i++ {
		rec = doJSON(t, e, http.MethodDelete, "/api/inventory/"+id, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		decodeBody(t, rec, &body)
		assert.Equal(t, id, body["id"])
		assert.Equal(t, "Product deleted successfully", body["message"])
	}
}

func TestVendors_MissingFieldsRejected(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/vendors", map[string]any{"name": "Dairy Direct"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing fields"}`, rec.Body.String())
}

func TestVendors_NonNumericRatingDefaultsToZero(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/vendors", map[string]any{
		"name":     "Dairy Direct",
		"location": "Mumbai",
		"rating":   "excellent",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, "Dairy Direct", created["name"])
	assert.Equal(t, "Mumbai", created["location"])
	assert.Equal(t, 0.0, created["rating"])
}

func TestVendors_AbsentRatingDefaultsToZero(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/vendors", map[string]any{
		"name":     "Metro Packaging",
		"location": "Delhi",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, 0.0, created["rating"])
}

func TestOrders_CreateDefaultsToPending(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/orders", map[string]any{"supplier": "Dairy Direct"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "PENDING", created["status"])
	assert.Equal(t, "Dairy Direct", created["supplier"])
	assert.NotEmpty(t, created["timestamp"])
}

func TestOrders_UpdateStatusLeavesOtherFields(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/orders", map[string]any{"supplier": "Coastal Fisheries"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	id := created["id"].(string)

	rec = doJSON(t, e, http.MethodPut, "/api/orders/"+id, map[string]any{"status": "DELIVERED"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Order updated successfully"}`, rec.Body.String())

	rec = doJSON(t, e, http.MethodGet, "/api/orders", nil)
	var orders []map[string]any
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "DELIVERED", orders[0]["status"])
	assert.Equal(t, "Coastal Fisheries", orders[0]["supplier"])
	assert.Equal(t, created["timestamp"], orders[0]["timestamp"])
}

func TestOrders_ListNewestFirst(t *testing.T) {
	e := newTestEcho()

	for _, supplier := range []string{"first", "second", "third"} {
		rec := doJSON(t, e, http.MethodPost, "/api/orders", map[string]any{"supplier": supplier})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, e, http.MethodGet, "/api/orders", nil)
	var orders []map[string]any
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 3)
	assert.Equal(t, "third", orders[0]["supplier"])
	assert.Equal(t, "first", orders[2]["supplier"])
}

func TestOrders_UpdateMissingID(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPut, "/api/orders/no-such-id", map[string]any{"status": "SHIPPED"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, rec.Body.String())
}

func TestCustomerSales_CreateUsesLowercaseProductName(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/customer_sales", map[string]any{
		"productId":   "item-1",
		"productname": "Whole Milk 1L",
		"price":       60,
		"quantity":    2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, "Whole Milk 1L", created["productname"])
	assert.NotContains(t, created, "productName")
	assert.NotEmpty(t, created["timestamp"])
}

func TestCustomerSales_MissingNumericsDefaultToZero(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/customer_sales", map[string]any{"productId": "item-1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, 0.0, created["price"])
	assert.Equal(t, 0.0, created["quantity"])
}

func TestCustomerSales_NonNumericValuesStoreZero(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/customer_sales", map[string]any{
		"productId":   "item-1",
		"productname": "Whole Milk 1L",
		"price":       "abc",
		"quantity":    "two",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, 0.0, created["price"])
	assert.Equal(t, 0.0, created["quantity"])
}

func TestCustomerSales_UpdateMessage(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/customer_sales", map[string]any{"quantity": 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	id := created["id"].(string)

	rec = doJSON(t, e, http.MethodPut, "/api/customer_sales/"+id, map[string]any{"quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Sale record updated"}`, rec.Body.String())
}

func TestPricing_CreateCoercesStringPrices(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/pricing", map[string]any{
		"productId":        "item-1",
		"basePrice":        "100",
		"recommendedPrice": 112,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, 100.0, created["basePrice"])
	assert.Equal(t, 112.0, created["recommendedPrice"])
}

func TestPricing_NonNumericValuesStoreZero(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/pricing", map[string]any{
		"productId": "item-1",
		"basePrice": "abc",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, 0.0, created["basePrice"])
	assert.Equal(t, 0.0, created["recommendedPrice"])
}

func TestPricing_UpdateAndDeleteMessages(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/pricing", map[string]any{
		"productId": "item-1",
		"basePrice": 100,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	id := created["id"].(string)

	rec = doJSON(t, e, http.MethodPut, "/api/pricing/"+id, map[string]any{"recommendedPrice": 108})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Pricing updated successfully"}`, rec.Body.String())

	rec = doJSON(t, e, http.MethodDelete, "/api/pricing/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Pricing deleted successfully"}`, rec.Body.String())
}
