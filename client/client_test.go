package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"shopkeeper/client"
	"shopkeeper/internal/delivery/http/router"
	"shopkeeper/internal/delivery/http/router/handler"
	"shopkeeper/internal/delivery/http/validator"
	"shopkeeper/internal/infra/persistence/memory"
	"shopkeeper/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T) *client.Client {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	params := router.RouterParams{
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
	router.NewRouter(params).RegisterRoutes(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return client.New(server.URL)
}

func TestClient_InventoryRoundTrip(t *testing.T) {
	api := startTestServer(t)
	ctx := context.Background()

	item, err := api.AddInventory(ctx, map[string]any{
		"productName": "Whole Milk 1L",
		"price":       60,
		"stock":       40,
		"vendorId":    "vendor-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	assert.Equal(t, 60.0, item.Price)

	items, err := api.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)

	body, err := api.UpdateInventory(ctx, item.ID, map[string]any{"stock": 35})
	require.NoError(t, err)
	assert.Equal(t, "Product updated successfully", body["message"])

	body, err = api.DeleteInventory(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Product deleted successfully", body["message"])

	items, err = api.ListInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	api := startTestServer(t)

	_, err := api.AddInventory(context.Background(), map[string]any{"productName": "Broken"})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Missing required fields", apiErr.Message)
}

func TestClient_OrdersAndSales(t *testing.T) {
	api := startTestServer(t)
	ctx := context.Background()

	order, err := api.AddOrder(ctx, map[string]any{"supplier": "Dairy Direct"})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", order.Status)
	assert.False(t, order.Timestamp.IsZero())

	sale, err := api.AddCustomerSale(ctx, map[string]any{
		"productId":   "item-1",
		"productname": "Whole Milk 1L",
		"price":       60,
		"quantity":    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk 1L", sale.ProductName)
	assert.Equal(t, 120.0, sale.Revenue())

	sales, err := api.ListCustomerSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
}

func TestClient_PricingAndVendors(t *testing.T) {
	api := startTestServer(t)
	ctx := context.Background()

	vendor, err := api.AddVendor(ctx, map[string]any{
		"name":     "Dairy Direct",
		"location": "Mumbai",
		"rating":   4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, vendor.Rating)

	rule, err := api.AddPricing(ctx, map[string]any{
		"productId":        "item-1",
		"basePrice":        100,
		"recommendedPrice": 112,
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, rule.MarginImpact(), 1e-9)

	rules, err := api.ListPricing(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	body, err := api.DeleteVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vendor deleted successfully", body["message"])
}
