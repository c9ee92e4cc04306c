package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"shopkeeper/config"
	"shopkeeper/internal/delivery/http/router"
	"shopkeeper/internal/delivery/http/router/handler"
	"shopkeeper/internal/infra/persistence/memory"
	"shopkeeper/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type nopLifecycle struct{}

func (nopLifecycle) Append(fx.Hook) {}

func TestNewServer_AppliesConfiguredTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 5001
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 2 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 60 * time.Second

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	routerParams := router.RouterParams{
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

	d, err := NewServer(HTTPParams{
		Lifecycle:    nopLifecycle{},
		Config:       cfg,
		Logger:       logger,
		RouterParams: routerParams,
	})
	require.NoError(t, err)

	srv, ok := d.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, srv.server.Server.IdleTimeout)
}
