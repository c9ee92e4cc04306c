// Package persistence selects the document store driver backing the
// repository interfaces.
package persistence

import (
	"context"
	"log/slog"

	"shopkeeper/config"
	"shopkeeper/internal/domain/repository"
	fsdriver "shopkeeper/internal/infra/persistence/firestore"
	"shopkeeper/internal/infra/persistence/memory"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the store provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Result bundles the five repositories produced by the selected driver
type Result struct {
	fx.Out

	Inventory repository.InventoryRepository
	Vendors   repository.VendorRepository
	Orders    repository.OrderRepository
	Sales     repository.CustomerSaleRepository
	Pricing   repository.PricingRuleRepository
}

// New builds the repositories for the configured store driver.
func New(params Params) (Result, error) {
	cfg := params.Config.Store
	logger := params.Logger

	switch cfg.Driver {
	case config.StoreDriverMemory:
		logger.Info("Using in-memory document store")

		return Result{
			Inventory: memory.NewInventoryRepository(),
			Vendors:   memory.NewVendorRepository(),
			Orders:    memory.NewOrderRepository(),
			Sales:     memory.NewCustomerSaleRepository(),
			Pricing:   memory.NewPricingRuleRepository(),
		}, nil

	case config.StoreDriverFirestore:
		logger.Info("Using Firestore document store",
			slog.String("project_id", cfg.Firestore.ProjectID),
		)

		client, err := fsdriver.NewClient(params.Ctx, cfg.Firestore)
		if err != nil {
			return Result{}, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing Firestore client")

				return errors.WithStack(client.Close())
			},
		})

		return Result{
			Inventory: fsdriver.NewInventoryRepository(client),
			Vendors:   fsdriver.NewVendorRepository(client),
			Orders:    fsdriver.NewOrderRepository(client),
			Sales:     fsdriver.NewCustomerSaleRepository(client),
			Pricing:   fsdriver.NewPricingRuleRepository(client),
		}, nil

	default:
		return Result{}, errors.Errorf("unknown store driver: %s", cfg.Driver)
	}
}
