package main

import (
	"context"
	"log/slog"
	"os"

	"shopkeeper/config"
	"shopkeeper/internal/delivery"
	"shopkeeper/internal/delivery/http"
	"shopkeeper/internal/delivery/http/router/handler"
	logs "shopkeeper/internal/infra/log"
	"shopkeeper/internal/infra/persistence"
	"shopkeeper/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewInventoryService,
			impl.NewVendorService,
			impl.NewOrderService,
			impl.NewCustomerSaleService,
			impl.NewPricingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewInventoryHandler,
			handler.NewVendorHandler,
			handler.NewOrderHandler,
			handler.NewCustomerSaleHandler,
			handler.NewPricingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
