// Seeds a running shopkeeper instance with demo data over its HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"shopkeeper/client"
)

var (
	vendorNames    = []string{"Dairy Direct", "Green Valley Produce", "Sunrise Bakery Supply", "Coastal Fisheries", "Metro Packaging"}
	vendorCities   = []string{"Mumbai", "Pune", "Delhi", "Chennai", "Bengaluru"}
	productNames   = []string{"Whole Milk 1L", "Paneer 200g", "Basmati Rice 5kg", "Sunflower Oil 1L", "Masala Chai 250g", "Wheat Flour 10kg"}
	orderSuppliers = []string{"Dairy Direct", "Green Valley Produce", "Metro Packaging"}
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:5001", "base URL of the shop API")
	sales := flag.Int("sales", 20, "number of sale records to create")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, client.New(*baseURL), logger, *sales); err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func seed(ctx context.Context, api *client.Client, logger *slog.Logger, saleCount int) error {
	vendorIDs := make([]string, 0, len(vendorNames))
	for i, name := range vendorNames {
		vendor, err := api.AddVendor(ctx, map[string]any{
			"name":     name,
			"location": vendorCities[i%len(vendorCities)],
			"rating":   1 + rand.IntN(5),
		})
		if err != nil {
			return fmt.Errorf("add vendor %q: %w", name, err)
		}
		vendorIDs = append(vendorIDs, vendor.ID)
	}
	logger.Info("seeded vendors", slog.Int("count", len(vendorIDs)))

	productIDs := make([]string, 0, len(productNames))
	prices := make([]float64, 0, len(productNames))
	for _, name := range productNames {
		price := float64(20+rand.IntN(480)) + 0.5*float64(rand.IntN(2))
		item, err := api.AddInventory(ctx, map[string]any{
			"productName": name,
			"price":       price,
			"stock":       10 + rand.IntN(190),
			"vendorId":    vendorIDs[rand.IntN(len(vendorIDs))],
		})
		if err != nil {
			return fmt.Errorf("add product %q: %w", name, err)
		}
		productIDs = append(productIDs, item.ID)
		prices = append(prices, price)
	}
	logger.Info("seeded inventory", slog.Int("count", len(productIDs)))

	for _, supplier := range orderSuppliers {
		if _, err := api.AddOrder(ctx, map[string]any{"supplier": supplier}); err != nil {
			return fmt.Errorf("add order for %q: %w", supplier, err)
		}
	}
	logger.Info("seeded orders", slog.Int("count", len(orderSuppliers)))

	for i := 0; i < saleCount; i++ {
		pick := rand.IntN(len(productIDs))
		_, err := api.AddCustomerSale(ctx, map[string]any{
			"productId":   productIDs[pick],
			"productname": productNames[pick],
			"price":       prices[pick],
			"quantity":    1 + rand.IntN(9),
		})
		if err != nil {
			return fmt.Errorf("add sale: %w", err)
		}
	}
	logger.Info("seeded sales", slog.Int("count", saleCount))

	for pick, id := range productIDs {
		base := prices[pick]
		_, err := api.AddPricing(ctx, map[string]any{
			"productId":        id,
			"basePrice":        base,
			"recommendedPrice": base * (0.95 + 0.15*rand.Float64()),
		})
		if err != nil {
			return fmt.Errorf("add pricing rule: %w", err)
		}
	}
	logger.Info("seeded pricing rules", slog.Int("count", len(productIDs)))

	return nil
}
