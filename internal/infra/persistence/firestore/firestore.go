// Package firestore contains the concrete implementation of the
// persistence layer backed by Google Cloud Firestore. Each shop
// collection maps onto a flat Firestore collection; document ids are
// Firestore-generated.
package firestore

import (
	"context"

	"shopkeeper/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names shared with the original backend; renaming one is a
// data migration.
const (
	inventoryCollection     = "inventory"
	vendorsCollection       = "vendors"
	ordersCollection        = "orders"
	customerSalesCollection = "customer_sales"
	pricingCollection       = "pricing"
)

// NewClient initializes the Firebase app from the service-account key
// file and opens a Firestore client.
func NewClient(ctx context.Context, cfg *config.FirestoreConfig) (*firestore.Client, error) {
	var fbcfg *firebase.Config
	if cfg.ProjectID != "" {
		fbcfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbcfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Firestore client")
	}

	return client, nil
}

// isNotFound reports whether err is Firestore's missing-document error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// fieldUpdates converts a merge map into Firestore update operations.
func fieldUpdates(fields map[string]any) []firestore.Update {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	return updates
}
