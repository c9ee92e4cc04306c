package repository

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// VendorRepository persists vendors in the "vendors" collection.
type VendorRepository interface {
	ListVendors(ctx context.Context) ([]*entity.Vendor, error)

	// CreateVendor stores a new vendor and fills in the generated id.
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error

	// UpdateVendor merges fields into the document with the given id.
	// Returns ErrVendorNotFound when the document does not exist.
	UpdateVendor(ctx context.Context, id string, fields map[string]any) error

	// DeleteVendor removes the document by id; idempotent.
	DeleteVendor(ctx context.Context, id string) error
}
