package usecase

import (
	"context"

	"shopkeeper/internal/domain/entity"
)

// AddVendorInput carries the validated fields for a new vendor. Rating
// is pre-coerced: absent or non-numeric input arrives as 0.
type AddVendorInput struct {
	Name     string
	Location string
	Rating   float64
}

// VendorUsecase manages the vendors collection.
type VendorUsecase interface {
	ListVendors(ctx context.Context) ([]*entity.Vendor, error)
	AddVendor(ctx context.Context, input AddVendorInput) (*entity.Vendor, error)
	UpdateVendor(ctx context.Context, id string, patch *entity.VendorPatch) error
	RemoveVendor(ctx context.Context, id string) error
}
