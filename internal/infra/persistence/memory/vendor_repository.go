package memory

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
)

type vendorRepository struct {
	vendors *collection[entity.Vendor]
}

// NewVendorRepository returns an empty in-memory vendor store.
func NewVendorRepository() repository.VendorRepository {
	return &vendorRepository{vendors: newCollection[entity.Vendor]()}
}

func (repo *vendorRepository) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	docs := repo.vendors.snapshot()
	vendors := make([]*entity.Vendor, 0, len(docs))
	for _, d := range docs {
		vendor := d.val
		vendors = append(vendors, &vendor)
	}

	return vendors, nil
}

func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	stored := *vendor
	stored.ID = ""
	id := repo.vendors.insert(stored)

	repo.vendors.update(id, func(v *entity.Vendor) { v.ID = id })
	vendor.ID = id

	return nil
}

func (repo *vendorRepository) UpdateVendor(ctx context.Context, id string, fields map[string]any) error {
	ok := repo.vendors.update(id, func(vendor *entity.Vendor) {
		if v, ok := fields["name"].(string); ok {
			vendor.Name = v
		}
		if v, ok := fields["location"].(string); ok {
			vendor.Location = v
		}
		if v, ok := fields["rating"].(float64); ok {
			vendor.Rating = v
		}
	})
	if !ok {
		return repository.ErrVendorNotFound
	}

	return nil
}

func (repo *vendorRepository) DeleteVendor(ctx context.Context, id string) error {
	repo.vendors.remove(id)

	return nil
}
