package impl

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
	"shopkeeper/internal/errors"
	"shopkeeper/internal/usecase"
)

type vendorService struct {
	vendorRepo repository.VendorRepository
}

// NewVendorService creates a new vendor service instance
func NewVendorService(vendorRepo repository.VendorRepository) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo: vendorRepo,
	}
}

func (s *vendorService) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

func (s *vendorService) AddVendor(ctx context.Context, input usecase.AddVendorInput) (*entity.Vendor, error) {
	vendor := &entity.Vendor{
		Name:     input.Name,
		Location: input.Location,
		Rating:   input.Rating,
	}

	if err := s.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to create vendor")
	}

	return vendor, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, id string, patch *entity.VendorPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}

	if err := s.vendorRepo.UpdateVendor(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to update vendor")
	}

	return nil
}

func (s *vendorService) RemoveVendor(ctx context.Context, id string) error {
	if err := s.vendorRepo.DeleteVendor(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete vendor")
	}

	return nil
}
