package impl

import (
	"context"
	"testing"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"
	mockRepo "shopkeeper/internal/mocks/repository"
	"shopkeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// vendorServiceFixtures holds all test dependencies for vendor service tests.
type vendorServiceFixtures struct {
	service    usecase.VendorUsecase
	vendorRepo *mockRepo.MockVendorRepository
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewVendorService(vendorRepo)

	return vendorServiceFixtures{
		service:    service,
		vendorRepo: vendorRepo,
	}
}

func TestVendorService_AddVendor(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	fx.vendorRepo.EXPECT().
		CreateVendor(ctx, mock.AnythingOfType("*entity.Vendor")).
		Run(func(_ context.Context, vendor *entity.Vendor) {
			vendor.ID = "vendor-1"
		}).
		Return(nil)

	vendor, err := fx.service.AddVendor(ctx, usecase.AddVendorInput{
		Name:     "Dairy Direct",
		Location: "Mumbai",
		Rating:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", vendor.ID)
	assert.Equal(t, "Dairy Direct", vendor.Name)
	assert.Equal(t, "Mumbai", vendor.Location)
	assert.Equal(t, 4.0, vendor.Rating)
}

func TestVendorService_AddVendor_ZeroRating(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	fx.vendorRepo.EXPECT().
		CreateVendor(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	vendor, err := fx.service.AddVendor(ctx, usecase.AddVendorInput{Name: "Metro Packaging", Location: "Delhi"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, vendor.Rating)
}

func TestVendorService_ListVendors_RepoError(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	fx.vendorRepo.EXPECT().
		ListVendors(ctx).
		Return(nil, errors.New("backend unavailable"))

	vendors, err := fx.service.ListVendors(ctx)
	assert.Error(t, err)
	assert.Nil(t, vendors)
	assert.Contains(t, err.Error(), "failed to list vendors")
}

func TestVendorService_UpdateVendor_NotFound(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	location := "Chennai"

	fx.vendorRepo.EXPECT().
		UpdateVendor(ctx, "ghost", map[string]any{"location": "Chennai"}).
		Return(repository.ErrVendorNotFound)

	err := fx.service.UpdateVendor(ctx, "ghost", &entity.VendorPatch{Location: &location})
	assert.ErrorIs(t, err, repository.ErrVendorNotFound)
}

func TestVendorService_RemoveVendor_RepoError(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	fx.vendorRepo.EXPECT().
		DeleteVendor(ctx, "vendor-1").
		Return(errors.New("backend unavailable"))

	err := fx.service.RemoveVendor(ctx, "vendor-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete vendor")
}
