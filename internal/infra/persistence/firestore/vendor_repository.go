package firestore

import (
	"context"

	"shopkeeper/internal/domain/entity"
	"shopkeeper/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type vendorModel struct {
	Name     string  `firestore:"name"`
	Location string  `firestore:"location"`
	Rating   float64 `firestore:"rating"`
}

func toVendorDomain(id string, m *vendorModel) *entity.Vendor {
	return &entity.Vendor{
		ID:       id,
		Name:     m.Name,
		Location: m.Location,
		Rating:   m.Rating,
	}
}

// vendorRepository implements repository.VendorRepository.
type vendorRepository struct {
	client *firestore.Client
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(client *firestore.Client) repository.VendorRepository {
	return &vendorRepository{client: client}
}

func (repo *vendorRepository) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	iter := repo.client.Collection(vendorsCollection).Documents(ctx)
	defer iter.Stop()

	vendors := make([]*entity.Vendor, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate vendors")
		}

		var m vendorModel
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode vendor document")
		}
		vendors = append(vendors, toVendorDomain(doc.Ref.ID, &m))
	}

	return vendors, nil
}

func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	m := &vendorModel{
		Name:     vendor.Name,
		Location: vendor.Location,
		Rating:   vendor.Rating,
	}

	ref, _, err := repo.client.Collection(vendorsCollection).Add(ctx, m)
	if err != nil {
		return errors.Wrap(err, "failed to create vendor")
	}
	vendor.ID = ref.ID

	return nil
}

func (repo *vendorRepository) UpdateVendor(ctx context.Context, id string, fields map[string]any) error {
	_, err := repo.client.Collection(vendorsCollection).Doc(id).Update(ctx, fieldUpdates(fields))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrVendorNotFound
		}

		return errors.Wrap(err, "failed to update vendor")
	}

	return nil
}

func (repo *vendorRepository) DeleteVendor(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(vendorsCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete vendor")
	}

	return nil
}
