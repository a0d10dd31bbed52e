package ports

import (
	"context"

	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/parcel"
)

// ParcelRepository defines the storage contract for parcel aggregates. The
// store is the sole owner of parcel state and of tracking number allocation;
// there is deliberately no delete operation, parcels live as long as the
// process.
type ParcelRepository interface {
	// NextTrackingNumber allocates a new unique tracking number from the
	// store's monotonically increasing counter. Numbers are never reused.
	NextTrackingNumber() kernel.TrackingNumber

	// Add stores a newly created parcel. Adding a tracking number that
	// already exists is an error.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update replaces the stored record for the parcel's tracking number.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by tracking number. Returns an
	// errs.ObjectNotFoundError for unknown numbers.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error)

	// GetAll returns a snapshot of all stored parcels in a stable order.
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)
}
