package queries

import (
	"context"

	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/core/ports"
)

// GetParcelQueryHandler fetches a single parcel snapshot from the store.
type GetParcelQueryHandler struct {
	parcels ports.ParcelRepository
}

// NewGetParcelQueryHandler creates a handler for single-parcel lookups.
func NewGetParcelQueryHandler(parcels ports.ParcelRepository) GetParcelQueryHandler {
	return GetParcelQueryHandler{parcels: parcels}
}

// Handle returns the parcel, or an errs.ObjectNotFoundError for unknown
// tracking numbers. The returned aggregate is a snapshot: its history order
// matches the store's own order exactly at read time.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (*parcel.Parcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.parcels.Get(ctx, query.TrackingNumber())
}
