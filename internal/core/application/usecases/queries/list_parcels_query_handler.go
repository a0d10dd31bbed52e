package queries

import (
	"context"

	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/core/ports"
)

// ListParcelsQueryHandler returns a snapshot of every stored parcel.
type ListParcelsQueryHandler struct {
	parcels ports.ParcelRepository
}

// NewListParcelsQueryHandler creates a handler for the full-list query.
func NewListParcelsQueryHandler(parcels ports.ParcelRepository) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{parcels: parcels}
}

// Handle returns all parcels in the store's stable order.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]*parcel.Parcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.parcels.GetAll(ctx)
}
