package commands

import (
	"context"

	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/core/ports"
)

// CreateParcelCommandHandler registers new parcels in the store. The store
// allocates the tracking number; the aggregate starts in pending_pickup with
// a one-entry history. Creation itself triggers no webhook notification:
// notifications describe transitions, and the initial status is not one.
type CreateParcelCommandHandler struct {
	parcels ports.ParcelRepository
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(parcels ports.ParcelRepository) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		parcels: parcels,
	}
}

// Handle processes the creation command and returns the stored aggregate.
// On any validation failure nothing is added to the store.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	trackingNumber := h.parcels.NextTrackingNumber()

	aggregate, err := parcel.NewParcel(
		trackingNumber,
		cmd.OrderID(),
		cmd.Customer(),
		cmd.Destination(),
		cmd.ProductList(),
		cmd.Price(),
		cmd.WebhookURL(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.parcels.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
