package commands

import (
	"context"
	"sync"

	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/core/ports"
)

// UpdateParcelStatusCommandHandler applies status transitions. It is the
// single mutation path for existing parcels: manual API updates and
// simulation ticks both flow through here.
//
// The handler serializes its read-modify-write sequence with a mutex, so
// transitions racing on one parcel interleave without losing history entries.
// The composition root must therefore wire exactly one instance and share it.
type UpdateParcelStatusCommandHandler struct {
	mu       sync.Mutex
	parcels  ports.ParcelRepository
	notifier ports.ParcelNotifier
}

// NewUpdateParcelStatusCommandHandler creates the transition handler.
func NewUpdateParcelStatusCommandHandler(
	parcels ports.ParcelRepository,
	notifier ports.ParcelNotifier,
) *UpdateParcelStatusCommandHandler {
	return &UpdateParcelStatusCommandHandler{
		parcels:  parcels,
		notifier: notifier,
	}
}

// Handle loads the parcel, applies the transition, stores the result and
// triggers the webhook notification when the parcel carries a webhook URL.
//
// The notification is enqueued, not delivered, before Handle returns: a
// transition reports success once it is applied in the store, regardless of
// the eventual webhook outcome. On error the stored parcel is unchanged.
func (h *UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	aggregate, err := h.parcels.Get(ctx, cmd.TrackingNumber())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyStatus(cmd.Status(), cmd.Note()); err != nil {
		return nil, err
	}

	if err = h.parcels.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if aggregate.HasWebhook() {
		h.notifier.Notify(ctx, aggregate)
	}

	return aggregate, nil
}
