package ports

import (
	"context"

	"agencysim/internal/core/domain/model/parcel"
)

// ParcelNotifier delivers a best-effort notification describing the parcel's
// current state to the webhook URL the parcel carries.
//
// Notify never blocks the caller beyond enqueueing and never reports
// delivery failures back: webhook delivery is decoupled from API success
// semantics. Callers are responsible for checking parcel.HasWebhook() first.
type ParcelNotifier interface {
	Notify(ctx context.Context, aggregate *parcel.Parcel)
}
