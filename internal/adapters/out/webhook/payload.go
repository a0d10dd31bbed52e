package webhook

import (
	"time"

	"agencysim/internal/core/domain/model/parcel"
)

// EventParcelStatusUpdated is the event name carried by every notification.
const EventParcelStatusUpdated = "parcel.status.updated"

// eventPayload is the JSON body POSTed to the caller-supplied webhook URL.
type eventPayload struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Data      eventData `json:"data"`
}

type eventData struct {
	TrackingNumber string         `json:"tracking_number"`
	OrderID        string         `json:"order_id"`
	Status         string         `json:"status"`
	CODAmount      float64        `json:"cod_amount"`
	DeliveredAt    *time.Time     `json:"delivered_at"`
	StatusHistory  []historyEntry `json:"status_history"`
}

type historyEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// newEventPayload snapshots the parcel's state into a wire payload. It is
// called synchronously inside Notify so later transitions cannot leak into an
// earlier notification.
func newEventPayload(aggregate *parcel.Parcel) eventPayload {
	history := aggregate.StatusHistory()
	entries := make([]historyEntry, 0, len(history))
	for _, entry := range history {
		entries = append(entries, historyEntry{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}

	return eventPayload{
		Event:     EventParcelStatusUpdated,
		Timestamp: time.Now(),
		Data: eventData{
			TrackingNumber: aggregate.TrackingNumber().String(),
			OrderID:        aggregate.OrderID(),
			Status:         aggregate.Status().String(),
			CODAmount:      aggregate.CODAmount(),
			DeliveredAt:    aggregate.DeliveredAt(),
			StatusHistory:  entries,
		},
	}
}
