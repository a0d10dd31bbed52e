package parcel

import (
	"errors"
	"fmt"
	"time"

	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through the NewParcel factory method.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// initialNote is the history note written for the creation entry.
const initialNote = "Parcel created, awaiting pickup"

// Parcel is the aggregate root of the simulated agency. It owns the status
// ledger and is the only place parcel state is mutated.
//
// Invariants maintained by this type:
//   - the status history is never empty and its first entry is pending_pickup
//   - status always equals the status of the last history entry
//   - deliveredAt is set exactly once, on the first delivered transition
//   - the tracking number is immutable after construction
type Parcel struct {
	trackingNumber kernel.TrackingNumber
	orderID        string
	customer       Customer
	destination    Destination
	productList    []string

	// price is the order total; codAmount mirrors it at creation and is the
	// sum the courier collects at handoff.
	price     float64
	codAmount float64

	status        Status
	statusHistory []HistoryEntry

	webhookURL  string
	createdAt   time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewParcel creates a parcel in pending_pickup status with a one-entry
// history. The tracking number comes from the store's allocator; orderID,
// customer details and a positive price are required, everything else is
// optional.
func NewParcel(
	trackingNumber kernel.TrackingNumber,
	orderID string,
	customer Customer,
	destination Destination,
	productList []string,
	price float64,
	webhookURL string,
) (*Parcel, error) {
	parcel := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setTrackingNumber(trackingNumber),
		parcel.setOrderID(orderID),
		parcel.setCustomer(customer),
		parcel.setPrice(price),
	); err != nil {
		return nil, err
	}

	parcel.destination = destination
	parcel.productList = append([]string{}, productList...)
	parcel.codAmount = price
	parcel.webhookURL = webhookURL

	now := time.Now()
	parcel.createdAt = now
	parcel.status = StatusPendingPickup
	parcel.statusHistory = []HistoryEntry{{
		Status:    StatusPendingPickup,
		Timestamp: now,
		Note:      initialNote,
	}}

	return parcel, nil
}

// Validate ensures the Parcel instance was created through NewParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// ApplyStatus transitions the parcel to newStatus and appends a history
// entry. Only enum membership is validated: any status is accepted from any
// current state, matching the permissive behavior of a real test agency.
//
// When note is empty a default "Status updated to <status>" note is written.
// The first delivered transition stamps deliveredAt; later delivered
// transitions leave it untouched. On error the parcel is unchanged.
func (p *Parcel) ApplyStatus(newStatus Status, note string) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if note == "" {
		note = fmt.Sprintf("Status updated to %s", newStatus)
	}

	now := time.Now()
	p.statusHistory = append(p.statusHistory, HistoryEntry{
		Status:    newStatus,
		Timestamp: now,
		Note:      note,
	})
	p.status = newStatus

	if newStatus == StatusDelivered && p.deliveredAt == nil {
		p.deliveredAt = &now
	}

	return nil
}

// TrackingNumber returns the parcel's unique identifier.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber {
	return p.trackingNumber
}

// OrderID returns the caller-supplied order reference.
func (p *Parcel) OrderID() string {
	return p.orderID
}

// Customer returns the recipient details.
func (p *Parcel) Customer() Customer {
	return p.customer
}

// Destination returns the delivery region.
func (p *Parcel) Destination() Destination {
	return p.destination
}

// ProductList returns a copy of the ordered product items.
func (p *Parcel) ProductList() []string {
	return append([]string{}, p.productList...)
}

// Price returns the order total.
func (p *Parcel) Price() float64 {
	return p.price
}

// CODAmount returns the amount the courier collects at handoff.
func (p *Parcel) CODAmount() float64 {
	return p.codAmount
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// StatusHistory returns a copy of the append-only status ledger.
func (p *Parcel) StatusHistory() []HistoryEntry {
	return append([]HistoryEntry{}, p.statusHistory...)
}

// WebhookURL returns the caller-supplied notification URL, empty when the
// caller did not request notifications.
func (p *Parcel) WebhookURL() string {
	return p.webhookURL
}

// HasWebhook reports whether status changes should trigger a notification.
func (p *Parcel) HasWebhook() bool {
	return p.webhookURL != ""
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// DeliveredAt returns the first delivered timestamp, nil if the parcel was
// never delivered.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Clone returns a deep copy of the parcel. The store hands out and accepts
// clones so that readers never share mutable state with writers.
func (p *Parcel) Clone() *Parcel {
	clone := *p
	clone.productList = append([]string{}, p.productList...)
	clone.statusHistory = append([]HistoryEntry{}, p.statusHistory...)
	if p.deliveredAt != nil {
		deliveredAt := *p.deliveredAt
		clone.deliveredAt = &deliveredAt
	}
	return &clone
}

// IsEqual compares two parcels by tracking number.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.trackingNumber.IsEqual(other.trackingNumber)
}

func (p *Parcel) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order_id")
	}
	p.orderID = orderID
	return nil
}

func (p *Parcel) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	p.customer = customer
	return nil
}

func (p *Parcel) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}
