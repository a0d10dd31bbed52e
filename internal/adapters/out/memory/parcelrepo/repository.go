// Package parcelrepo provides the in-memory parcel store. It is the sole
// owner of parcel state and of tracking number allocation. There is no
// persistence: the store lives exactly as long as the process, which is the
// contract of a test double.
package parcelrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/pkg/errs"
)

// Repository is a concurrency-safe keyed container of parcel records plus an
// atomic tracking number counter. It implements ports.ParcelRepository.
//
// All aggregates cross the boundary as deep copies: Get and GetAll return
// clones, Add and Update store clones. Readers therefore never observe a
// half-applied mutation, and writers cannot alias stored state.
type Repository struct {
	counter atomic.Uint64

	mu      sync.RWMutex
	parcels map[string]*parcel.Parcel
}

// NewRepository creates an empty store. The tracking counter starts at zero
// and is never reset for the lifetime of the process.
func NewRepository() *Repository {
	return &Repository{
		parcels: make(map[string]*parcel.Parcel),
	}
}

// NextTrackingNumber allocates the next tracking number. Safe for concurrent
// use; numbers are unique across the store's lifetime and never reused.
func (r *Repository) NextTrackingNumber() kernel.TrackingNumber {
	return kernel.NewTrackingNumber(r.counter.Add(1))
}

// Add stores a newly created parcel.
func (r *Repository) Add(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.TrackingNumber().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.parcels[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("parcel %s already exists", key))
	}

	r.parcels[key] = aggregate.Clone()
	return nil
}

// Update replaces the stored record for the parcel's tracking number.
func (r *Repository) Update(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.TrackingNumber().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.parcels[key]; !exists {
		return errs.NewObjectNotFoundError("trackingNumber", key)
	}

	r.parcels[key] = aggregate.Clone()
	return nil
}

// Get retrieves a clone of the parcel with the given tracking number.
func (r *Repository) Get(_ context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.parcels[trackingNumber.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
	}

	return stored.Clone(), nil
}

// GetAll returns a snapshot of all stored parcels ordered by tracking number.
func (r *Repository) GetAll(_ context.Context) ([]*parcel.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.parcels))
	for key := range r.parcels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	snapshot := make([]*parcel.Parcel, 0, len(keys))
	for _, key := range keys {
		snapshot = append(snapshot, r.parcels[key].Clone())
	}

	return snapshot, nil
}
