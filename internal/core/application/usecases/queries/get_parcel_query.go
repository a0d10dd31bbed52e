// Package queries contains read operations for retrieving parcel state.
// Query handlers read the store directly and return aggregate snapshots; no
// mutation happens on this path.
package queries

import (
	"errors"

	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/pkg/guard"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery retrieves one parcel's public view by tracking number.
type GetParcelQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for a single parcel.
func NewGetParcelQuery(trackingNumber kernel.TrackingNumber) (GetParcelQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// TrackingNumber returns the parcel identifier.
func (q GetParcelQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}
