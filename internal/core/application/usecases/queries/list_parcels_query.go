package queries

import (
	"errors"

	"agencysim/internal/pkg/guard"
)

var (
	ErrListParcelsQueryIsNotConstructed = errors.New(
		"ListParcelsQuery must be created via NewListParcelsQuery constructor",
	)
)

// ListParcelsQuery retrieves all parcels known to the store. Intended for
// admin and debugging use; the simulator has no pagination.
type ListParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a parameterless query for the full parcel list.
func NewListParcelsQuery() ListParcelsQuery {
	return ListParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}
