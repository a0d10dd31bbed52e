package parcel

import (
	"fmt"

	"agencysim/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel. The string values are
// the externally visible taxonomy used in API responses and webhook payloads.
//
// Any status may follow any other: the simulated agency deliberately does not
// enforce a transition graph, so test suites can drive a parcel into
// arbitrary states. The only validation performed is enum membership.
type Status string

const (
	// StatusPendingPickup is the initial status of every parcel.
	StatusPendingPickup Status = "pending_pickup"

	// StatusCollected means the agency has picked the parcel up from the seller.
	StatusCollected Status = "collected"

	// StatusInTransit means the parcel is moving between hubs.
	StatusInTransit Status = "in_transit"

	// StatusOutForDelivery means a courier is carrying the parcel to the customer.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered means the customer received the parcel and paid the COD amount.
	StatusDelivered Status = "delivered"

	// StatusFailedDelivery means a delivery attempt did not reach the customer.
	StatusFailedDelivery Status = "failed_delivery"

	// StatusReturned means the parcel went back to the seller after failed attempts.
	StatusReturned Status = "returned"

	// StatusCompleted means the COD amount was remitted and the order is settled.
	StatusCompleted Status = "completed"

	// StatusCancelled means the order was cancelled before delivery.
	StatusCancelled Status = "cancelled"
)

// getValidStatuses returns the set of all enum members.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPendingPickup:  {},
		StatusCollected:      {},
		StatusInTransit:      {},
		StatusOutForDelivery: {},
		StatusDelivered:      {},
		StatusFailedDelivery: {},
		StatusReturned:       {},
		StatusCompleted:      {},
		StatusCancelled:      {},
	}
}

// Validate checks enum membership. It is the only validation a status
// transition is subject to.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
	return nil
}

// String returns the external representation, e.g. "out_for_delivery".
func (s Status) String() string {
	return string(s)
}

// StatusFromString parses an externally supplied status value.
func StatusFromString(value string) (Status, error) {
	s := Status(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}
