package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"agencysim/internal/pkg/errs"
)

// trackingNumberPrefix is the fixed prefix every tracking number carries.
const trackingNumberPrefix = "TRK-"

// trackingNumberDigits is the zero-padded width of the counter part.
const trackingNumberDigits = 8

// ErrTrackingNumberIsNotConstructed indicates a TrackingNumber that was not
// created through NewTrackingNumber or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString",
)

// TrackingNumber is the value object identifying a parcel. The external form
// is the fixed prefix followed by a zero-padded sequence number, e.g.
// "TRK-00000001". The zero value is invalid; construct through one of the
// factory functions.
//
// TrackingNumber is immutable and safe to copy and compare.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber renders a sequence number into a tracking number.
// Sequence numbers are allocated by the parcel store and never reused.
func NewTrackingNumber(sequence uint64) TrackingNumber {
	return TrackingNumber{
		value: fmt.Sprintf("%s%0*d", trackingNumberPrefix, trackingNumberDigits, sequence),
	}
}

// TrackingNumberFromString parses an externally supplied tracking number.
// The input must carry the fixed prefix followed by decimal digits.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	digits, ok := strings.CutPrefix(s, trackingNumberPrefix)
	if !ok || digits == "" {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q does not match the %s<digits> format", s, trackingNumberPrefix),
		)
	}

	if _, err := strconv.ParseUint(digits, 10, 64); err != nil {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber", err)
	}

	return TrackingNumber{value: s}, nil
}

// Validate returns an error for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}

// String returns the external representation, e.g. "TRK-00000001".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}
