package simulation

import "time"

// Speed selects the inter-step delay of a simulation run.
type Speed string

const (
	SpeedFast   Speed = "fast"
	SpeedNormal Speed = "normal"
	SpeedSlow   Speed = "slow"
)

// getSpeedIntervals returns the fixed delay table.
func getSpeedIntervals() map[Speed]time.Duration {
	return map[Speed]time.Duration{
		SpeedFast:   2 * time.Second,
		SpeedNormal: 5 * time.Second,
		SpeedSlow:   10 * time.Second,
	}
}

// SpeedFromString normalizes an externally supplied speed value.
// Unrecognized or absent values default to normal, they are never an error.
func SpeedFromString(value string) Speed {
	s := Speed(value)
	if _, ok := getSpeedIntervals()[s]; !ok {
		return SpeedNormal
	}
	return s
}

// Interval returns the delay between simulation steps for this speed.
func (s Speed) Interval() time.Duration {
	if interval, ok := getSpeedIntervals()[s]; ok {
		return interval
	}
	return getSpeedIntervals()[SpeedNormal]
}

// String returns the external representation, e.g. "fast".
func (s Speed) String() string {
	return string(s)
}
