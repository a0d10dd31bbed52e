package simulation

import "agencysim/internal/core/domain/model/parcel"

// Scenario selects the fixed status sequence a simulation run drives a
// parcel through.
type Scenario string

const (
	// ScenarioDefault is the happy path ending in a settled COD order.
	ScenarioDefault Scenario = "default"

	// ScenarioFailed ends in a failed delivery attempt and a return to the
	// seller; no delivered status ever appears.
	ScenarioFailed Scenario = "failed"
)

// getScenarioSequences returns the fixed status sequences. The initial
// pending_pickup status is not part of any sequence: runs progress a parcel
// beyond it.
func getScenarioSequences() map[Scenario][]parcel.Status {
	return map[Scenario][]parcel.Status{
		ScenarioDefault: {
			parcel.StatusCollected,
			parcel.StatusInTransit,
			parcel.StatusOutForDelivery,
			parcel.StatusDelivered,
			parcel.StatusCompleted,
		},
		ScenarioFailed: {
			parcel.StatusCollected,
			parcel.StatusInTransit,
			parcel.StatusOutForDelivery,
			parcel.StatusFailedDelivery,
			parcel.StatusReturned,
		},
	}
}

// ScenarioFromString normalizes an externally supplied scenario value.
// Unrecognized or absent values default to the happy path, they are never an
// error.
func ScenarioFromString(value string) Scenario {
	s := Scenario(value)
	if _, ok := getScenarioSequences()[s]; !ok {
		return ScenarioDefault
	}
	return s
}

// Sequence returns a copy of the status sequence for this scenario.
func (s Scenario) Sequence() []parcel.Status {
	sequences := getScenarioSequences()
	sequence, ok := sequences[s]
	if !ok {
		sequence = sequences[ScenarioDefault]
	}
	return append([]parcel.Status{}, sequence...)
}

// String returns the external representation, e.g. "failed".
func (s Scenario) String() string {
	return string(s)
}
