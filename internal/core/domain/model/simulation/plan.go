// Package simulation holds the pure planning side of the delivery
// simulation: which statuses a run steps through and how fast. The timing
// machinery that executes a plan lives in internal/jobs.
package simulation

import (
	"time"

	"agencysim/internal/core/domain/model/parcel"
)

// Plan is the immutable description of one simulation run: a scenario's
// status sequence stepped through at a speed's interval.
type Plan struct {
	speed    Speed
	scenario Scenario
}

// NewPlan builds a plan from externally supplied speed and scenario values,
// normalizing unrecognized values to their defaults.
func NewPlan(speed, scenario string) Plan {
	return Plan{
		speed:    SpeedFromString(speed),
		scenario: ScenarioFromString(scenario),
	}
}

// Speed returns the normalized speed.
func (p Plan) Speed() Speed {
	return p.speed
}

// Scenario returns the normalized scenario.
func (p Plan) Scenario() Scenario {
	return p.scenario
}

// Interval returns the delay between steps.
func (p Plan) Interval() time.Duration {
	return p.speed.Interval()
}

// Sequence returns the statuses the run applies, in order.
func (p Plan) Sequence() []parcel.Status {
	return p.scenario.Sequence()
}

// Steps returns the number of transitions the run performs.
func (p Plan) Steps() int {
	return len(p.scenario.Sequence())
}

// EstimatedDuration returns the wall-clock time the run takes: one interval
// before each step.
func (p Plan) EstimatedDuration() time.Duration {
	return time.Duration(p.Steps()) * p.Interval()
}
