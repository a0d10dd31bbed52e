package ports

import (
	"context"

	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/simulation"

	"github.com/google/uuid"
)

// RunHandle identifies an accepted simulation run. The RunID doubles as a
// cancellation token for Stop.
type RunHandle struct {
	RunID uuid.UUID
	Plan  simulation.Plan
}

// SimulationScheduler drives parcels through scripted status sequences on a
// timer. Start accepts the run and returns immediately; the transitions
// happen in the background.
//
// Runs are not deduplicated: starting two runs for the same tracking number
// produces interleaved histories. Each individual transition stays
// structurally consistent, the semantic order is whatever the timers yield.
type SimulationScheduler interface {
	// Start registers a run for the parcel. Returns an
	// errs.ObjectNotFoundError when the tracking number is unknown.
	Start(ctx context.Context, trackingNumber kernel.TrackingNumber, plan simulation.Plan) (RunHandle, error)

	// Stop cancels a run before it finishes. Returns an
	// errs.ObjectNotFoundError when no run with that ID is active.
	Stop(runID uuid.UUID) error
}
