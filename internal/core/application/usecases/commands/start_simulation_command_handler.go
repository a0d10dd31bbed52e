package commands

import (
	"context"

	"agencysim/internal/core/ports"
)

// StartSimulationCommandHandler accepts simulation requests and delegates the
// timing to the scheduler. The returned handle carries the run ID that acts
// as a cancellation token and the plan the caller can derive an estimate
// from.
type StartSimulationCommandHandler struct {
	scheduler ports.SimulationScheduler
}

// NewStartSimulationCommandHandler creates a handler for simulation requests.
func NewStartSimulationCommandHandler(scheduler ports.SimulationScheduler) StartSimulationCommandHandler {
	return StartSimulationCommandHandler{
		scheduler: scheduler,
	}
}

// Handle registers the run with the scheduler and returns immediately; the
// transitions happen in the background at the plan's interval.
func (h StartSimulationCommandHandler) Handle(
	ctx context.Context,
	cmd StartSimulationCommand,
) (ports.RunHandle, error) {
	if err := cmd.Validate(); err != nil {
		return ports.RunHandle{}, err
	}

	return h.scheduler.Start(ctx, cmd.TrackingNumber(), cmd.Plan())
}
