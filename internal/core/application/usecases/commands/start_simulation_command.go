package commands

import (
	"errors"

	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/simulation"
	"agencysim/internal/pkg/guard"
)

var (
	ErrStartSimulationCommandIsNotConstructed = errors.New(
		"StartSimulationCommand must be created via NewStartSimulationCommand constructor",
	)
)

// StartSimulationCommand represents a request to auto-progress a parcel
// through a scripted status sequence. Speed and scenario arrive already
// normalized inside the plan, so the only thing that can fail is the
// tracking number.
type StartSimulationCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	plan           simulation.Plan

	guard guard.ConstructorGuard
}

// NewStartSimulationCommand creates a command to start a simulation run.
func NewStartSimulationCommand(
	trackingNumber kernel.TrackingNumber,
	plan simulation.Plan,
) (StartSimulationCommand, error) {
	startCommand := StartSimulationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := startCommand.setTrackingNumber(trackingNumber); err != nil {
		return StartSimulationCommand{}, err
	}

	startCommand.plan = plan
	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSimulationCommand) Validate() error {
	return c.guard.Validate(ErrStartSimulationCommandIsNotConstructed)
}

// TrackingNumber returns the parcel identifier.
func (c StartSimulationCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Plan returns the normalized run plan.
func (c StartSimulationCommand) Plan() simulation.Plan {
	return c.plan
}

func (c *StartSimulationCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}
