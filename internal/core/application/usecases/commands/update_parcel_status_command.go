package commands

import (
	"errors"

	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/pkg/guard"
)

var (
	ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
		"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
	)
)

// UpdateParcelStatusCommand represents a request to transition a parcel to a
// new status, either from a manual API call or from a simulation tick. The
// note is optional; an empty note gets the default message in the history.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	status         parcel.Status
	note           string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a transition command. The tracking
// number must be constructed and the status must be an enum member; no
// transition-graph validation beyond membership is performed.
func NewUpdateParcelStatusCommand(
	trackingNumber kernel.TrackingNumber,
	status parcel.Status,
	note string,
) (UpdateParcelStatusCommand, error) {
	updateCommand := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setTrackingNumber(trackingNumber),
		updateCommand.setStatus(status),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	updateCommand.note = note
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// TrackingNumber returns the parcel identifier.
func (c UpdateParcelStatusCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Status returns the status to transition to.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

// Note returns the optional history note.
func (c UpdateParcelStatusCommand) Note() string {
	return c.note
}

func (c *UpdateParcelStatusCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
