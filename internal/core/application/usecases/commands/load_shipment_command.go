package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrLoadShipmentCommandIsNotConstructed = errors.New(
	"LoadShipmentCommand must be created via NewLoadShipmentCommand constructor",
)

// LoadShipmentCommand represents a request to put a parcel on a vehicle
// outside of a status transition, e.g. staging during sorting.
type LoadShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	trackingID kernel.TrackingID
	vehicleID  string

	guard guard.ConstructorGuard
}

// NewLoadShipmentCommand creates a vehicle loading command.
func NewLoadShipmentCommand(actor identity.Actor, trackingID kernel.TrackingID, vehicleID string) (LoadShipmentCommand, error) {
	cmd := LoadShipmentCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return LoadShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadShipmentCommand) Validate() error {
	return c.guard.Validate(ErrLoadShipmentCommandIsNotConstructed)
}

// Actor returns the caller requesting the load.
func (c LoadShipmentCommand) Actor() identity.Actor {
	return c.actor
}

// TrackingID returns the parcel to load.
func (c LoadShipmentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// VehicleID returns the vehicle to load onto.
func (c LoadShipmentCommand) VehicleID() string {
	return c.vehicleID
}

func (c *LoadShipmentCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *LoadShipmentCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleID is required")
	}
	c.vehicleID = vehicleID
	return nil
}
