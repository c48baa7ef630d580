package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUnloadShipmentCommandIsNotConstructed = errors.New(
	"UnloadShipmentCommand must be created via NewUnloadShipmentCommand constructor",
)

// UnloadShipmentCommand represents a request to take a parcel off a vehicle
// at a delivery location.
type UnloadShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	trackingID kernel.TrackingID
	vehicleID  string
	location   string

	guard guard.ConstructorGuard
}

// NewUnloadShipmentCommand creates a vehicle unloading command. An empty
// location defaults to the vehicle itself on the recorded event.
func NewUnloadShipmentCommand(actor identity.Actor, trackingID kernel.TrackingID, vehicleID, location string) (UnloadShipmentCommand, error) {
	cmd := UnloadShipmentCommand{
		actor:    actor,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return UnloadShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnloadShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUnloadShipmentCommandIsNotConstructed)
}

// Actor returns the caller requesting the unload.
func (c UnloadShipmentCommand) Actor() identity.Actor {
	return c.actor
}

// TrackingID returns the parcel to unload.
func (c UnloadShipmentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// VehicleID returns the vehicle to unload from.
func (c UnloadShipmentCommand) VehicleID() string {
	return c.vehicleID
}

// Location returns where the parcel was unloaded, empty when not given.
func (c UnloadShipmentCommand) Location() string {
	return c.location
}

func (c *UnloadShipmentCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *UnloadShipmentCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleID is required")
	}
	c.vehicleID = vehicleID
	return nil
}
