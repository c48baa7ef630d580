package commands

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a
// new status, optionally putting it on a vehicle, into a destination
// warehouse, revising the eta, or flagging an exception.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	actor                  identity.Actor
	trackingID             kernel.TrackingID
	statusLabel            string
	location               string
	vehicleID              string
	destinationWarehouseID string
	eta                    time.Time
	exceptionKind          string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a status transition command.
// Vehicle id, destination warehouse id, eta, and exception kind are
// optional; zero values mean absent.
func NewUpdateShipmentStatusCommand(
	actor identity.Actor,
	trackingID kernel.TrackingID,
	statusLabel string,
	location string,
	vehicleID string,
	destinationWarehouseID string,
	eta time.Time,
	exceptionKind string,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		actor:                  actor,
		vehicleID:              vehicleID,
		destinationWarehouseID: destinationWarehouseID,
		eta:                    eta,
		exceptionKind:          exceptionKind,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setStatusLabel(statusLabel),
		cmd.setLocation(location),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// Actor returns the caller requesting the transition.
func (c UpdateShipmentStatusCommand) Actor() identity.Actor {
	return c.actor
}

// TrackingID returns the shipment to transition.
func (c UpdateShipmentStatusCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// StatusLabel returns the target status label.
func (c UpdateShipmentStatusCommand) StatusLabel() string {
	return c.statusLabel
}

// Location returns where the transition happened.
func (c UpdateShipmentStatusCommand) Location() string {
	return c.location
}

// VehicleID returns the vehicle involved, empty when none.
func (c UpdateShipmentStatusCommand) VehicleID() string {
	return c.vehicleID
}

// DestinationWarehouseID returns the warehouse to move the parcel into,
// empty when none.
func (c UpdateShipmentStatusCommand) DestinationWarehouseID() string {
	return c.destinationWarehouseID
}

// ETA returns the revised delivery estimate, zero when unchanged.
func (c UpdateShipmentStatusCommand) ETA() time.Time {
	return c.eta
}

// ExceptionKind returns the exception classification, empty for normal
// transitions.
func (c UpdateShipmentStatusCommand) ExceptionKind() string {
	return c.exceptionKind
}

func (c *UpdateShipmentStatusCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatusLabel(statusLabel string) error {
	if statusLabel == "" {
		return errs.NewValueIsRequiredError("statusLabel is required")
	}
	c.statusLabel = statusLabel
	return nil
}

func (c *UpdateShipmentStatusCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location is required")
	}
	c.location = location
	return nil
}
