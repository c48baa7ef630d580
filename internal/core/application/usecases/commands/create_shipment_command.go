package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment,
// price it against a rate tier, and reserve space in its home warehouse.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor           identity.Actor
	trackingID      kernel.TrackingID
	customerID      kernel.UUID
	tierID          string
	weightKg        float64
	dimensions      string
	declaredValue   float64
	description     string
	specialTags     []string
	distanceKm      float64
	etaDays         int
	homeWarehouseID string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a shipment registration command.
// The home warehouse id is optional; zero etaDays means the default window.
// Deep validation of weight, value, and distance happens in the shipment
// constructor.
func NewCreateShipmentCommand(
	actor identity.Actor,
	trackingID kernel.TrackingID,
	customerID kernel.UUID,
	tierID string,
	weightKg float64,
	dimensions string,
	declaredValue float64,
	description string,
	specialTags []string,
	distanceKm float64,
	etaDays int,
	homeWarehouseID string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		actor:           actor,
		weightKg:        weightKg,
		dimensions:      dimensions,
		declaredValue:   declaredValue,
		description:     description,
		distanceKm:      distanceKm,
		etaDays:         etaDays,
		homeWarehouseID: homeWarehouseID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setCustomerID(customerID),
		cmd.setTierID(tierID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.specialTags = make([]string, len(specialTags))
	copy(cmd.specialTags, specialTags)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Actor returns the caller requesting the creation.
func (c CreateShipmentCommand) Actor() identity.Actor {
	return c.actor
}

// TrackingID returns the tracking id assigned to the new shipment.
func (c CreateShipmentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// CustomerID returns the owning customer's id.
func (c CreateShipmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TierID returns the rate tier to price against.
func (c CreateShipmentCommand) TierID() string {
	return c.tierID
}

// WeightKg returns the parcel weight.
func (c CreateShipmentCommand) WeightKg() float64 {
	return c.weightKg
}

// Dimensions returns the parcel dimensions.
func (c CreateShipmentCommand) Dimensions() string {
	return c.dimensions
}

// DeclaredValue returns the insured value.
func (c CreateShipmentCommand) DeclaredValue() float64 {
	return c.declaredValue
}

// Description returns the contents description.
func (c CreateShipmentCommand) Description() string {
	return c.description
}

// SpecialTags returns a copy of the special service tags.
func (c CreateShipmentCommand) SpecialTags() []string {
	tags := make([]string, len(c.specialTags))
	copy(tags, c.specialTags)
	return tags
}

// DistanceKm returns the planned delivery distance.
func (c CreateShipmentCommand) DistanceKm() float64 {
	return c.distanceKm
}

// ETADays returns the requested delivery window in days, 0 for the default.
func (c CreateShipmentCommand) ETADays() int {
	return c.etaDays
}

// HomeWarehouseID returns the warehouse to reserve space in, empty for none.
func (c CreateShipmentCommand) HomeWarehouseID() string {
	return c.homeWarehouseID
}

func (c *CreateShipmentCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *CreateShipmentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateShipmentCommand) setTierID(tierID string) error {
	if tierID == "" {
		return errs.NewValueIsRequiredError("tierID is required")
	}
	c.tierID = tierID
	return nil
}
