package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to put a driver behind the wheel
// of a vehicle.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	vehicleID string
	driver    *identity.User

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a driver assignment command. The role check
// happens in the vehicle aggregate.
func NewAssignDriverCommand(vehicleID string, driver *identity.User) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setDriver(driver),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// VehicleID returns the vehicle to assign the driver to.
func (c AssignDriverCommand) VehicleID() string {
	return c.vehicleID
}

// Driver returns the user to assign.
func (c AssignDriverCommand) Driver() *identity.User {
	return c.driver
}

func (c *AssignDriverCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleID is required")
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *AssignDriverCommand) setDriver(driver *identity.User) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	c.driver = driver
	return nil
}
