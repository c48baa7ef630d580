// Package vehicle models the carrier fleet: capacity-bounded vehicles with a
// current load and an optional assigned driver.
package vehicle

import (
	"errors"
	"fmt"
	"sync"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Status of a vehicle.
type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusOffDuty     Status = "OFF_DUTY"
)

// Validate checks the status against the known set.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusMaintenance, StatusOffDuty:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid vehicle status", string(s)))
}

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle was not created
	// through the NewVehicle factory method.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

	// ErrDriverRoleRequired indicates a driver assignment was attempted with
	// a user whose role is not driver.
	ErrDriverRoleRequired = errors.New("only a user with the driver role can be assigned")
)

// Vehicle is a capacity-bounded carrier.
//
// Invariants:
//   - currentLoad never exceeds capacityKg;
//   - currentLoad never goes negative (unloading floors at zero);
//   - only users with the driver role can be assigned.
//
// The capacity check-and-load runs as one atomic unit under the vehicle's own
// mutex, so concurrent loads cannot overload the vehicle.
type Vehicle struct {
	id          string
	vehicleType string
	capacityKg  float64

	mu          sync.Mutex
	currentLoad float64
	driver      *identity.User
	status      Status

	guard guard.ConstructorGuard
}

// NewVehicle creates an active, empty vehicle.
func NewVehicle(id, vehicleType string, capacityKg float64) (*Vehicle, error) {
	v := &Vehicle{
		status: StatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setVehicleType(vehicleType),
		v.setCapacityKg(capacityKg),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vehicle was constructed via NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() string {
	return v.id
}

// VehicleType returns the carrier class (van, truck, ...).
func (v *Vehicle) VehicleType() string {
	return v.vehicleType
}

// CapacityKg returns the maximum load in kilograms.
func (v *Vehicle) CapacityKg() float64 {
	return v.capacityKg
}

// CurrentLoad returns the load in kilograms currently on the vehicle.
func (v *Vehicle) CurrentLoad() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentLoad
}

// Driver returns the assigned driver, nil if unassigned.
func (v *Vehicle) Driver() *identity.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.driver
}

// Status returns the current vehicle status.
func (v *Vehicle) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// MarkStatus updates the vehicle status (maintenance, off duty, ...).
func (v *Vehicle) MarkStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = status
	return nil
}

// AssignDriver assigns a driver to the vehicle. The user must hold the
// driver role; reassignment is allowed.
func (v *Vehicle) AssignDriver(user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if user.Role() != identity.RoleDriver {
		return errs.NewValueIsInvalidErrorWithCause("driver", ErrDriverRoleRequired)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.driver = user
	return nil
}

// AddLoad increases the current load by the given weight. Fails with a
// CapacityExceededError when the result would exceed capacity, leaving the
// load unchanged. There are no partial loads.
func (v *Vehicle) AddLoad(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is negative", weightKg))
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.currentLoad+weightKg > v.capacityKg {
		return errs.NewCapacityExceededErrorWithCause(
			v.id,
			fmt.Errorf("load %v plus %v exceeds capacity %v", v.currentLoad, weightKg, v.capacityKg),
		)
	}

	v.currentLoad += weightKg
	return nil
}

// RemoveLoad decreases the current load by the given weight, floored at zero.
func (v *Vehicle) RemoveLoad(weightKg float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.currentLoad -= weightKg
	if v.currentLoad < 0 {
		v.currentLoad = 0
	}
}

func (v *Vehicle) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id is required")
	}
	v.id = id
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType is required")
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setCapacityKg(capacityKg float64) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacityKg", fmt.Errorf("%v is not greater than 0", capacityKg))
	}
	v.capacityKg = capacityKg
	return nil
}
