package queries

import (
	"errors"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrVehicleActivityQueryIsNotConstructed = errors.New(
	"VehicleActivityQuery must be created via NewVehicleActivityQuery constructor",
)

// VehicleActivityQuery retrieves a vehicle's state, its ledger events, and
// the distinct shipments it has carried.
type VehicleActivityQuery struct {
	vehicleID string

	guard guard.ConstructorGuard
}

// NewVehicleActivityQuery creates an activity query for the vehicle.
func NewVehicleActivityQuery(vehicleID string) (VehicleActivityQuery, error) {
	if vehicleID == "" {
		return VehicleActivityQuery{}, errs.NewValueIsRequiredError("vehicleID is required")
	}

	return VehicleActivityQuery{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q VehicleActivityQuery) Validate() error {
	return q.guard.Validate(ErrVehicleActivityQueryIsNotConstructed)
}

// VehicleID returns the vehicle to look up.
func (q VehicleActivityQuery) VehicleID() string {
	return q.vehicleID
}

// VehicleActivityResponse is the vehicle's state plus its movement trail.
type VehicleActivityResponse struct {
	VehicleID      string
	VehicleType    string
	CapacityKg     float64
	CurrentLoad    float64
	Status         string
	DriverUsername string
	Events         []EventView
	ShipmentIDs    []string
}
