package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/vehicle"
)

// VehicleRegistry defines the storage contract for vehicle aggregates.
type VehicleRegistry interface {
	// Add registers a vehicle. Re-registering an id replaces the previous
	// aggregate (last write wins).
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by id. Unknown ids return nil, not an error.
	Get(ctx context.Context, id string) (*vehicle.Vehicle, error)

	// GetAll retrieves every registered vehicle.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
}
