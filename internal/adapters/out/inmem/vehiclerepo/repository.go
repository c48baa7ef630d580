// Package vehiclerepo implements the vehicle registry on an in-process map
// guarded by a read-write mutex.
package vehiclerepo

import (
	"context"
	"sort"
	"sync"

	"parceltrack/internal/core/domain/model/vehicle"
	"parceltrack/internal/pkg/errs"
)

// InMemVehicleRegistry implements VehicleRegistry in memory.
type InMemVehicleRegistry struct {
	mu       sync.RWMutex
	vehicles map[string]*vehicle.Vehicle
}

// NewInMemVehicleRegistry creates an empty vehicle registry.
func NewInMemVehicleRegistry() *InMemVehicleRegistry {
	return &InMemVehicleRegistry{
		vehicles: make(map[string]*vehicle.Vehicle),
	}
}

// Add registers a vehicle. Re-registering an id replaces the previous
// aggregate (last write wins).
func (r *InMemVehicleRegistry) Add(_ context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves a vehicle by id, nil when unknown.
func (r *InMemVehicleRegistry) Get(_ context.Context, id string) (*vehicle.Vehicle, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.vehicles[id], nil
}

// GetAll retrieves every registered vehicle, sorted by id.
func (r *InMemVehicleRegistry) GetAll(_ context.Context) ([]*vehicle.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*vehicle.Vehicle, 0, len(r.vehicles))
	for _, aggregate := range r.vehicles {
		all = append(all, aggregate)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all, nil
}
