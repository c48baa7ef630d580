// Package warehouserepo implements the warehouse registry on an in-process
// map guarded by a read-write mutex.
package warehouserepo

import (
	"context"
	"sort"
	"sync"

	"parceltrack/internal/core/domain/model/warehouse"
	"parceltrack/internal/pkg/errs"
)

// InMemWarehouseRegistry implements WarehouseRegistry in memory.
type InMemWarehouseRegistry struct {
	mu         sync.RWMutex
	warehouses map[string]*warehouse.Warehouse
}

// NewInMemWarehouseRegistry creates an empty warehouse registry.
func NewInMemWarehouseRegistry() *InMemWarehouseRegistry {
	return &InMemWarehouseRegistry{
		warehouses: make(map[string]*warehouse.Warehouse),
	}
}

// Add registers a warehouse. Re-registering an id replaces the previous
// aggregate; shipments held by the replaced one stay with it.
func (r *InMemWarehouseRegistry) Add(_ context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.warehouses[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves a warehouse by id, nil when unknown.
func (r *InMemWarehouseRegistry) Get(_ context.Context, id string) (*warehouse.Warehouse, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.warehouses[id], nil
}

// GetAll retrieves every registered warehouse, sorted by id.
func (r *InMemWarehouseRegistry) GetAll(_ context.Context) ([]*warehouse.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*warehouse.Warehouse, 0, len(r.warehouses))
	for _, aggregate := range r.warehouses {
		all = append(all, aggregate)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all, nil
}
