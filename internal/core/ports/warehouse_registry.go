package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/warehouse"
)

// WarehouseRegistry defines the storage contract for warehouse aggregates.
type WarehouseRegistry interface {
	// Add registers a warehouse. Re-registering an id replaces the previous
	// aggregate (last write wins).
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse by id. Unknown ids return nil, not an error:
	// callers treat an unresolvable warehouse as a soft condition.
	Get(ctx context.Context, id string) (*warehouse.Warehouse, error)

	// GetAll retrieves every registered warehouse.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)
}
