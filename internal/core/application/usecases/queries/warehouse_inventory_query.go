package queries

import (
	"errors"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrWarehouseInventoryQueryIsNotConstructed = errors.New(
	"WarehouseInventoryQuery must be created via NewWarehouseInventoryQuery constructor",
)

// WarehouseInventoryQuery retrieves a warehouse's stored shipments and the
// ledger events recorded against it.
type WarehouseInventoryQuery struct {
	warehouseID string

	guard guard.ConstructorGuard
}

// NewWarehouseInventoryQuery creates an inventory query for the warehouse.
func NewWarehouseInventoryQuery(warehouseID string) (WarehouseInventoryQuery, error) {
	if warehouseID == "" {
		return WarehouseInventoryQuery{}, errs.NewValueIsRequiredError("warehouseID is required")
	}

	return WarehouseInventoryQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q WarehouseInventoryQuery) Validate() error {
	return q.guard.Validate(ErrWarehouseInventoryQueryIsNotConstructed)
}

// WarehouseID returns the warehouse to look up.
func (q WarehouseInventoryQuery) WarehouseID() string {
	return q.warehouseID
}

// WarehouseInventoryResponse is the warehouse's current holdings and event
// trail.
type WarehouseInventoryResponse struct {
	WarehouseID string
	Location    string
	Capacity    int
	Occupancy   int
	Status      string
	StoredIDs   []string
	Events      []EventView
}
