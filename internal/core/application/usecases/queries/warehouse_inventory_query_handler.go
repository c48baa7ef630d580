package queries

import (
	"context"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// WarehouseInventoryQueryHandler projects a warehouse's stored shipments
// plus its slice of the tracking ledger.
type WarehouseInventoryQueryHandler struct {
	warehouses ports.WarehouseRegistry
	ledger     ports.TrackingLedger
}

// NewWarehouseInventoryQueryHandler creates a handler for inventory lookups.
func NewWarehouseInventoryQueryHandler(warehouses ports.WarehouseRegistry, ledger ports.TrackingLedger) WarehouseInventoryQueryHandler {
	return WarehouseInventoryQueryHandler{
		warehouses: warehouses,
		ledger:     ledger,
	}
}

// Handle returns the warehouse's inventory snapshot and event trail.
func (h WarehouseInventoryQueryHandler) Handle(ctx context.Context, query WarehouseInventoryQuery) (WarehouseInventoryResponse, error) {
	if err := query.Validate(); err != nil {
		return WarehouseInventoryResponse{}, err
	}

	wh, err := h.warehouses.Get(ctx, query.WarehouseID())
	if err != nil {
		return WarehouseInventoryResponse{}, err
	}
	if wh == nil {
		return WarehouseInventoryResponse{}, errs.NewObjectNotFoundError("warehouse", query.WarehouseID())
	}

	events, err := h.ledger.Search(ctx, ports.EventFilter{WarehouseID: wh.ID()})
	if err != nil {
		return WarehouseInventoryResponse{}, err
	}

	return WarehouseInventoryResponse{
		WarehouseID: wh.ID(),
		Location:    wh.Location(),
		Capacity:    wh.Capacity(),
		Occupancy:   wh.Occupancy(),
		Status:      string(wh.Status()),
		StoredIDs:   wh.StoredIDs(),
		Events:      toEventViews(events),
	}, nil
}
