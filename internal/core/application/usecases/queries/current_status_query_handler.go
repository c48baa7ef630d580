package queries

import (
	"context"

	"parceltrack/internal/core/ports"
)

// CurrentStatusQueryHandler reads the latest status label from the ledger
// and the current eta from the shipment aggregate.
type CurrentStatusQueryHandler struct {
	ledger    ports.TrackingLedger
	shipments ports.ShipmentRepository
}

// NewCurrentStatusQueryHandler creates a handler for status lookups.
func NewCurrentStatusQueryHandler(ledger ports.TrackingLedger, shipments ports.ShipmentRepository) CurrentStatusQueryHandler {
	return CurrentStatusQueryHandler{
		ledger:    ledger,
		shipments: shipments,
	}
}

// Handle returns the shipment's current status and eta.
func (h CurrentStatusQueryHandler) Handle(ctx context.Context, query CurrentStatusQuery) (CurrentStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return CurrentStatusResponse{}, err
	}

	label, err := h.ledger.CurrentStatus(ctx, query.TrackingID())
	if err != nil {
		return CurrentStatusResponse{}, err
	}

	response := CurrentStatusResponse{
		TrackingID:  query.TrackingID().String(),
		StatusLabel: label,
	}

	if aggregate, err := h.shipments.Get(ctx, query.TrackingID()); err == nil {
		response.ETA = aggregate.ETA()
	}
	return response, nil
}
