package queries

import (
	"context"

	"parceltrack/internal/core/ports"
)

// ShipmentHistoryQueryHandler reads a shipment's event history from the
// tracking ledger.
type ShipmentHistoryQueryHandler struct {
	ledger ports.TrackingLedger
}

// NewShipmentHistoryQueryHandler creates a handler for history lookups.
func NewShipmentHistoryQueryHandler(ledger ports.TrackingLedger) ShipmentHistoryQueryHandler {
	return ShipmentHistoryQueryHandler{ledger: ledger}
}

// Handle returns the shipment's events, timestamp ascending. An unknown id
// yields an empty slice, matching the ledger's contract.
func (h ShipmentHistoryQueryHandler) Handle(ctx context.Context, query ShipmentHistoryQuery) ([]EventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events, err := h.ledger.History(ctx, query.TrackingID())
	if err != nil {
		return nil, err
	}
	return toEventViews(events), nil
}
