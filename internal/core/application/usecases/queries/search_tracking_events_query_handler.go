package queries

import (
	"context"

	"parceltrack/internal/core/ports"
)

// SearchTrackingEventsQueryHandler runs multi-filter searches against the
// tracking ledger.
type SearchTrackingEventsQueryHandler struct {
	ledger ports.TrackingLedger
}

// NewSearchTrackingEventsQueryHandler creates a handler for ledger searches.
func NewSearchTrackingEventsQueryHandler(ledger ports.TrackingLedger) SearchTrackingEventsQueryHandler {
	return SearchTrackingEventsQueryHandler{ledger: ledger}
}

// Handle returns the matching events, timestamp ascending.
func (h SearchTrackingEventsQueryHandler) Handle(ctx context.Context, query SearchTrackingEventsQuery) ([]EventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events, err := h.ledger.Search(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	return toEventViews(events), nil
}
