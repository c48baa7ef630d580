package queries

import (
	"context"

	"parceltrack/internal/core/ports"
)

// LedgerHealthQueryHandler projects the ledger's health and consistency
// state for monitoring surfaces.
type LedgerHealthQueryHandler struct {
	ledger ports.TrackingLedger
}

// NewLedgerHealthQueryHandler creates a handler for health queries.
func NewLedgerHealthQueryHandler(ledger ports.TrackingLedger) LedgerHealthQueryHandler {
	return LedgerHealthQueryHandler{ledger: ledger}
}

// Handle returns the combined health snapshot.
func (h LedgerHealthQueryHandler) Handle(ctx context.Context, query LedgerHealthQuery) (LedgerHealthResponse, error) {
	if err := query.Validate(); err != nil {
		return LedgerHealthResponse{}, err
	}

	health := h.ledger.Health(ctx)
	issues, err := h.ledger.ConsistencyIssues(ctx)
	if err != nil {
		return LedgerHealthResponse{}, err
	}

	return LedgerHealthResponse{
		State:             string(health.State),
		EventCount:        health.EventCount,
		ErrorCount:        health.ErrorCount,
		LastEventAt:       health.LastEventAt,
		ConsistencyIssues: issues,
		Errors:            h.ledger.Errors(ctx),
	}, nil
}
