package ports

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/tracking"
)

// HealthState grades the ledger by its accumulated internal error count.
type HealthState string

const (
	// HealthUp means no internal errors have been recorded.
	HealthUp HealthState = "UP"

	// HealthDegraded means one to three internal errors have been recorded.
	HealthDegraded HealthState = "DEGRADED"

	// HealthDown means more than three internal errors have been recorded.
	HealthDown HealthState = "DOWN"
)

// LedgerHealth is a point-in-time snapshot of the ledger's condition.
type LedgerHealth struct {
	State       HealthState
	EventCount  int
	ErrorCount  int
	LastEventAt time.Time
}

// EventFilter narrows a ledger search. Zero-valued fields do not filter;
// set fields combine with AND.
type EventFilter struct {
	// TrackingID matches events of one shipment.
	TrackingID string

	// CustomerID matches events of every shipment the customer owns,
	// resolved through the shipment repository.
	CustomerID string

	// LocationContains is a case-insensitive substring match on location.
	LocationContains string

	// VehicleID matches events recorded with the vehicle.
	VehicleID string

	// WarehouseID matches events recorded with the warehouse.
	WarehouseID string

	// From and To bound the event timestamp, inclusive. Zero means
	// unbounded on that side.
	From time.Time
	To   time.Time
}

// TrackingLedger defines the append-only movement history contract.
type TrackingLedger interface {
	// Append writes an event, assigning the next sequence number. Append
	// never fails the caller: when the input does not form a valid event
	// the failure is recorded on the ledger's internal error list and nil
	// is returned.
	Append(ctx context.Context, input tracking.EventInput) *tracking.Event

	// History returns a shipment's events sorted by timestamp ascending,
	// ties broken by sequence number. Unknown ids yield an empty history.
	History(ctx context.Context, trackingID kernel.TrackingID) ([]*tracking.Event, error)

	// CurrentStatus returns the status label of the shipment's latest
	// event. Returns an ObjectNotFoundError when the ledger holds no
	// events for the id.
	CurrentStatus(ctx context.Context, trackingID kernel.TrackingID) (string, error)

	// Search returns the events matching every set filter field, ordered
	// like History across all shipments.
	Search(ctx context.Context, filter EventFilter) ([]*tracking.Event, error)

	// Health reports the ledger's condition.
	Health(ctx context.Context) LedgerHealth

	// ConsistencyIssues counts adjacent out-of-order timestamp pairs per
	// shipment across the whole ledger.
	ConsistencyIssues(ctx context.Context) (int, error)

	// Errors returns the messages of the internal errors recorded so far.
	Errors(ctx context.Context) []string
}
