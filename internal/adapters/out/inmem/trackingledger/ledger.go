// Package trackingledger implements the append-only tracking ledger in
// memory.
//
// The ledger is the system of record for shipment movement. Appending never
// fails the caller: invalid inputs are swallowed into an internal error list
// that drives the ledger's health grade, so a bad audit entry can degrade
// observability but can never roll back the business mutation it describes.
package trackingledger

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/telemetry"
)

// Error thresholds for the health grade.
const (
	degradedThreshold = 1
	downThreshold     = 4
)

// InMemTrackingLedger implements TrackingLedger in memory.
type InMemTrackingLedger struct {
	shipments ports.ShipmentRepository
	metrics   *telemetry.Metrics
	log       *slog.Logger

	mu       sync.Mutex
	events   []*tracking.Event
	errors   []string
	nextSeq  int64
	lastTime time.Time
}

// NewInMemTrackingLedger creates an empty ledger. The shipment repository is
// used to resolve customer-id search filters to tracking ids.
func NewInMemTrackingLedger(shipments ports.ShipmentRepository, metrics *telemetry.Metrics, log *slog.Logger) *InMemTrackingLedger {
	return &InMemTrackingLedger{
		shipments: shipments,
		metrics:   metrics,
		log:       log,
	}
}

// Append writes an event under the ledger's mutex, assigning the next
// sequence number. Construction failures are recorded internally and nil is
// returned; the caller's mutation stands either way.
func (l *InMemTrackingLedger) Append(_ context.Context, input tracking.EventInput) *tracking.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	event, err := tracking.NewEvent(l.nextSeq, input)
	if err != nil {
		l.errors = append(l.errors, err.Error())
		l.metrics.ObserveLedgerError()
		l.log.Error("tracking ledger rejected event",
			"trackingId", input.TrackingID.String(),
			"status", input.StatusLabel,
			"error", err)
		return nil
	}

	l.nextSeq++
	l.events = append(l.events, event)
	l.lastTime = event.Timestamp()
	l.metrics.ObserveLedgerEvent(string(event.Kind()))
	return event
}

// History returns the shipment's events sorted by timestamp ascending, ties
// broken by sequence number. Unknown ids yield an empty history.
func (l *InMemTrackingLedger) History(_ context.Context, trackingID kernel.TrackingID) ([]*tracking.Event, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var history []*tracking.Event
	for _, event := range l.events {
		if event.TrackingID().IsEqual(trackingID) {
			history = append(history, event)
		}
	}
	sortEvents(history)
	return history, nil
}

// CurrentStatus returns the status label of the shipment's latest event.
func (l *InMemTrackingLedger) CurrentStatus(ctx context.Context, trackingID kernel.TrackingID) (string, error) {
	history, err := l.History(ctx, trackingID)
	if err != nil {
		return "", err
	}
	if len(history) == 0 {
		return "", errs.NewObjectNotFoundError("shipment", trackingID.String())
	}
	return history[len(history)-1].StatusLabel(), nil
}

// Search returns the events matching every set filter field, in the same
// order as History but across shipments.
func (l *InMemTrackingLedger) Search(ctx context.Context, filter ports.EventFilter) ([]*tracking.Event, error) {
	ownedIDs, err := l.resolveCustomerFilter(ctx, filter.CustomerID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var matched []*tracking.Event
	for _, event := range l.events {
		if eventMatches(event, filter, ownedIDs) {
			matched = append(matched, event)
		}
	}
	sortEvents(matched)
	return matched, nil
}

// Health reports the ledger's condition, graded by its internal error count.
func (l *InMemTrackingLedger) Health(_ context.Context) ports.LedgerHealth {
	l.mu.Lock()
	defer l.mu.Unlock()

	state := ports.HealthUp
	switch {
	case len(l.errors) >= downThreshold:
		state = ports.HealthDown
	case len(l.errors) >= degradedThreshold:
		state = ports.HealthDegraded
	}

	return ports.LedgerHealth{
		State:       state,
		EventCount:  len(l.events),
		ErrorCount:  len(l.errors),
		LastEventAt: l.lastTime,
	}
}

// ConsistencyIssues counts adjacent out-of-order timestamp pairs per
// shipment, in append order.
func (l *InMemTrackingLedger) ConsistencyIssues(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	last := make(map[string]time.Time)
	issues := 0
	for _, event := range l.events {
		id := event.TrackingID().String()
		if prev, seen := last[id]; seen && event.Timestamp().Before(prev) {
			issues++
		}
		last[id] = event.Timestamp()
	}
	return issues, nil
}

// Errors returns the messages of the internal errors recorded so far.
func (l *InMemTrackingLedger) Errors(_ context.Context) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	messages := make([]string, len(l.errors))
	copy(messages, l.errors)
	return messages
}

// resolveCustomerFilter maps a customer id filter to the set of tracking ids
// the customer owns. A nil result means the filter is unset.
func (l *InMemTrackingLedger) resolveCustomerFilter(ctx context.Context, customerID string) (map[string]bool, error) {
	if customerID == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(customerID)
	if err != nil {
		return nil, err
	}

	owned, err := l.shipments.GetAllForCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(owned))
	for _, aggregate := range owned {
		ids[aggregate.TrackingID().String()] = true
	}
	return ids, nil
}

func eventMatches(event *tracking.Event, filter ports.EventFilter, ownedIDs map[string]bool) bool {
	if filter.TrackingID != "" && event.TrackingID().String() != filter.TrackingID {
		return false
	}
	if ownedIDs != nil && !ownedIDs[event.TrackingID().String()] {
		return false
	}
	if filter.LocationContains != "" &&
		!strings.Contains(strings.ToLower(event.Location()), strings.ToLower(filter.LocationContains)) {
		return false
	}
	if filter.VehicleID != "" && event.VehicleID() != filter.VehicleID {
		return false
	}
	if filter.WarehouseID != "" && event.WarehouseID() != filter.WarehouseID {
		return false
	}
	if !filter.From.IsZero() && event.Timestamp().Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && event.Timestamp().After(filter.To) {
		return false
	}
	return true
}

func sortEvents(events []*tracking.Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Timestamp().Equal(events[j].Timestamp()) {
			return events[i].Timestamp().Before(events[j].Timestamp())
		}
		return events[i].Sequence() < events[j].Sequence()
	})
}
