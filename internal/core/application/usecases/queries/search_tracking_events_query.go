package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/guard"
)

var ErrSearchTrackingEventsQueryIsNotConstructed = errors.New(
	"SearchTrackingEventsQuery must be created via NewSearchTrackingEventsQuery constructor",
)

// SearchTrackingEventsQuery retrieves ledger events across shipments,
// narrowed by any combination of filters. Zero-valued filter fields do not
// filter.
type SearchTrackingEventsQuery struct {
	filter ports.EventFilter

	guard guard.ConstructorGuard
}

// NewSearchTrackingEventsQuery creates a search query from the filter. An
// entirely empty filter is valid and returns the whole ledger.
func NewSearchTrackingEventsQuery(filter ports.EventFilter) (SearchTrackingEventsQuery, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return SearchTrackingEventsQuery{}, errors.New("time range end precedes its start")
	}

	return SearchTrackingEventsQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrSearchTrackingEventsQueryIsNotConstructed)
}

// Filter returns the search filter.
func (q SearchTrackingEventsQuery) Filter() ports.EventFilter {
	return q.filter
}

// From returns the inclusive lower time bound, zero when unbounded.
func (q SearchTrackingEventsQuery) From() time.Time {
	return q.filter.From
}

// To returns the inclusive upper time bound, zero when unbounded.
func (q SearchTrackingEventsQuery) To() time.Time {
	return q.filter.To
}
