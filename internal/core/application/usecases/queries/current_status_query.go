package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCurrentStatusQueryIsNotConstructed = errors.New(
	"CurrentStatusQuery must be created via NewCurrentStatusQuery constructor",
)

// CurrentStatusQuery retrieves the latest status of a shipment. Public, like
// the history lookup.
type CurrentStatusQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewCurrentStatusQuery creates a status query for the tracking id.
func NewCurrentStatusQuery(trackingID kernel.TrackingID) (CurrentStatusQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return CurrentStatusQuery{}, err
	}

	return CurrentStatusQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CurrentStatusQuery) Validate() error {
	return q.guard.Validate(ErrCurrentStatusQueryIsNotConstructed)
}

// TrackingID returns the shipment to look up.
func (q CurrentStatusQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// CurrentStatusResponse is the latest known state of a shipment.
type CurrentStatusResponse struct {
	TrackingID  string
	StatusLabel string
	ETA         time.Time
}
