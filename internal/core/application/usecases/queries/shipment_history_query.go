package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrShipmentHistoryQueryIsNotConstructed = errors.New(
	"ShipmentHistoryQuery must be created via NewShipmentHistoryQuery constructor",
)

// ShipmentHistoryQuery retrieves a shipment's full movement history. This is
// the public tracking lookup: no authentication required.
type ShipmentHistoryQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewShipmentHistoryQuery creates a history query for the tracking id.
func NewShipmentHistoryQuery(trackingID kernel.TrackingID) (ShipmentHistoryQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return ShipmentHistoryQuery{}, err
	}

	return ShipmentHistoryQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrShipmentHistoryQueryIsNotConstructed)
}

// TrackingID returns the shipment to look up.
func (q ShipmentHistoryQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}
