// Package shipmentrepo implements the shipment repository on an in-process
// map guarded by a read-write mutex.
package shipmentrepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
)

// ErrTrackingIDTaken indicates an Add with a tracking id that is already
// registered.
var ErrTrackingIDTaken = errors.New("tracking id is already taken")

// InMemShipmentRepository implements ShipmentRepository in memory.
type InMemShipmentRepository struct {
	mu        sync.RWMutex
	shipments map[string]*shipment.Shipment
}

// NewInMemShipmentRepository creates an empty shipment repository.
func NewInMemShipmentRepository() *InMemShipmentRepository {
	return &InMemShipmentRepository{
		shipments: make(map[string]*shipment.Shipment),
	}
}

// Add stores a new shipment. Tracking ids are unique.
func (r *InMemShipmentRepository) Add(_ context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.TrackingID().String()
	if _, exists := r.shipments[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause("trackingID", ErrTrackingIDTaken)
	}

	r.shipments[id] = aggregate
	return nil
}

// Get retrieves a shipment by tracking id.
func (r *InMemShipmentRepository) Get(_ context.Context, trackingID kernel.TrackingID) (*shipment.Shipment, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.shipments[trackingID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", trackingID.String())
	}
	return aggregate, nil
}

// GetAll retrieves every shipment, sorted by tracking id for deterministic
// listings.
func (r *InMemShipmentRepository) GetAll(_ context.Context) ([]*shipment.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*shipment.Shipment, 0, len(r.shipments))
	for _, aggregate := range r.shipments {
		all = append(all, aggregate)
	}
	sortByTrackingID(all)
	return all, nil
}

// GetAllForCustomer retrieves the customer's shipments, sorted by tracking
// id.
func (r *InMemShipmentRepository) GetAllForCustomer(_ context.Context, customerID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []*shipment.Shipment
	for _, aggregate := range r.shipments {
		if aggregate.CustomerID().IsEqual(customerID) {
			owned = append(owned, aggregate)
		}
	}
	sortByTrackingID(owned)
	return owned, nil
}

func sortByTrackingID(shipments []*shipment.Shipment) {
	sort.Slice(shipments, func(i, j int) bool {
		return shipments[i].TrackingID().String() < shipments[j].TrackingID().String()
	})
}
