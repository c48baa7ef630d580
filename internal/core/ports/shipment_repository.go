package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the storage contract for shipment aggregates.
type ShipmentRepository interface {
	// Add stores a new shipment aggregate.
	// The shipment must be valid and its tracking id not already taken.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by tracking id.
	// Returns an ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*shipment.Shipment, error)

	// GetAll retrieves every stored shipment.
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)

	// GetAllForCustomer retrieves every shipment owned by the customer.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*shipment.Shipment, error)
}
