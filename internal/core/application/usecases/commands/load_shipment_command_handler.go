package commands

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/telemetry"
)

// Labels recorded on vehicle-transit ledger entries.
const (
	LoadedToVehicleLabel     = "Loaded to Vehicle"
	UnloadedFromVehicleLabel = "Unloaded from Vehicle"
)

// LoadShipmentCommandHandler puts a parcel on a vehicle and writes the
// vehicle-transit audit entry in the same handler, so the weight mutation
// never goes unrecorded.
type LoadShipmentCommandHandler struct {
	shipments ports.ShipmentRepository
	vehicles  ports.VehicleRegistry
	ledger    ports.TrackingLedger
	metrics   *telemetry.Metrics
}

// NewLoadShipmentCommandHandler creates a handler for vehicle loading.
func NewLoadShipmentCommandHandler(
	shipments ports.ShipmentRepository,
	vehicles ports.VehicleRegistry,
	ledger ports.TrackingLedger,
	metrics *telemetry.Metrics,
) LoadShipmentCommandHandler {
	return LoadShipmentCommandHandler{
		shipments: shipments,
		vehicles:  vehicles,
		ledger:    ledger,
		metrics:   metrics,
	}
}

// Handle processes the loading command.
func (h *LoadShipmentCommandHandler) Handle(ctx context.Context, cmd LoadShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.shipments.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	veh, err := h.vehicles.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if veh == nil {
		return errs.NewObjectNotFoundError("vehicle", cmd.VehicleID())
	}

	if err := veh.AddLoad(aggregate.WeightKg()); err != nil {
		if errors.Is(err, errs.ErrCapacityExceeded) {
			h.metrics.ObserveCapacityRejection("vehicle")
		}
		return err
	}

	h.ledger.Append(ctx, tracking.EventInput{
		TrackingID:  aggregate.TrackingID(),
		Location:    fmt.Sprintf("Vehicle %s", veh.ID()),
		StatusLabel: LoadedToVehicleLabel,
		Actor:       cmd.Actor().Username(),
		VehicleID:   veh.ID(),
		Kind:        tracking.KindVehicleTransit,
	})
	return nil
}
